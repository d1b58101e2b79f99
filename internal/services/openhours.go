package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"garageFront/internal/models"
)

// parseClock converts "H:MM AM/PM" to minutes since midnight, following the
// usual 12-hour convention (12 AM is midnight, 12 PM is noon).
func parseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("bad clock %q", s)
	}
	meridiem := strings.ToUpper(fields[1])
	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("bad clock %q", s)
	}
	return hour*60 + minute, nil
}

// parseTimeRange splits "H:MM AM/PM - H:MM AM/PM" into open/close minutes.
// Anything that is not exactly two dash-separated clocks is malformed.
func parseTimeRange(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad range %q", s)
	}
	open, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	closeAt, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return open, closeAt, nil
}

// GarageIsOpen reports whether the garage is open at the given moment. No
// entry for the weekday or a malformed range means closed.
func GarageIsOpen(hours []models.OperatingHour, now time.Time) bool {
	today := now.Weekday().String()
	for _, h := range hours {
		if !strings.EqualFold(h.Day, today) {
			continue
		}
		open, closeAt, err := parseTimeRange(h.Time)
		if err != nil {
			return false
		}
		minutes := now.Hour()*60 + now.Minute()
		return minutes >= open && minutes <= closeAt
	}
	return false
}
