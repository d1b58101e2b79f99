package slots

import (
	"fmt"
	"time"
)

// Business hours for bookable slots, inclusive on both ends.
const (
	OpenHour  = 10
	CloseHour = 18
)

// windowDays is how many day entries a slot window carries.
const windowDays = 3

// Day is one bookable calendar day with its hourly slot labels.
type Day struct {
	Date  string   `json:"date"`
	Label string   `json:"label"`
	Slots []string `json:"slots"`
}

// Window is the rolling slot window offered to the booking flow. The first
// day is auto-selected.
type Window struct {
	Days     []Day `json:"days"`
	Selected int   `json:"selected"`
}

// Generate builds the rolling window as of now. Today starts at the current
// hour (plus one if minutes have elapsed), clamped to opening time; when
// today's hours are exhausted the window shifts to start tomorrow.
func Generate(now time.Time) Window {
	var days []Day
	for offset := 0; offset <= windowDays; offset++ {
		day := now.AddDate(0, 0, offset)
		start := OpenHour
		if offset == 0 {
			start = now.Hour()
			if now.Minute() > 0 {
				start++
			}
			if start < OpenHour {
				start = OpenHour
			}
		}
		var hours []string
		for h := start; h <= CloseHour; h++ {
			hours = append(hours, fmt.Sprintf("%02d:00", h))
		}
		if offset == 0 && len(hours) == 0 {
			continue
		}
		days = append(days, Day{
			Date:  day.Format("2006-01-02"),
			Label: day.Format("Mon, 02 Jan"),
			Slots: hours,
		})
		if len(days) == windowDays {
			break
		}
	}
	return Window{Days: days, Selected: 0}
}

// Contains reports whether the window offers the given date and slot label.
func (w Window) Contains(date, slot string) bool {
	for _, d := range w.Days {
		if d.Date != date {
			continue
		}
		for _, s := range d.Slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}
