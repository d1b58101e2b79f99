package notify

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"
)

// FCMNotifier pushes booking notifications. A nil messaging client disables
// push without affecting the booking flow.
type FCMNotifier struct {
	Client   *messaging.Client
	ErrorLog *log.Logger
}

// BookingConfirmed sends the post-submit push to the subscriber's device.
func (n *FCMNotifier) BookingConfirmed(ctx context.Context, deviceToken, garageName, date, slot string) {
	if n == nil || n.Client == nil || deviceToken == "" {
		return
	}
	message := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: "Booking confirmed",
			Body:  garageName + " on " + date + " at " + slot,
		},
		Data: map[string]string{
			"type": "booking_confirmed",
			"date": date,
			"slot": slot,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
	if _, err := n.Client.Send(ctx, message); err != nil && n.ErrorLog != nil {
		n.ErrorLog.Printf("fcm send failed: %v", err)
	}
}
