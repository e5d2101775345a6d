// Package notifier turns domain events from the broker into short staff
// messages.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/sirupsen/logrus"
)

type Sender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type Notifier struct {
	sender Sender
	chatID string
}

// New: with a nil sender messages are only logged.
func New(sender Sender, chatID string) *Notifier {
	return &Notifier{sender: sender, chatID: chatID}
}

func (n *Notifier) Handle(ctx context.Context, message []byte) error {
	var event entity.DomainEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	text := Format(event)
	if text == "" {
		logrus.WithField("type", event.Type).Debug("event ignored")
		return nil
	}

	if n.sender == nil {
		logrus.WithFields(logrus.Fields{
			"type": event.Type,
			"id":   event.ID,
		}).Info(text)
		return nil
	}

	if err := n.sender.SendMessage(ctx, n.chatID, text); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

const dateLayout = "02 Jan 2006"

// Format renders an event; unknown types render as "".
func Format(e entity.DomainEvent) string {
	switch e.Type {
	case entity.EventBookingCreated:
		var b strings.Builder
		fmt.Fprintf(&b, "New booking from %s", e.CustomerName)
		if e.Car != "" {
			fmt.Fprintf(&b, " for %s", e.Car)
		}
		if e.PickupDate != nil && e.ReturnDate != nil {
			fmt.Fprintf(&b, ", %s to %s", e.PickupDate.Format(dateLayout), e.ReturnDate.Format(dateLayout))
		}
		if e.CustomerEmail != "" {
			fmt.Fprintf(&b, " (%s)", e.CustomerEmail)
		}
		return b.String()
	case entity.EventBookingStatusChanged:
		return fmt.Sprintf("Booking %s for %s: %s -> %s", e.BookingID, e.CustomerName, e.PrevStatus, e.Status)
	case entity.EventBookingDeleted:
		return fmt.Sprintf("Booking %s for %s was deleted", e.BookingID, e.CustomerName)
	case entity.EventSubscriberJoined:
		return fmt.Sprintf("New newsletter subscriber: %s", e.Email)
	default:
		return ""
	}
}
