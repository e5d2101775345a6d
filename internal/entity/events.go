package entity

import "time"

type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventBookingDeleted       EventType = "booking.deleted"
	EventSubscriberJoined     EventType = "subscriber.joined"
)

// DomainEvent is what goes out to the broker.
type DomainEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`

	BookingID     string        `json:"bookingId,omitempty"`
	CustomerName  string        `json:"customerName,omitempty"`
	CustomerEmail string        `json:"customerEmail,omitempty"`
	Car           string        `json:"car,omitempty"`
	PickupDate    *time.Time    `json:"pickupDate,omitempty"`
	ReturnDate    *time.Time    `json:"returnDate,omitempty"`
	Status        BookingStatus `json:"status,omitempty"`
	PrevStatus    BookingStatus `json:"prevStatus,omitempty"`

	Email string `json:"email,omitempty"`
}

// MessageKey groups a booking's events together on the broker.
func (e DomainEvent) MessageKey() string {
	if e.BookingID != "" {
		return e.BookingID
	}
	return e.Email
}
