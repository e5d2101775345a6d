package entity

import "strings"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"

	// BookingStatusActive is never persisted, older records may still carry it.
	BookingStatusActive  BookingStatus = "Active"
	BookingStatusUnknown BookingStatus = ""
)

// BookingStatuses is the persisted vocabulary, in display order.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// NormalizeStatus maps free-form input onto the closed status set.
// Matching is case-insensitive and exact after trimming.
func NormalizeStatus(raw string) BookingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return BookingStatusPending
	case "confirmed":
		return BookingStatusConfirmed
	case "completed":
		return BookingStatusCompleted
	case "cancelled":
		return BookingStatusCancelled
	case "active":
		return BookingStatusActive
	default:
		return BookingStatusUnknown
	}
}

// ParseStatus accepts only statuses that may be written.
func ParseStatus(raw string) (BookingStatus, error) {
	status := NormalizeStatus(raw)
	if status == BookingStatusUnknown || status == BookingStatusActive {
		return BookingStatusUnknown, ErrInvalidBookingStatus
	}
	return status, nil
}

func (s BookingStatus) Normalize() BookingStatus {
	return NormalizeStatus(string(s))
}

// IsActive is true for confirmed and the informal active alias.
func (s BookingStatus) IsActive() bool {
	n := s.Normalize()
	return n == BookingStatusConfirmed || n == BookingStatusActive
}

func (s BookingStatus) IsRevenueEligible() bool {
	return s.IsActive() || s.Normalize() == BookingStatusCompleted
}

func (s BookingStatus) Is(other BookingStatus) bool {
	n := s.Normalize()
	return n != BookingStatusUnknown && n == other.Normalize()
}
