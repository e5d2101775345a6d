// Package analytics turns a snapshot of bookings and cars into the admin
// dashboard figures. Nothing here touches storage.
package analytics

import (
	"sort"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
)

const (
	topCarsLimit        = 5
	recentBookingsLimit = 5
)

// Compute builds the dashboard snapshot for the given instant.
// Inputs are not modified.
func Compute(now time.Time, bookings []entity.Booking, cars []entity.Car) *entity.Overview {
	now = now.UTC()

	carsByID := make(map[string]*entity.Car, len(cars))
	for i := range cars {
		carsByID[cars[i].ID] = &cars[i]
	}

	o := &entity.Overview{
		TotalCars:     len(cars),
		TotalBookings: len(bookings),
		GeneratedAt:   now,
	}

	var lengthSum float64
	var lengthCount int

	for i := range bookings {
		b := &bookings[i]

		switch b.Status.Normalize() {
		case entity.BookingStatusPending:
			o.PendingBookings++
		case entity.BookingStatusCompleted:
			o.CompletedBookings++
		case entity.BookingStatusCancelled:
			o.CancelledBookings++
		}

		if isActiveAt(b, now) {
			o.ActiveBookings++
		}

		if days, ok := BookingLengthDays(b); ok {
			lengthSum += float64(days)
			lengthCount++
		}

		o.PaymentSplit.Add(ClassifyPayment(b.Notes))
	}

	o.CancellationRate = percent(o.CancelledBookings, o.TotalBookings)
	o.UtilizationRate = percent(o.ActiveBookings, o.TotalCars)
	if lengthCount > 0 {
		o.AvgBookingLength = lengthSum / float64(lengthCount)
	}

	o.TopCars = TopCars(bookings, carsByID, topCarsLimit)

	o.DailySeries = DailySeries(now, bookings)
	o.WeeklySeries = WeeklySeries(now, bookings)
	o.MonthlySeries = MonthlySeries(now, bookings)
	o.YearlySeries = YearlySeries(now, bookings)

	// trailing seven days, kept under its historical name
	for _, p := range o.DailySeries {
		o.MonthlyRevenue += p.Revenue
	}

	o.RecentBookings = RecentBookings(bookings, carsByID, recentBookingsLimit)

	return o
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// isActiveAt: confirmed/active and now within [pickup, return], both ends inclusive.
func isActiveAt(b *entity.Booking, now time.Time) bool {
	if !b.Status.IsActive() {
		return false
	}
	if b.PickupDate.IsZero() || b.ReturnDate.IsZero() {
		return false
	}
	return !b.PickupDate.After(now) && !b.ReturnDate.Before(now)
}

// BookingLengthDays is the inclusive calendar-day count of a booking.
// A same-day rental is one day.
func BookingLengthDays(b *entity.Booking) (int, bool) {
	if b.PickupDate.IsZero() || b.ReturnDate.IsZero() {
		return 0, false
	}
	return civilDay(b.ReturnDate) - civilDay(b.PickupDate) + 1, true
}

// civilDay numbers UTC calendar days.
func civilDay(t time.Time) int {
	t = t.UTC()
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// TopCars ranks car references by booking count. Ties keep the order in
// which the car first appears in bookings. Revenue sums every booking of
// the car regardless of status.
func TopCars(bookings []entity.Booking, carsByID map[string]*entity.Car, limit int) []entity.TopCar {
	index := make(map[string]int)
	ranked := make([]entity.TopCar, 0)

	for i := range bookings {
		b := &bookings[i]
		pos, ok := index[b.CarID]
		if !ok {
			pos = len(ranked)
			index[b.CarID] = pos
			entry := entity.TopCar{}
			if b.HasCar() {
				id := b.CarID
				entry.CarID = &id
			}
			ranked = append(ranked, entry)
		}
		ranked[pos].Bookings++
		ranked[pos].Revenue += b.Revenue()
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Bookings > ranked[j].Bookings
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for i := range ranked {
		if ranked[i].CarID == nil {
			continue
		}
		if car, ok := carsByID[*ranked[i].CarID]; ok {
			ranked[i].Brand = car.Brand
			ranked[i].Model = car.Model
			ranked[i].Image = car.Image
			ranked[i].Location = car.Location
		}
	}
	return ranked
}

// RecentBookings returns the newest bookings by creation time with their
// car attached when it still exists.
func RecentBookings(bookings []entity.Booking, carsByID map[string]*entity.Car, limit int) []entity.BookingWithCar {
	order := make([]int, len(bookings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return bookings[order[i]].CreatedAt.After(bookings[order[j]].CreatedAt)
	})
	if len(order) > limit {
		order = order[:limit]
	}

	recent := make([]entity.BookingWithCar, 0, len(order))
	for _, idx := range order {
		item := entity.BookingWithCar{Booking: bookings[idx]}
		if car, ok := carsByID[item.CarID]; ok && item.HasCar() {
			c := *car
			item.Car = &c
		}
		recent = append(recent, item)
	}
	return recent
}
