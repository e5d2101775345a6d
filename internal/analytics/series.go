package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
)

const (
	dailyBuckets   = 7
	weeklyBuckets  = 8
	monthlyBuckets = 12
	yearlyBuckets  = 5
)

// All windows run from a UTC calendar boundary up to now, inclusive.

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type bucket struct {
	key      string
	label    string
	revenue  float64
	bookings int
}

// collect sums revenue-eligible bookings picked up inside [from, to] by keyFn.
func collect(bookings []entity.Booking, from, to time.Time, keyFn func(time.Time) (string, string)) map[string]*bucket {
	out := make(map[string]*bucket)
	for i := range bookings {
		b := &bookings[i]
		if !b.Status.IsRevenueEligible() || b.PickupDate.IsZero() {
			continue
		}
		p := b.PickupDate.UTC()
		if p.Before(from) || p.After(to) {
			continue
		}
		key, label := keyFn(p)
		bk, ok := out[key]
		if !ok {
			bk = &bucket{key: key, label: label}
			out[key] = bk
		}
		bk.revenue += b.Revenue()
		bk.bookings++
	}
	return out
}

// sparse orders the buckets that have data and keeps at most limit of them.
func sparse(buckets map[string]*bucket, limit int) []entity.SeriesPoint {
	points := make([]entity.SeriesPoint, 0, len(buckets))
	for _, bk := range buckets {
		points = append(points, entity.SeriesPoint{
			Period:   bk.key,
			Label:    bk.label,
			Revenue:  bk.revenue,
			Bookings: bk.bookings,
		})
	}
	// keys are zero-padded so they sort lexically
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	if len(points) > limit {
		points = points[:limit]
	}
	return points
}

func dayKey(t time.Time) (string, string) {
	return t.Format("2006-01-02"), t.Format("02 Jan")
}

func isoWeekKey(t time.Time) (string, string) {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), fmt.Sprintf("W%d", week)
}

func monthKey(t time.Time) (string, string) {
	return t.Format("2006-01"), t.Format("Jan 06")
}

func yearKey(t time.Time) (string, string) {
	y := t.Format("2006")
	return y, y
}

// DailySeries always returns seven days ending today, oldest first.
func DailySeries(now time.Time, bookings []entity.Booking) []entity.SeriesPoint {
	now = now.UTC()
	from := startOfDay(now).AddDate(0, 0, -(dailyBuckets - 1))
	found := collect(bookings, from, now, dayKey)

	points := make([]entity.SeriesPoint, 0, dailyBuckets)
	for i := 0; i < dailyBuckets; i++ {
		day := from.AddDate(0, 0, i)
		key, label := dayKey(day)
		p := entity.SeriesPoint{Period: key, Label: label}
		if bk, ok := found[key]; ok {
			p.Revenue = bk.revenue
			p.Bookings = bk.bookings
		}
		points = append(points, p)
	}
	return points
}

// WeeklySeries covers the current ISO week and the seven before it.
func WeeklySeries(now time.Time, bookings []entity.Booking) []entity.SeriesPoint {
	now = now.UTC()
	today := startOfDay(now)
	// Monday of the current ISO week
	offset := (int(today.Weekday()) + 6) % 7
	from := today.AddDate(0, 0, -offset-7*(weeklyBuckets-1))
	return sparse(collect(bookings, from, now, isoWeekKey), weeklyBuckets)
}

// MonthlySeries covers the current month and the eleven before it.
func MonthlySeries(now time.Time, bookings []entity.Booking) []entity.SeriesPoint {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month()-(monthlyBuckets-1), 1, 0, 0, 0, 0, time.UTC)
	return sparse(collect(bookings, from, now, monthKey), monthlyBuckets)
}

// YearlySeries covers the current year and the four before it.
func YearlySeries(now time.Time, bookings []entity.Booking) []entity.SeriesPoint {
	now = now.UTC()
	from := time.Date(now.Year()-(yearlyBuckets-1), time.January, 1, 0, 0, 0, 0, time.UTC)
	return sparse(collect(bookings, from, now, yearKey), yearlyBuckets)
}
