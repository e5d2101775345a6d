package entity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want BookingStatus
	}{
		{"Pending", BookingStatusPending},
		{"  confirmed ", BookingStatusConfirmed},
		{"COMPLETED", BookingStatusCompleted},
		{"cancelled", BookingStatusCancelled},
		{"active", BookingStatusActive},
		{"canceled", BookingStatusUnknown},
		{"confirmed!", BookingStatusUnknown},
		{"", BookingStatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.raw), tt.raw)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCompleted, status)

	for _, raw := range []string{"Active", "shipped", ""} {
		_, err := ParseStatus(raw)
		assert.True(t, errors.Is(err, ErrInvalidBookingStatus), raw)
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, BookingStatus("confirmed").IsActive())
	assert.True(t, BookingStatus("Active").IsActive())
	assert.False(t, BookingStatus("Pending").IsActive())

	assert.True(t, BookingStatus("completed").IsRevenueEligible())
	assert.True(t, BookingStatus("ACTIVE").IsRevenueEligible())
	assert.False(t, BookingStatus("Cancelled").IsRevenueEligible())
	assert.False(t, BookingStatus("weird").IsRevenueEligible())

	assert.True(t, BookingStatus("pending").Is(BookingStatusPending))
	assert.False(t, BookingStatus("").Is(BookingStatusUnknown))
}

func TestBookingRevenue(t *testing.T) {
	total, legacy := 120.0, 80.0

	assert.Equal(t, 120.0, (&Booking{TotalPrice: &total, Price: &legacy}).Revenue())
	assert.Equal(t, 80.0, (&Booking{Price: &legacy}).Revenue())
	assert.Zero(t, (&Booking{}).Revenue())
}

func TestBookingWithCarJSON(t *testing.T) {
	withCar, err := json.Marshal(BookingWithCar{
		Booking: Booking{ID: "b1", CarID: "c1"},
		Car:     &Car{ID: "c1", Brand: "Toyota"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(withCar), `"car":{"_id":"c1"`)

	dangling, err := json.Marshal(BookingWithCar{Booking: Booking{ID: "b2", CarID: "gone"}})
	require.NoError(t, err)
	assert.Contains(t, string(dangling), `"car":null`)
	assert.NotContains(t, string(dangling), "gone")
}

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-10", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{"2025-03-10T09:30", time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)},
		{"2025-03-10T09:30:15", time.Date(2025, time.March, 10, 9, 30, 15, 0, time.UTC)},
		{"2025-03-10T09:30:00+02:00", time.Date(2025, time.March, 10, 7, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseFlexibleTime(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
	}

	_, err := ParseFlexibleTime("10/03/2025")
	assert.Error(t, err)
}

func TestFlexibleTimeJSON(t *testing.T) {
	var in struct {
		From FlexibleTime  `json:"from"`
		To   *FlexibleTime `json:"to"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2025-03-10","to":null}`), &in))
	assert.Equal(t, 2025, in.From.Year())
	assert.Nil(t, in.To)

	assert.Error(t, json.Unmarshal([]byte(`{"from":20250310}`), &in))

	out, err := json.Marshal(FlexibleTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestFlexibleTimeUnmarshalParam(t *testing.T) {
	var ft FlexibleTime
	require.NoError(t, ft.UnmarshalParam("2025-03-10T09:30"))
	assert.Equal(t, 9, ft.Hour())

	require.NoError(t, ft.UnmarshalParam("  "))
	assert.True(t, ft.IsZero())

	assert.Error(t, ft.UnmarshalParam("tomorrow"))
}
