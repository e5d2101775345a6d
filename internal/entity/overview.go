package entity

import "time"

// Overview is the admin dashboard snapshot.
type Overview struct {
	TotalCars         int     `json:"totalCars"`
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`

	ActiveBookings   int          `json:"activeBookings"`
	UtilizationRate  float64      `json:"utilizationRate"`
	AvgBookingLength float64      `json:"avgBookingLength"`
	CancellationRate float64      `json:"cancellationRate"`
	TopCars          []TopCar     `json:"topCars"`
	PaymentSplit     PaymentSplit `json:"paymentSplit"`

	DailySeries   []SeriesPoint `json:"dailySeries"`
	WeeklySeries  []SeriesPoint `json:"weeklySeries"`
	MonthlySeries []SeriesPoint `json:"monthlySeries"`
	YearlySeries  []SeriesPoint `json:"yearlySeries"`

	RecentBookings []BookingWithCar `json:"recentBookings"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// TopCar aggregates bookings by car reference. Display fields stay empty
// when the car no longer exists; CarID is nil for bookings without a car.
type TopCar struct {
	CarID    *string `json:"carId"`
	Brand    string  `json:"brand,omitempty"`
	Model    string  `json:"model,omitempty"`
	Image    string  `json:"image,omitempty"`
	Location string  `json:"location,omitempty"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type PaymentMethod string

const (
	PaymentMTN     PaymentMethod = "mtn"
	PaymentAirtel  PaymentMethod = "airtel"
	PaymentCard    PaymentMethod = "card"
	PaymentUnknown PaymentMethod = "unknown"
)

type PaymentSplit struct {
	MTN     int `json:"mtn"`
	Airtel  int `json:"airtel"`
	Card    int `json:"card"`
	Unknown int `json:"unknown"`
}

func (p *PaymentSplit) Add(m PaymentMethod) {
	switch m {
	case PaymentMTN:
		p.MTN++
	case PaymentAirtel:
		p.Airtel++
	case PaymentCard:
		p.Card++
	default:
		p.Unknown++
	}
}

// SeriesPoint is one bucket of a revenue series.
type SeriesPoint struct {
	Period   string  `json:"period"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}
