package entity

import (
	"time"
)

type Booking struct {
	ID string `json:"_id" db:"id" bson:"_id"`

	// CarID is optional; the snapshot fields survive deletion of the car.
	CarID    string `json:"car,omitempty" db:"car_id" bson:"car,omitempty"`
	CarBrand string `json:"carBrand,omitempty" db:"car_brand" bson:"carBrand,omitempty"`
	CarModel string `json:"carModel,omitempty" db:"car_model" bson:"carModel,omitempty"`
	CarPlate string `json:"carPlate,omitempty" db:"car_plate" bson:"carPlate,omitempty"`

	CustomerName  string `json:"customerName" db:"customer_name" bson:"customerName" validate:"required,max=200"`
	CustomerEmail string `json:"customerEmail,omitempty" db:"customer_email" bson:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone string `json:"customerPhone,omitempty" db:"customer_phone" bson:"customerPhone,omitempty"`

	PickupDate time.Time     `json:"pickupDate" db:"pickup_date" bson:"pickupDate" validate:"required"`
	ReturnDate time.Time     `json:"returnDate" db:"return_date" bson:"returnDate" validate:"required"`
	Status     BookingStatus `json:"status" db:"status" bson:"status"`

	TotalPrice *float64 `json:"totalPrice,omitempty" db:"total_price" bson:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	// Price is the legacy amount column written by older clients.
	Price *float64 `json:"price,omitempty" db:"price" bson:"price,omitempty" validate:"omitempty,gte=0"`
	Notes *string  `json:"notes,omitempty" db:"notes" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// Revenue is totalPrice, else the legacy price, else 0.
func (b *Booking) Revenue() float64 {
	if b.TotalPrice != nil {
		return *b.TotalPrice
	}
	if b.Price != nil {
		return *b.Price
	}
	return 0
}

// HasCar reports whether the booking references a car at all.
func (b *Booking) HasCar() bool {
	return b.CarID != ""
}

// BookingWithCar is a booking with its car attached when the car still exists.
// Car shadows the embedded reference and is null once the car is gone.
type BookingWithCar struct {
	Booking
	Car *Car `json:"car"`
}

type BookingFilter struct {
	Status        BookingStatus
	CustomerEmail string
}
