package entity

import "time"

type Car struct {
	ID              string    `json:"_id" db:"id" bson:"_id"`
	Brand           string    `json:"brand" db:"brand" bson:"brand" validate:"required,max=100"`
	Model           string    `json:"model" db:"model" bson:"model" validate:"required,max=100"`
	Year            int       `json:"year" db:"year" bson:"year" validate:"required,gte=1900,lte=2100"`
	Category        string    `json:"category" db:"category" bson:"category" validate:"required"`
	Transmission    string    `json:"transmission" db:"transmission" bson:"transmission" validate:"required"`
	FuelType        string    `json:"fuel_type" db:"fuel_type" bson:"fuel_type" validate:"required"`
	SeatingCapacity int       `json:"seating_capacity" db:"seating_capacity" bson:"seating_capacity" validate:"required,gte=1,lte=100"`
	Location        string    `json:"location" db:"location" bson:"location" validate:"required"`
	PricePerDay     float64   `json:"pricePerDay" db:"price_per_day" bson:"pricePerDay" validate:"required,gt=0"`
	Description     string    `json:"description" db:"description" bson:"description"`
	Image           string    `json:"image" db:"image" bson:"image"`
	IsAvailable     bool      `json:"isAvailable" db:"is_available" bson:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// CarFilter for public listing
type CarFilter struct {
	OnlyAvailable bool
}
