package entity

import "time"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

type Testimonial struct {
	ID        string    `json:"_id" db:"id" bson:"_id"`
	Name      string    `json:"name" db:"name" bson:"name" validate:"required,max=200"`
	Role      string    `json:"role" db:"role" bson:"role"`
	Trip      string    `json:"trip" db:"trip" bson:"trip"`
	Text      string    `json:"text" db:"text" bson:"text" validate:"required"`
	Rating    int       `json:"rating" db:"rating" bson:"rating" validate:"gte=1,lte=5"`
	Image     string    `json:"image" db:"image" bson:"image"`
	IsActive  bool      `json:"isActive" db:"is_active" bson:"isActive"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}
