package entity

import "time"

type Subscriber struct {
	ID        string    `json:"_id" db:"id" bson:"_id"`
	Email     string    `json:"email" db:"email" bson:"email"`
	IsActive  bool      `json:"isActive" db:"is_active" bson:"isActive"`
	Source    string    `json:"source" db:"source" bson:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}
