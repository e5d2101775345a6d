package entity

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "user"
)

// AdminUser is a dashboard operator.
type AdminUser struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	Email        string    `json:"email" db:"email" bson:"email"`
	Name         string    `json:"name" db:"name" bson:"name"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"passwordHash"`
	Role         string    `json:"role" db:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// Customer is a website user who books cars.
type Customer struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	FullName     string    `json:"fullName" db:"full_name" bson:"fullName"`
	Email        string    `json:"email" db:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" db:"phone" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"passwordHash"`
	Role         string    `json:"role" db:"role" bson:"role"`
	IsActive     bool      `json:"isActive" db:"is_active" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}

// Claims is what a bearer token carries.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
