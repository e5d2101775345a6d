package entity

import "time"

type BlogPost struct {
	ID          string    `json:"_id" db:"id" bson:"_id"`
	Title       string    `json:"title" db:"title" bson:"title" validate:"required,max=300"`
	Tag         string    `json:"tag" db:"tag" bson:"tag"`
	Date        string    `json:"date" db:"date" bson:"date"`
	ReadingTime string    `json:"readingTime" db:"reading_time" bson:"readingTime"`
	Author      string    `json:"author" db:"author" bson:"author"`
	Image       string    `json:"image" db:"image" bson:"image"`
	Excerpt     string    `json:"excerpt" db:"excerpt" bson:"excerpt"`
	Content     []string  `json:"content" db:"-" bson:"content"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" bson:"updatedAt"`
}
