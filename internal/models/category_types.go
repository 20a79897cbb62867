package models

import "time"

// Category defines the struct for the 'categories' table
type Category struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	MainImage   string    `json:"mainImage" db:"main_image"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
