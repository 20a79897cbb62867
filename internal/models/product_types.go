package models

import (
	"time"
)

// DefaultMaterial is applied when a product is created without one.
const DefaultMaterial = "316L Stainless Steel"

// Product is the model for the 'products' table.
// Images is stored as a JSON array column; the first URL is the primary image.
type Product struct {
	ID          int64  `json:"id" db:"id"`
	CategoryID  int64  `json:"categoryId" db:"category_id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	SKU         string `json:"sku" db:"sku"`
	Material    string `json:"material" db:"material"`
	Description string `json:"description" db:"description"`

	// TechnicalSpecs is free text: either a JSON array of {label,value}
	// pairs or "Label: Value" lines. Never parsed on write.
	TechnicalSpecs string `json:"technicalSpecs" db:"technical_specs"`

	Images      []string `json:"images"`
	IsPublished bool     `json:"isPublished" db:"is_published"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Joined from the parent category for breadcrumbs and admin listings
	CategoryName string `json:"categoryName,omitempty" db:"-"`
	CategorySlug string `json:"categorySlug,omitempty" db:"-"`
}
