package domain

import "time"

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Slug        string    `json:"slug" gorm:"uniqueIndex"`
	Price       string    `json:"price" validate:"required"` // display string, e.g. "₹3,500"
	Image       string    `json:"image"`
	Images      []string  `json:"images,omitempty" gorm:"serializer:json"`
	Description string    `json:"description,omitempty"`
	Size        string    `json:"size,omitempty"`
	Amenities   []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
