package domain

import "time"

type Testimonial struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Location  string    `json:"location,omitempty"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Text      string    `json:"text" validate:"required"`
	Avatar    string    `json:"avatar,omitempty"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
}
