package domain

import "time"

// GuestProfile keeps running lifetime counters per user. Counters are
// updated additively so concurrent bookings combine in any order.
type GuestProfile struct {
	UserID        int64     `json:"user_id" gorm:"primaryKey"`
	Email         string    `json:"email"`
	LastBookingAt time.Time `json:"last_booking_at"`
	BookingsCount int       `json:"bookings_count"`
	TotalSpend    int       `json:"total_spend"`
	UpdatedAt     time.Time `json:"updated_at"`
}
