package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentUPI    PaymentMethod = "upi"
	PaymentWallet PaymentMethod = "wallet"
)

type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "paid"
)

// Booking is the immutable record written once when a wizard session
// completes payment. The ID is the user-facing BK-XXXXXX reference.
type Booking struct {
	ID        string `json:"booking_id" gorm:"primaryKey;size:16"`
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email"`

	GuestName  string `json:"guest_name"`
	GuestPhone string `json:"guest_phone"`

	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	RoomsCount int    `json:"rooms_count"`

	// Room snapshot as it was at booking time.
	RoomID        int64  `json:"room_id"`
	RoomName      string `json:"room_name"`
	RoomImage     string `json:"room_image"`
	PricePerNight int    `json:"price_per_night"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	BaseAmount    int           `json:"base_amount"`
	TaxAmount     int           `json:"tax_amount"`
	TotalAmount   int           `json:"total_amount"`
	Currency      string        `json:"currency"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
