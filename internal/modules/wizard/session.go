package wizard

import (
	"time"

	"github.com/google/uuid"

	"heritagepalace/internal/domain"
	"heritagepalace/internal/modules/pricing"
)

// Wizard steps. Every session starts at Details; Ticket is terminal.
const (
	StepDetails = 1
	StepPayment = 2
	StepTicket  = 3
)

// Session is the ephemeral state of one open booking modal. It lives in
// Redis for the modal's lifetime and is discarded on close; opening the
// wizard always creates a fresh session at step 1.
type Session struct {
	ID     string `json:"id"`
	RoomID int64  `json:"room_id"`
	Step   int    `json:"step"`

	CheckIn  string        `json:"check_in"`
	CheckOut string        `json:"check_out"`
	Party    pricing.Party `json:"party"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Submitting    bool                 `json:"submitting"`
	LastError     string               `json:"last_error,omitempty"`
	BookingID     string               `json:"booking_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func newSession(roomID int64, now time.Time) *Session {
	return &Session{
		ID:            uuid.NewString(),
		RoomID:        roomID,
		Step:          StepDetails,
		Party:         pricing.NewParty(),
		PaymentMethod: domain.PaymentCard,
		CreatedAt:     now,
	}
}

// Nights of the currently selected stay; 0 until both dates are set.
func (s *Session) Nights() int {
	return pricing.Nights(s.CheckIn, s.CheckOut)
}
