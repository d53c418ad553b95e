package wizard

import "heritagepalace/internal/domain"

type OpenRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}

type DetailsRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type PartyRequest struct {
	Op string `json:"op" binding:"required"`
}

type PaymentRequest struct {
	Method domain.PaymentMethod `json:"method" binding:"required"`
}
