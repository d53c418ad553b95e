package wizard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heritagepalace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the unauthenticated wizard surface: opening,
// reading and editing a session. Progression past Details is on the
// protected group (RegisterProtectedRoutes).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/wizard", h.Open)
	rg.GET("/wizard/:id", h.Get)
	rg.PATCH("/wizard/:id/party", h.UpdateParty)
	rg.POST("/wizard/:id/back", h.Back)
	rg.DELETE("/wizard/:id", h.Close)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.PUT("/wizard/:id/details", h.SubmitDetails)
	rg.POST("/wizard/:id/payment", h.SelectPayment)
	rg.POST("/wizard/:id/confirm", h.Confirm)
}

func (h *Handler) Open(c *gin.Context) {
	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Open(c.Request.Context(), req.RoomID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, view)
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) UpdateParty(c *gin.Context) {
	var req PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.UpdateParty(c.Request.Context(), c.Param("id"), req.Op)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) SubmitDetails(c *gin.Context) {
	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.SubmitDetails(c.Request.Context(), c.Param("id"), DetailsInput{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) SelectPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.SelectPayment(c.Request.Context(), c.Param("id"), req.Method)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Confirm(c *gin.Context) {
	userID := c.GetInt64("user_id")
	userEmail := c.GetString("user_email")

	view, err := h.service.Confirm(c.Request.Context(), c.Param("id"), userID, userEmail)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Back(c *gin.Context) {
	view, err := h.service.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Close(c *gin.Context) {
	if err := h.service.Close(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Wizard session not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, ErrWrongStep), errors.Is(err, ErrSubmitting):
		response.Error(c, http.StatusConflict, "CONFLICT", "Action not allowed at this step")
	case errors.Is(err, ErrPaymentFailed):
		response.Error(c, http.StatusBadGateway, "PAYMENT_FAILED", "Payment failed. Please try again.")
	case errors.Is(err, ErrCancelled):
		response.Error(c, http.StatusConflict, "CONFLICT", "Wizard session was closed")
	default:
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
