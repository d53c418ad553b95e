package ticket

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"heritagepalace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/:id/ticket", h.DownloadTicket)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// DownloadTicket streams the rendered card as a JPEG attachment. The
// client passes the measured element size through w/h so the raster
// matches what is on screen.
func (h *Handler) DownloadTicket(c *gin.Context) {
	width := queryInt(c, "w", DefaultWidth)
	height := queryInt(c, "h", DefaultHeight)

	img, b, err := h.service.RenderTicket(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), width, height)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, img); err != nil {
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to encode ticket image")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Booking-%s.jpg", b.ID))
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Booking belongs to another user")
	case errors.Is(err, ErrBadDimensions):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ticket dimensions")
	default:
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to render ticket")
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
