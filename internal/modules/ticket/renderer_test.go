package ticket

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritagepalace/internal/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "BK-7Q2M9X",
		UserID:        7,
		GuestName:     "Rahul Verma",
		GuestPhone:    "+91 98765 43210",
		CheckIn:       "2025-01-10",
		CheckOut:      "2025-01-12",
		Nights:        2,
		Adults:        2,
		Children:      1,
		RoomsCount:    1,
		RoomName:      "Super Deluxe",
		PricePerNight: 5500,
		PaymentMethod: domain.PaymentCard,
		BaseAmount:    11000,
		TaxAmount:     1320,
		TotalAmount:   12320,
		Currency:      "INR",
		Status:        domain.BookingConfirmed,
	}
}

func TestRender_ExactDimensions(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name          string
		width, height int
	}{
		{"default card", DefaultWidth, DefaultHeight},
		{"measured element", 512, 768},
		{"small", 320, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Render(sampleBooking(), tt.width, tt.height)
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestRender_Background(t *testing.T) {
	r := NewRenderer()

	img, err := r.Render(sampleBooking(), 200, 200)
	require.NoError(t, err)

	// Bottom-right corner is untouched by text and the accent bar.
	got := img.At(199, 199)
	rr, gg, bb, _ := got.RGBA()
	assert.Equal(t, uint32(0x0f), rr>>8)
	assert.Equal(t, uint32(0x17), gg>>8)
	assert.Equal(t, uint32(0x2a), bb>>8)
}

func TestRender_RejectsBadDimensions(t *testing.T) {
	r := NewRenderer()

	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-1, 100}, {100000, 100}} {
		_, err := r.Render(sampleBooking(), dims[0], dims[1])
		assert.ErrorIs(t, err, ErrBadDimensions, "dims %v", dims)
	}
}

func TestEncodeJPEG(t *testing.T) {
	r := NewRenderer()
	img, err := r.Render(sampleBooking(), DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeJPEG(&buf, img))
	require.NotZero(t, buf.Len())

	decoded, format, err := image.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, DefaultWidth, decoded.Bounds().Dx())
}
