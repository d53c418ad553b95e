package ticket

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"heritagepalace/internal/domain"
)

// Default card size; callers pass explicit dimensions when the visual
// ticket element measures differently, so the raster never crops.
const (
	DefaultWidth  = 640
	DefaultHeight = 400

	maxDimension = 4096
)

var (
	bgColor     = color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff} // slate-900
	accentColor = color.NRGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff} // orange-500
	textColor   = color.NRGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	mutedColor  = color.NRGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render composes the confirmation card for a booking at exactly the
// requested pixel size.
func (r *Renderer) Render(b *domain.Booking, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, ErrBadDimensions
	}

	canvas := imaging.New(width, height, bgColor)

	accent := imaging.New(width, 6, accentColor)
	canvas = imaging.Paste(canvas, accent, image.Pt(0, 0))

	lines := []struct {
		text  string
		color color.NRGBA
		gap   int
	}{
		{"SHYAM HERITAGE PALACE", accentColor, 34},
		{"Booking Confirmed", textColor, 26},
		{fmt.Sprintf("Booking ID  %s", b.ID), textColor, 30},
		{fmt.Sprintf("Guest       %s", b.GuestName), mutedColor, 20},
		{fmt.Sprintf("Phone       %s", b.GuestPhone), mutedColor, 26},
		{fmt.Sprintf("Check-in    %s", b.CheckIn), textColor, 20},
		{fmt.Sprintf("Check-out   %s", b.CheckOut), textColor, 20},
		{fmt.Sprintf("%d night(s) - %s x%d", b.Nights, b.RoomName, b.RoomsCount), mutedColor, 20},
		{fmt.Sprintf("%d adult(s), %d child(ren)", b.Adults, b.Children), mutedColor, 30},
		{fmt.Sprintf("Room charges   %s %d", b.Currency, b.BaseAmount), textColor, 20},
		{fmt.Sprintf("Taxes & fees   %s %d", b.Currency, b.TaxAmount), textColor, 24},
		{fmt.Sprintf("TOTAL PAID     %s %d (%s)", b.Currency, b.TotalAmount, b.PaymentMethod), accentColor, 0},
	}

	drawer := font.Drawer{
		Dst:  canvas,
		Face: basicfont.Face7x13,
	}

	y := 40
	for _, line := range lines {
		if y > height-10 {
			break
		}
		drawer.Src = image.NewUniform(line.color)
		drawer.Dot = fixed.P(24, y)
		drawer.DrawString(line.text)
		y += line.gap
	}

	return canvas, nil
}

// EncodeJPEG writes the rendered ticket the way the site offers it for
// download.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(95))
}

func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
