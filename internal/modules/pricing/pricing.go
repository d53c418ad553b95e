package pricing

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// GST slabs for hotel stays, keyed to the unit price per night.
const (
	slabZeroLimit = 1000
	slabMidLimit  = 7500

	rateMid  = 0.12
	rateHigh = 0.18
)

const dateLayout = "2006-01-02"

type Quote struct {
	PricePerNight int     `json:"price_per_night"`
	RoomsCount    int     `json:"rooms_count"`
	Nights        int     `json:"nights"` // nights actually billed, never below 1
	BaseAmount    int     `json:"base_amount"`
	GSTRate       float64 `json:"gst_rate"`
	TaxAmount     int     `json:"tax_amount"`
	TotalAmount   int     `json:"total_amount"`
}

// ParsePrice extracts the numeric amount from a display price such as
// "₹3,500". A string without digits parses to 0.
func ParsePrice(display string) int {
	var b strings.Builder
	for _, r := range display {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n := 0
	for _, r := range b.String() {
		n = n*10 + int(r-'0')
	}
	return n
}

// Nights returns the whole calendar days between check-in and check-out.
// Unparseable or missing dates, and check-out on or before check-in,
// yield 0; billing treats 0 as a single night (see Compute).
func Nights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	n := int(math.Ceil(end.Sub(start).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// GSTRate is a step function of the unit price per night, not of the
// aggregate stay amount.
func GSTRate(pricePerNight int) float64 {
	switch {
	case pricePerNight <= slabZeroLimit:
		return 0
	case pricePerNight <= slabMidLimit:
		return rateMid
	default:
		return rateHigh
	}
}

// Compute builds a quote from the current wizard inputs. It is pure and
// cheap, so callers recompute on every input change instead of caching.
func Compute(pricePerNight, roomsCount, nights int) Quote {
	if nights <= 0 {
		nights = 1
	}
	if roomsCount < 1 {
		roomsCount = 1
	}

	base := pricePerNight * roomsCount * nights
	rate := GSTRate(pricePerNight)
	tax := int(math.Round(float64(base) * rate))

	return Quote{
		PricePerNight: pricePerNight,
		RoomsCount:    roomsCount,
		Nights:        nights,
		BaseAmount:    base,
		GSTRate:       rate,
		TaxAmount:     tax,
		TotalAmount:   base + tax,
	}
}
