package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"₹3,500", 3500},
		{"₹5,500", 5500},
		{"₹8,500", 8500},
		{"900", 900},
		{"INR 1 250", 1250},
		{"", 0},
		{"free", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.in), "input %q", tt.in)
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2025-01-10", "2025-01-12", 2},
		{"same day", "2025-01-10", "2025-01-10", 0},
		{"checkout before checkin", "2025-01-12", "2025-01-10", 0},
		{"missing checkout", "2025-01-10", "", 0},
		{"garbage", "soon", "later", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestGSTRate_Slabs(t *testing.T) {
	assert.Equal(t, 0.0, GSTRate(900))
	assert.Equal(t, 0.0, GSTRate(1000))
	assert.Equal(t, 0.12, GSTRate(1001))
	assert.Equal(t, 0.12, GSTRate(5000))
	assert.Equal(t, 0.12, GSTRate(7500))
	assert.Equal(t, 0.18, GSTRate(7501))
	assert.Equal(t, 0.18, GSTRate(9000))
}

func TestCompute(t *testing.T) {
	q := Compute(5000, 2, 3)
	assert.Equal(t, 30000, q.BaseAmount)
	assert.Equal(t, 0.12, q.GSTRate)
	assert.Equal(t, 3600, q.TaxAmount)
	assert.Equal(t, 33600, q.TotalAmount)
}

func TestCompute_ZeroNightsBilledAsOne(t *testing.T) {
	q := Compute(3500, 1, 0)
	assert.Equal(t, 1, q.Nights)
	assert.Equal(t, 3500, q.BaseAmount)

	q = Compute(3500, 1, -2)
	assert.Equal(t, 1, q.Nights)
}

func TestCompute_NoTaxBelowSlab(t *testing.T) {
	q := Compute(900, 2, 2)
	assert.Equal(t, 3600, q.BaseAmount)
	assert.Equal(t, 0, q.TaxAmount)
	assert.Equal(t, q.BaseAmount, q.TotalAmount)
}

func TestCompute_HighSlabRounding(t *testing.T) {
	// 9000 * 1 * 1 = 9000, 18% = 1620
	q := Compute(9000, 1, 1)
	assert.Equal(t, 0.18, q.GSTRate)
	assert.Equal(t, 1620, q.TaxAmount)
	assert.Equal(t, 10620, q.TotalAmount)
}
