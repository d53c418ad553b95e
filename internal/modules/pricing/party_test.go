package pricing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredRooms(t *testing.T) {
	tests := []struct {
		adults int
		want   int
	}{
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RequiredRooms(tt.adults), "adults=%d", tt.adults)
	}
}

func TestParty_AdultIncreaseRaisesRooms(t *testing.T) {
	p := NewParty()
	for i := 0; i < 3; i++ {
		p.AddAdult() // 2, 3, 4 adults
	}
	assert.Equal(t, 4, p.Adults)
	assert.Equal(t, 2, p.Rooms)
}

func TestParty_AdultDecreaseKeepsRooms(t *testing.T) {
	p := NewParty()
	for i := 0; i < 6; i++ {
		p.AddAdult()
	}
	require.Equal(t, 7, p.Adults)
	require.Equal(t, 3, p.Rooms)

	for i := 0; i < 6; i++ {
		p.RemoveAdult()
	}
	assert.Equal(t, 1, p.Adults)
	assert.Equal(t, 3, p.Rooms, "extra rooms survive an adult decrease")
}

func TestParty_RoomDecrementBelowMinimumIsNoop(t *testing.T) {
	p := NewParty()
	for i := 0; i < 3; i++ {
		p.AddAdult() // 4 adults -> 2 rooms
	}

	before := p
	p.RemoveRoom()
	assert.Equal(t, before, p)
}

func TestParty_RoomDecrementAboveMinimum(t *testing.T) {
	p := NewParty()
	p.AddRoom()
	p.AddRoom()
	require.Equal(t, 3, p.Rooms)

	p.RemoveRoom()
	assert.Equal(t, 2, p.Rooms)
}

func TestParty_FloorValues(t *testing.T) {
	p := NewParty()
	p.RemoveAdult()
	p.RemoveChild()
	p.RemoveRoom()
	assert.Equal(t, Party{Adults: 1, Children: 0, Rooms: 1}, p)
}

func TestParty_InvariantUnderRandomMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	p := NewParty()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(6) {
		case 0:
			p.AddAdult()
		case 1:
			p.RemoveAdult()
		case 2:
			p.AddChild()
		case 3:
			p.RemoveChild()
		case 4:
			p.AddRoom()
		case 5:
			p.RemoveRoom()
		}

		require.GreaterOrEqual(t, p.Rooms, RequiredRooms(p.Adults),
			"step %d: rooms=%d adults=%d", i, p.Rooms, p.Adults)
		require.GreaterOrEqual(t, p.Adults, 1)
		require.GreaterOrEqual(t, p.Children, 0)
	}
}
