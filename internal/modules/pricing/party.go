package pricing

// Up to this many adults share one room before another is required.
const adultsPerRoom = 3

// Party holds the guest counts of one wizard session. Mutations keep
// the invariant Rooms >= RequiredRooms(Adults): raising adults pulls
// rooms up to the minimum, lowering adults leaves rooms alone so a
// deliberately chosen extra room survives.
type Party struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Rooms    int `json:"rooms"`
}

func NewParty() Party {
	return Party{Adults: 1, Children: 0, Rooms: 1}
}

// RequiredRooms is the minimum room count for the given adult headcount.
func RequiredRooms(adults int) int {
	if adults < 1 {
		adults = 1
	}
	return (adults + adultsPerRoom - 1) / adultsPerRoom
}

func (p *Party) AddAdult() {
	p.Adults++
	if min := RequiredRooms(p.Adults); p.Rooms < min {
		p.Rooms = min
	}
}

func (p *Party) RemoveAdult() {
	if p.Adults > 1 {
		p.Adults--
	}
}

func (p *Party) AddChild() {
	p.Children++
}

func (p *Party) RemoveChild() {
	if p.Children > 0 {
		p.Children--
	}
}

func (p *Party) AddRoom() {
	p.Rooms++
}

// RemoveRoom is a no-op when the result would drop below the minimum
// required for the current adults.
func (p *Party) RemoveRoom() {
	if p.Rooms-1 < RequiredRooms(p.Adults) || p.Rooms <= 1 {
		return
	}
	p.Rooms--
}
