package domain

// Room belongs to exactly one hotel; deleting the hotel deletes its rooms
type Room struct {
	ID      string
	HotelID string

	Title         string
	Description   string
	Image         string
	BedCount      int
	GuestCount    int
	BathroomCount int
	KingBed       int
	QueenBed      int

	RoomPrice      float64
	BreakfastPrice float64 // 0 = breakfast not offered

	RoomService  bool
	TV           bool
	Balcony      bool
	FreeWifi     bool
	CityView     bool
	OceanView    bool
	ForestView   bool
	MountainView bool
	AirCondition bool
	SoundProofed bool
}

// OffersBreakfast returns true if breakfast can be added to a stay
func (r *Room) OffersBreakfast() bool {
	return r.BreakfastPrice > 0
}

// PriceFor returns the price of a stay of the given number of nights
func (r *Room) PriceFor(nights int, breakfast bool) float64 {
	total := float64(nights) * r.RoomPrice
	if breakfast && r.OffersBreakfast() {
		total += float64(nights) * r.BreakfastPrice
	}
	return total
}
