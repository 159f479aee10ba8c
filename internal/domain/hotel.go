package domain

import "time"

// Hotel is a listing owned by a single user
type Hotel struct {
	ID     string
	UserID string // owner

	Title               string
	Description         string
	Image               string
	Country             string
	State               string
	City                string
	LocationDescription string

	Gym          bool
	Spa          bool
	Bar          bool
	Laundry      bool
	Restaurant   bool
	Shopping     bool
	FreeParking  bool
	BikeRental   bool
	FreeWifi     bool
	MovieNights  bool
	SwimmingPool bool
	CoffeeShop   bool

	Rooms []*Room

	AddedAt   time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the user owns the hotel
func (h *Hotel) IsOwnedBy(userID string) bool {
	return h.UserID == userID
}

// HotelFilter фильтр поиска отелей
// Пустые поля не участвуют в фильтрации
type HotelFilter struct {
	Title   *string // подстрока без учета регистра
	Country *string
	State   *string
	City    *string
	UserID  *string
}
