package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomModels "github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
)

// Request модели

// CreateHotelRequest запрос на создание отеля
type CreateHotelRequest struct {
	Title               string `json:"title" validate:"required,min=3,max=200"`
	Description         string `json:"description" validate:"required,min=10,max=5000"`
	Image               string `json:"image" validate:"omitempty,url"`
	Country             string `json:"country" validate:"required,max=100"`
	State               string `json:"state" validate:"max=100"`
	City                string `json:"city" validate:"max=100"`
	LocationDescription string `json:"locationDescription" validate:"required,min=10,max=5000"`

	Amenities
}

// UpdateHotelRequest частичное обновление отеля; nil поля не меняются
type UpdateHotelRequest struct {
	Title               *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description         *string `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Image               *string `json:"image,omitempty" validate:"omitempty,url"`
	Country             *string `json:"country,omitempty" validate:"omitempty,max=100"`
	State               *string `json:"state,omitempty" validate:"omitempty,max=100"`
	City                *string `json:"city,omitempty" validate:"omitempty,max=100"`
	LocationDescription *string `json:"locationDescription,omitempty" validate:"omitempty,min=10,max=5000"`

	Gym          *bool `json:"gym,omitempty"`
	Spa          *bool `json:"spa,omitempty"`
	Bar          *bool `json:"bar,omitempty"`
	Laundry      *bool `json:"laundry,omitempty"`
	Restaurant   *bool `json:"restaurant,omitempty"`
	Shopping     *bool `json:"shopping,omitempty"`
	FreeParking  *bool `json:"freeParking,omitempty"`
	BikeRental   *bool `json:"bikeRental,omitempty"`
	FreeWifi     *bool `json:"freeWifi,omitempty"`
	MovieNights  *bool `json:"movieNights,omitempty"`
	SwimmingPool *bool `json:"swimmingPool,omitempty"`
	CoffeeShop   *bool `json:"coffeeShop,omitempty"`
}

// SearchHotelsRequest фильтр поиска отелей
type SearchHotelsRequest struct {
	Title   *string
	Country *string
	State   *string
	City    *string
}

// Amenities удобства отеля
type Amenities struct {
	Gym          bool `json:"gym"`
	Spa          bool `json:"spa"`
	Bar          bool `json:"bar"`
	Laundry      bool `json:"laundry"`
	Restaurant   bool `json:"restaurant"`
	Shopping     bool `json:"shopping"`
	FreeParking  bool `json:"freeParking"`
	BikeRental   bool `json:"bikeRental"`
	FreeWifi     bool `json:"freeWifi"`
	MovieNights  bool `json:"movieNights"`
	SwimmingPool bool `json:"swimmingPool"`
	CoffeeShop   bool `json:"coffeeShop"`
}

// Response модели

// HotelResponse ответ с данными отеля и его номерами
type HotelResponse struct {
	ID                  string `json:"id"`
	UserID              string `json:"userId"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Image               string `json:"image"`
	Country             string `json:"country"`
	State               string `json:"state"`
	City                string `json:"city"`
	LocationDescription string `json:"locationDescription"`

	Amenities

	Rooms []roomModels.RoomResponse `json:"rooms"`

	AddedAt   time.Time `json:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelListResponse ответ со списком отелей
type HotelListResponse struct {
	Hotels []HotelResponse `json:"hotels"`
}

// Методы конвертации

// ToDomain конвертирует запрос в domain модель отеля владельца
func (r *CreateHotelRequest) ToDomain(userID string) *domain.Hotel {
	return &domain.Hotel{
		UserID:              userID,
		Title:               r.Title,
		Description:         r.Description,
		Image:               r.Image,
		Country:             r.Country,
		State:               r.State,
		City:                r.City,
		LocationDescription: r.LocationDescription,
		Gym:                 r.Gym,
		Spa:                 r.Spa,
		Bar:                 r.Bar,
		Laundry:             r.Laundry,
		Restaurant:          r.Restaurant,
		Shopping:            r.Shopping,
		FreeParking:         r.FreeParking,
		BikeRental:          r.BikeRental,
		FreeWifi:            r.FreeWifi,
		MovieNights:         r.MovieNights,
		SwimmingPool:        r.SwimmingPool,
		CoffeeShop:          r.CoffeeShop,
	}
}

// ApplyTo переносит заданные поля на отель
func (r *UpdateHotelRequest) ApplyTo(h *domain.Hotel) {
	setIfNotNil(&h.Title, r.Title)
	setIfNotNil(&h.Description, r.Description)
	setIfNotNil(&h.Image, r.Image)
	setIfNotNil(&h.Country, r.Country)
	setIfNotNil(&h.State, r.State)
	setIfNotNil(&h.City, r.City)
	setIfNotNil(&h.LocationDescription, r.LocationDescription)
	setIfNotNil(&h.Gym, r.Gym)
	setIfNotNil(&h.Spa, r.Spa)
	setIfNotNil(&h.Bar, r.Bar)
	setIfNotNil(&h.Laundry, r.Laundry)
	setIfNotNil(&h.Restaurant, r.Restaurant)
	setIfNotNil(&h.Shopping, r.Shopping)
	setIfNotNil(&h.FreeParking, r.FreeParking)
	setIfNotNil(&h.BikeRental, r.BikeRental)
	setIfNotNil(&h.FreeWifi, r.FreeWifi)
	setIfNotNil(&h.MovieNights, r.MovieNights)
	setIfNotNil(&h.SwimmingPool, r.SwimmingPool)
	setIfNotNil(&h.CoffeeShop, r.CoffeeShop)
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *SearchHotelsRequest) ToDomainFilter() domain.HotelFilter {
	return domain.HotelFilter{
		Title:   r.Title,
		Country: r.Country,
		State:   r.State,
		City:    r.City,
	}
}

// FromDomainHotel конвертирует domain модель в DTO
func FromDomainHotel(h *domain.Hotel) *HotelResponse {
	if h == nil {
		return nil
	}

	return &HotelResponse{
		ID:                  h.ID,
		UserID:              h.UserID,
		Title:               h.Title,
		Description:         h.Description,
		Image:               h.Image,
		Country:             h.Country,
		State:               h.State,
		City:                h.City,
		LocationDescription: h.LocationDescription,
		Amenities: Amenities{
			Gym:          h.Gym,
			Spa:          h.Spa,
			Bar:          h.Bar,
			Laundry:      h.Laundry,
			Restaurant:   h.Restaurant,
			Shopping:     h.Shopping,
			FreeParking:  h.FreeParking,
			BikeRental:   h.BikeRental,
			FreeWifi:     h.FreeWifi,
			MovieNights:  h.MovieNights,
			SwimmingPool: h.SwimmingPool,
			CoffeeShop:   h.CoffeeShop,
		},
		Rooms:     roomModels.FromDomainRoomList(h.Rooms),
		AddedAt:   h.AddedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainHotelList конвертирует список отелей в DTO
func FromDomainHotelList(hotels []*domain.Hotel) *HotelListResponse {
	resp := &HotelListResponse{
		Hotels: make([]HotelResponse, 0, len(hotels)),
	}

	for _, h := range hotels {
		if hotelResp := FromDomainHotel(h); hotelResp != nil {
			resp.Hotels = append(resp.Hotels, *hotelResp)
		}
	}

	return resp
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
