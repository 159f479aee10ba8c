package models

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Title          string  `json:"title" validate:"required,min=3,max=200"`
	Description    string  `json:"description" validate:"required,min=10,max=5000"`
	Image          string  `json:"image" validate:"omitempty,url"`
	BedCount       int     `json:"bedCount" validate:"min=1"`
	GuestCount     int     `json:"guestCount" validate:"min=1"`
	BathroomCount  int     `json:"bathroomCount" validate:"min=1"`
	KingBed        int     `json:"kingBed" validate:"min=0"`
	QueenBed       int     `json:"queenBed" validate:"min=0"`
	RoomPrice      float64 `json:"roomPrice" validate:"gt=0"`
	BreakfastPrice float64 `json:"breakfastPrice" validate:"gte=0"`

	Amenities
}

// UpdateRoomRequest частичное обновление номера; nil поля не меняются
type UpdateRoomRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Image          *string  `json:"image,omitempty" validate:"omitempty,url"`
	BedCount       *int     `json:"bedCount,omitempty" validate:"omitempty,min=1"`
	GuestCount     *int     `json:"guestCount,omitempty" validate:"omitempty,min=1"`
	BathroomCount  *int     `json:"bathroomCount,omitempty" validate:"omitempty,min=1"`
	KingBed        *int     `json:"kingBed,omitempty" validate:"omitempty,min=0"`
	QueenBed       *int     `json:"queenBed,omitempty" validate:"omitempty,min=0"`
	RoomPrice      *float64 `json:"roomPrice,omitempty" validate:"omitempty,gt=0"`
	BreakfastPrice *float64 `json:"breakfastPrice,omitempty" validate:"omitempty,gte=0"`

	RoomService  *bool `json:"roomService,omitempty"`
	TV           *bool `json:"tv,omitempty"`
	Balcony      *bool `json:"balcony,omitempty"`
	FreeWifi     *bool `json:"freeWifi,omitempty"`
	CityView     *bool `json:"cityView,omitempty"`
	OceanView    *bool `json:"oceanView,omitempty"`
	ForestView   *bool `json:"forestView,omitempty"`
	MountainView *bool `json:"mountainView,omitempty"`
	AirCondition *bool `json:"airCondition,omitempty"`
	SoundProofed *bool `json:"soundProofed,omitempty"`
}

// Amenities удобства номера
type Amenities struct {
	RoomService  bool `json:"roomService"`
	TV           bool `json:"tv"`
	Balcony      bool `json:"balcony"`
	FreeWifi     bool `json:"freeWifi"`
	CityView     bool `json:"cityView"`
	OceanView    bool `json:"oceanView"`
	ForestView   bool `json:"forestView"`
	MountainView bool `json:"mountainView"`
	AirCondition bool `json:"airCondition"`
	SoundProofed bool `json:"soundProofed"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID             string  `json:"id"`
	HotelID        string  `json:"hotelId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	BedCount       int     `json:"bedCount"`
	GuestCount     int     `json:"guestCount"`
	BathroomCount  int     `json:"bathroomCount"`
	KingBed        int     `json:"kingBed"`
	QueenBed       int     `json:"queenBed"`
	RoomPrice      float64 `json:"roomPrice"`
	BreakfastPrice float64 `json:"breakfastPrice"`

	Amenities
}

// Методы конвертации

// ToDomain конвертирует запрос в domain модель номера отеля
func (r *CreateRoomRequest) ToDomain(hotelID string) *domain.Room {
	return &domain.Room{
		HotelID:        hotelID,
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.Image,
		BedCount:       r.BedCount,
		GuestCount:     r.GuestCount,
		BathroomCount:  r.BathroomCount,
		KingBed:        r.KingBed,
		QueenBed:       r.QueenBed,
		RoomPrice:      r.RoomPrice,
		BreakfastPrice: r.BreakfastPrice,
		RoomService:    r.RoomService,
		TV:             r.TV,
		Balcony:        r.Balcony,
		FreeWifi:       r.FreeWifi,
		CityView:       r.CityView,
		OceanView:      r.OceanView,
		ForestView:     r.ForestView,
		MountainView:   r.MountainView,
		AirCondition:   r.AirCondition,
		SoundProofed:   r.SoundProofed,
	}
}

// ApplyTo переносит заданные поля на номер
func (r *UpdateRoomRequest) ApplyTo(room *domain.Room) {
	setIfNotNil(&room.Title, r.Title)
	setIfNotNil(&room.Description, r.Description)
	setIfNotNil(&room.Image, r.Image)
	setIfNotNil(&room.BedCount, r.BedCount)
	setIfNotNil(&room.GuestCount, r.GuestCount)
	setIfNotNil(&room.BathroomCount, r.BathroomCount)
	setIfNotNil(&room.KingBed, r.KingBed)
	setIfNotNil(&room.QueenBed, r.QueenBed)
	setIfNotNil(&room.RoomPrice, r.RoomPrice)
	setIfNotNil(&room.BreakfastPrice, r.BreakfastPrice)
	setIfNotNil(&room.RoomService, r.RoomService)
	setIfNotNil(&room.TV, r.TV)
	setIfNotNil(&room.Balcony, r.Balcony)
	setIfNotNil(&room.FreeWifi, r.FreeWifi)
	setIfNotNil(&room.CityView, r.CityView)
	setIfNotNil(&room.OceanView, r.OceanView)
	setIfNotNil(&room.ForestView, r.ForestView)
	setIfNotNil(&room.MountainView, r.MountainView)
	setIfNotNil(&room.AirCondition, r.AirCondition)
	setIfNotNil(&room.SoundProofed, r.SoundProofed)
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:             r.ID,
		HotelID:        r.HotelID,
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.Image,
		BedCount:       r.BedCount,
		GuestCount:     r.GuestCount,
		BathroomCount:  r.BathroomCount,
		KingBed:        r.KingBed,
		QueenBed:       r.QueenBed,
		RoomPrice:      r.RoomPrice,
		BreakfastPrice: r.BreakfastPrice,
		Amenities: Amenities{
			RoomService:  r.RoomService,
			TV:           r.TV,
			Balcony:      r.Balcony,
			FreeWifi:     r.FreeWifi,
			CityView:     r.CityView,
			OceanView:    r.OceanView,
			ForestView:   r.ForestView,
			MountainView: r.MountainView,
			AirCondition: r.AirCondition,
			SoundProofed: r.SoundProofed,
		},
	}
}

// FromDomainRoomList конвертирует список номеров в DTO
func FromDomainRoomList(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		if roomResp := FromDomainRoom(r); roomResp != nil {
			resp = append(resp, *roomResp)
		}
	}
	return resp
}

func setIfNotNil[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
