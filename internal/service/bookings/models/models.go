package models

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`

	HotelID      string `json:"hotelId"`
	RoomID       string `json:"roomId"`
	HotelOwnerID string `json:"hotelOwnerId"`

	StartDate         string `json:"startDate"` // "2025-06-10"
	EndDate           string `json:"endDate"`
	BreakfastIncluded bool   `json:"breakfastIncluded"`

	Currency        string  `json:"currency"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentStatus   bool    `json:"paymentStatus"`
	PaymentIntentID string  `json:"paymentIntentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookedRange занятый период номера
type BookedRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// RoomBookedDatesResponse занятые оплаченными бронированиями даты номера
type RoomBookedDatesResponse struct {
	RoomID string        `json:"roomId"`
	Ranges []BookedRange `json:"ranges"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		UserID:            b.UserID,
		UserName:          b.UserName,
		UserEmail:         b.UserEmail,
		HotelID:           b.HotelID,
		RoomID:            b.RoomID,
		HotelOwnerID:      b.HotelOwnerID,
		StartDate:         b.StartDate.Format(domain.DateFormat),
		EndDate:           b.EndDate.Format(domain.DateFormat),
		BreakfastIncluded: b.BreakfastIncluded,
		Currency:          b.Currency,
		TotalPrice:        b.TotalPrice,
		PaymentStatus:     b.PaymentStatus,
		PaymentIntentID:   b.PaymentIntentID,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainRanges конвертирует занятые периоды номера в DTO
func FromDomainRanges(roomID string, ranges []domain.DateRange) *RoomBookedDatesResponse {
	resp := &RoomBookedDatesResponse{
		RoomID: roomID,
		Ranges: make([]BookedRange, 0, len(ranges)),
	}

	for _, r := range ranges {
		resp.Ranges = append(resp.Ranges, BookedRange{
			StartDate: r.Start.Format(domain.DateFormat),
			EndDate:   r.End.Format(domain.DateFormat),
		})
	}

	return resp
}
