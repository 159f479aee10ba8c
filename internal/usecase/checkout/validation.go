package checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Guest.ID == "" {
		return ErrUnauthenticated
	}

	if strings.TrimSpace(req.HotelID) == "" {
		return fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.HotelID); err != nil {
		return fmt.Errorf("%w: hotelId %q is not a uuid", ErrInvalidInput, req.HotelID)
	}

	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.RoomID); err != nil {
		return fmt.Errorf("%w: roomId %q is not a uuid", ErrInvalidInput, req.RoomID)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	// Минимум одна ночь: день выезда строго позже дня заезда
	if !(domain.DateRange{Start: req.StartDate, End: req.EndDate}).IsValid() {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}

	if req.TotalPrice <= 0 || math.IsNaN(req.TotalPrice) || math.IsInf(req.TotalPrice, 0) {
		return fmt.Errorf("%w: totalPrice must be positive", ErrInvalidInput)
	}

	return nil
}

// validateBreakfast проверяет, что завтрак запрошен только в номере, где он есть
func validateBreakfast(room *domain.Room, breakfast bool) error {
	if breakfast && !room.OffersBreakfast() {
		return fmt.Errorf("%w: breakfast is not offered in room %s", ErrInvalidInput, room.ID)
	}
	return nil
}
