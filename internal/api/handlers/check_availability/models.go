package check_availability

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID       string               `json:"roomId"`
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	Available    bool                 `json:"available"`
	Nights       int                  `json:"nights"`
	BookedRanges []models.BookedRange `json:"bookedRanges"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:       resp.RoomID,
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		Available:    resp.Available,
		Nights:       resp.Nights,
		BookedRanges: models.FromDomainRanges(resp.RoomID, resp.BookedRanges).Ranges,
	}
}
