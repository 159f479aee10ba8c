package check_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !(domain.DateRange{Start: req.StartDate, End: req.EndDate}).IsValid() {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}

	return nil
}
