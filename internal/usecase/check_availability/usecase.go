package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера на даты
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сверяет даты с оплаченными бронированиями номера.
// Ничего не меняет и не резервирует.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	notBefore := uc.timeProvider.Now().Add(-domain.PaidBookingsLookback)

	paid, err := uc.bookingRepo.ListPaidByRoom(ctx, req.RoomID, notBefore)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list paid bookings for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to list paid bookings: %v", ErrInternal, err)
	}

	proposed := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	booked := domain.BookedRanges(paid)
	available := !domain.HasOverlap(proposed, booked)

	uc.logger.Info("CheckAvailability: room id=%s, %s..%s, available=%t",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), available)

	return &Response{
		RoomID:       req.RoomID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Available:    available,
		Nights:       proposed.Nights(),
		BookedRanges: booked,
	}, nil
}
