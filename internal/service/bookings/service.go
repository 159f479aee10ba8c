package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetUserBookings получает бронирования гостя
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования во всех отелях владельца
func (s *Service) GetOwnerBookings(ctx context.Context, ownerID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for hotel owner=%s", ownerID)

	bookings, err := s.bookingRepo.GetByHotelOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%s", len(bookings), ownerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookedDates получает занятые оплаченными бронированиями периоды номера.
// Брони, закончившиеся раньше чем сутки назад, не возвращаются.
func (s *Service) GetRoomBookedDates(ctx context.Context, roomID string) (*models.RoomBookedDatesResponse, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomBookedDates: room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomBookedDates: failed to get room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookedDates - get room: %v", ErrInternal, err)
	}

	notBefore := s.timeProvider.Now().Add(-domain.PaidBookingsLookback)

	bookings, err := s.bookingRepo.ListPaidByRoom(ctx, roomID, notBefore)
	if err != nil {
		s.logger.Error("GetRoomBookedDates: repository error for room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRanges(roomID, domain.BookedRanges(bookings)), nil
}

// Delete удаляет бронирование
// Удалить бронирование может только владелец отеля, гость - нет
func (s *Service) Delete(ctx context.Context, bookingID, userID string) error {
	s.logger.Info("Delete: user=%s deleting booking id=%s", userID, bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeDeletedBy(userID) {
		s.logger.Warn("Delete: access denied for user=%s to booking id=%s", userID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted by user=%s", bookingID, userID)
	return nil
}
