package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
)

// Service сервис для управления номерами отелей
type Service struct {
	roomRepo  RoomRepository
	hotelRepo HotelRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, hotelRepo HotelRepository, logger Logger) *Service {
	return &Service{
		roomRepo:  roomRepo,
		hotelRepo: hotelRepo,
		logger:    logger,
	}
}

// Create добавляет номер в отель владельца
func (s *Service) Create(ctx context.Context, hotelID, userID string, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: user=%s adding room to hotel id=%s", userID, hotelID)

	if err := s.checkHotelOwner(ctx, hotelID, userID); err != nil {
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, req.ToDomain(hotelID))
	if err != nil {
		s.logger.Error("Create: failed to create room in hotel id=%s: %v", hotelID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%s created in hotel id=%s", created.ID, hotelID)
	return models.FromDomainRoom(created), nil
}

// Update изменяет номер; доступно только владельцу отеля
func (s *Service) Update(ctx context.Context, roomID, userID string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: user=%s updating room id=%s", userID, roomID)

	room, err := s.getOwnedRoom(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(room)

	updated, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: failed to update room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(updated), nil
}

// Delete удаляет номер; доступно только владельцу отеля
func (s *Service) Delete(ctx context.Context, roomID, userID string) error {
	s.logger.Info("Delete: user=%s deleting room id=%s", userID, roomID)

	if _, err := s.getOwnedRoom(ctx, roomID, userID); err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: failed to delete room id=%s: %v", roomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%s deleted", roomID)
	return nil
}

func (s *Service) getOwnedRoom(ctx context.Context, roomID, userID string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("room id=%s not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("failed to get room id=%s: %v", roomID, err)
		return nil, fmt.Errorf("%w: get room: %v", ErrInternal, err)
	}

	if err := s.checkHotelOwner(ctx, room.HotelID, userID); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *Service) checkHotelOwner(ctx context.Context, hotelID, userID string) error {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("hotel id=%s not found", hotelID)
			return ErrHotelNotFound
		}
		s.logger.Error("failed to get hotel id=%s: %v", hotelID, err)
		return fmt.Errorf("%w: get hotel: %v", ErrInternal, err)
	}

	if !hotel.IsOwnedBy(userID) {
		s.logger.Warn("access denied for user=%s to hotel id=%s", userID, hotelID)
		return ErrAccessDenied
	}

	return nil
}
