package hotels

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

// Service сервис для работы с отелями
type Service struct {
	hotelRepo HotelRepository
	roomRepo  RoomRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса отелей
func NewService(hotelRepo HotelRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
		logger:    logger,
	}
}

// Create создает отель; владельцем становится текущий пользователь
func (s *Service) Create(ctx context.Context, userID string, req *models.CreateHotelRequest) (*models.HotelResponse, error) {
	s.logger.Info("Create: user=%s creating hotel %q", userID, req.Title)

	created, err := s.hotelRepo.Create(ctx, req.ToDomain(userID))
	if err != nil {
		s.logger.Error("Create: failed to create hotel for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: hotel id=%s created", created.ID)
	return models.FromDomainHotel(created), nil
}

// GetByID получает отель с номерами
func (s *Service) GetByID(ctx context.Context, id string) (*models.HotelResponse, error) {
	hotel, err := s.getHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachRooms(ctx, []*domain.Hotel{hotel}); err != nil {
		return nil, err
	}

	return models.FromDomainHotel(hotel), nil
}

// Search ищет отели по названию и местоположению
func (s *Service) Search(ctx context.Context, req *models.SearchHotelsRequest) (*models.HotelListResponse, error) {
	s.logger.Info("Search: title=%q, country=%q, state=%q, city=%q",
		ptr.Deref(req.Title), ptr.Deref(req.Country), ptr.Deref(req.State), ptr.Deref(req.City))

	return s.list(ctx, "Search", req.ToDomainFilter())
}

// GetOwnerHotels получает отели пользователя
func (s *Service) GetOwnerHotels(ctx context.Context, userID string) (*models.HotelListResponse, error) {
	s.logger.Info("GetOwnerHotels: fetching hotels for user=%s", userID)

	return s.list(ctx, "GetOwnerHotels", domain.HotelFilter{UserID: &userID})
}

// Update изменяет отель; доступно только владельцу
func (s *Service) Update(ctx context.Context, id, userID string, req *models.UpdateHotelRequest) (*models.HotelResponse, error) {
	s.logger.Info("Update: user=%s updating hotel id=%s", userID, id)

	hotel, err := s.getOwnedHotel(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(hotel)

	updated, err := s.hotelRepo.Update(ctx, hotel)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			return nil, ErrHotelNotFound
		}
		s.logger.Error("Update: failed to update hotel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.attachRooms(ctx, []*domain.Hotel{updated}); err != nil {
		return nil, err
	}

	return models.FromDomainHotel(updated), nil
}

// Delete удаляет отель вместе с номерами и бронированиями; доступно только владельцу
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	s.logger.Info("Delete: user=%s deleting hotel id=%s", userID, id)

	if _, err := s.getOwnedHotel(ctx, id, userID); err != nil {
		return err
	}

	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			return ErrHotelNotFound
		}
		s.logger.Error("Delete: failed to delete hotel id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: hotel id=%s deleted", id)
	return nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.HotelFilter) (*models.HotelListResponse, error) {
	hotels, err := s.hotelRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.attachRooms(ctx, hotels); err != nil {
		return nil, err
	}

	s.logger.Info("%s: found %d hotels", op, len(hotels))
	return models.FromDomainHotelList(hotels), nil
}

// attachRooms загружает номера всех отелей одним запросом
func (s *Service) attachRooms(ctx context.Context, hotels []*domain.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}

	ids := make([]string, 0, len(hotels))
	byID := make(map[string]*domain.Hotel, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.ID)
		byID[h.ID] = h
		h.Rooms = nil
	}

	rooms, err := s.roomRepo.GetByHotelIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to load rooms for %d hotels: %v", len(ids), err)
		return fmt.Errorf("%w: load rooms: %v", ErrInternal, err)
	}

	for _, r := range rooms {
		if h, ok := byID[r.HotelID]; ok {
			h.Rooms = append(h.Rooms, r)
		}
	}

	return nil
}

func (s *Service) getHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			s.logger.Warn("hotel id=%s not found", id)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("failed to get hotel id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: get hotel: %v", ErrInternal, err)
	}
	return hotel, nil
}

func (s *Service) getOwnedHotel(ctx context.Context, id, userID string) (*domain.Hotel, error) {
	hotel, err := s.getHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	if !hotel.IsOwnedBy(userID) {
		s.logger.Warn("access denied for user=%s to hotel id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return hotel, nil
}
