package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

type fakeRooms struct {
	rooms map[string]*domain.Room
}

func (f *fakeRooms) Create(_ context.Context, r *domain.Room) (*domain.Room, error) {
	r.ID = "room_new"
	f.rooms[r.ID] = r
	return r, nil
}

func (f *fakeRooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRooms) Update(_ context.Context, r *domain.Room) (*domain.Room, error) {
	if _, ok := f.rooms[r.ID]; !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	f.rooms[r.ID] = r
	return r, nil
}

func (f *fakeRooms) Delete(_ context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

type fakeHotels struct{}

func (fakeHotels) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	if id != "hotel_1" {
		return nil, hotelRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: id, UserID: "owner"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeRooms) {
	rooms := &fakeRooms{rooms: map[string]*domain.Room{
		"room_1": {ID: "room_1", HotelID: "hotel_1", Title: "Deluxe", RoomPrice: 100, BreakfastPrice: 10, TV: true},
	}}
	return NewService(rooms, fakeHotels{}, nopLogger{}), rooms
}

func TestService_Create(t *testing.T) {
	svc, rooms := newService()

	req := &models.CreateRoomRequest{Title: "Suite", RoomPrice: 250, BedCount: 1, GuestCount: 2, BathroomCount: 1}

	resp, err := svc.Create(context.Background(), "hotel_1", "owner", req)
	require.NoError(t, err)
	assert.Equal(t, "hotel_1", resp.HotelID)
	assert.Contains(t, rooms.rooms, "room_new")

	_, err = svc.Create(context.Background(), "hotel_1", "stranger", req)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(context.Background(), "hotel_404", "owner", req)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestService_UpdateAppliesOnlyGivenFields(t *testing.T) {
	svc, rooms := newService()

	resp, err := svc.Update(context.Background(), "room_1", "owner", &models.UpdateRoomRequest{
		RoomPrice: ptr.Ptr(120.0),
		TV:        ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 120.0, resp.RoomPrice)
	assert.False(t, resp.TV)
	assert.Equal(t, "Deluxe", rooms.rooms["room_1"].Title)
	assert.Equal(t, 10.0, rooms.rooms["room_1"].BreakfastPrice)
}

func TestService_Delete(t *testing.T) {
	svc, rooms := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), "room_1", "stranger"), ErrAccessDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), "room_404", "owner"), ErrRoomNotFound)

	require.NoError(t, svc.Delete(context.Background(), "room_1", "owner"))
	assert.NotContains(t, rooms.rooms, "room_1")
}
