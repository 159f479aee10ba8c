package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

type fakeBookings struct {
	paid      []*domain.Booking
	notBefore time.Time
}

func (f *fakeBookings) ListPaidByRoom(_ context.Context, _ string, notBefore time.Time) ([]*domain.Booking, error) {
	f.notBefore = notBefore
	return f.paid, nil
}

type fakeRooms struct{}

func (fakeRooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	if id != "room_r" {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &domain.Room{ID: id}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func june(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func newUseCase() (*UseCase, *fakeBookings) {
	bookings := &fakeBookings{paid: []*domain.Booking{
		{ID: "b1", RoomID: "room_r", StartDate: june(10), EndDate: june(15), PaymentStatus: true},
	}}
	uc := NewUseCase(bookings, fakeRooms{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc, bookings
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		end       int
		available bool
	}{
		{name: "inside", start: 12, end: 13, available: false},
		{name: "checkin on checkout day", start: 15, end: 18, available: false},
		{name: "checkout on checkin day", start: 7, end: 10, available: false},
		{name: "envelops", start: 8, end: 17, available: false},
		{name: "free", start: 16, end: 18, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase()

			resp, err := uc.Execute(context.Background(), &Request{RoomID: "room_r", StartDate: june(tt.start), EndDate: june(tt.end)})
			require.NoError(t, err)

			assert.Equal(t, tt.available, resp.Available)
			assert.Equal(t, tt.end-tt.start, resp.Nights)
			assert.Len(t, resp.BookedRanges, 1)
		})
	}
}

func TestExecute_UsesLookbackWindow(t *testing.T) {
	uc, bookings := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{RoomID: "room_r", StartDate: june(16), EndDate: june(18)})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), bookings.notBefore)
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{RoomID: "missing", StartDate: june(16), EndDate: june(18)})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{RoomID: "room_r", StartDate: june(18), EndDate: june(16)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: "", StartDate: june(16), EndDate: june(18)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
