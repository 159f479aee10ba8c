package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

type fakeBookings struct {
	rows      map[string]*domain.Booking
	notBefore time.Time
	deleted   []string
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookings) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) GetByHotelOwnerID(_ context.Context, ownerID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.rows {
		if b.HotelOwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListPaidByRoom(_ context.Context, roomID string, notBefore time.Time) ([]*domain.Booking, error) {
	f.notBefore = notBefore
	var out []*domain.Booking
	for _, b := range f.rows {
		if b.RoomID == roomID && b.PaymentStatus && b.EndDate.After(notBefore) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRooms struct{}

func (fakeRooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	if id != "room_1" {
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

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *fakeBookings) {
	repo := &fakeBookings{rows: map[string]*domain.Booking{
		"unpaid": {ID: "unpaid", UserID: "guest", HotelOwnerID: "owner", RoomID: "room_1", StartDate: day(6, 20), EndDate: day(6, 22)},
		"paid":   {ID: "paid", UserID: "guest", HotelOwnerID: "owner", RoomID: "room_1", StartDate: day(6, 10), EndDate: day(6, 15), PaymentStatus: true},
		"old":    {ID: "old", UserID: "guest2", HotelOwnerID: "owner", RoomID: "room_1", StartDate: day(5, 1), EndDate: day(5, 3), PaymentStatus: true},
	}}

	svc := NewService(repo, fakeRooms{}, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	return svc, repo
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		bookingID string
		userID    string
		wantErr   error
	}{
		{name: "guest cannot delete unpaid", bookingID: "unpaid", userID: "guest", wantErr: ErrAccessDenied},
		{name: "owner deletes unpaid", bookingID: "unpaid", userID: "owner"},
		{name: "guest cannot delete paid", bookingID: "paid", userID: "guest", wantErr: ErrAccessDenied},
		{name: "owner deletes paid", bookingID: "paid", userID: "owner"},
		{name: "stranger", bookingID: "unpaid", userID: "stranger", wantErr: ErrAccessDenied},
		{name: "missing", bookingID: "nope", userID: "owner", wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()

			err := svc.Delete(context.Background(), tt.bookingID, tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.deleted)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{tt.bookingID}, repo.deleted)
		})
	}
}

func TestService_GetRoomBookedDates(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.GetRoomBookedDates(context.Background(), "room_1")
	require.NoError(t, err)

	assert.Equal(t, day(5, 31), repo.notBefore)
	require.Len(t, resp.Ranges, 1)
	assert.Equal(t, "2025-06-10", resp.Ranges[0].StartDate)
	assert.Equal(t, "2025-06-15", resp.Ranges[0].EndDate)

	_, err = svc.GetRoomBookedDates(context.Background(), "room_404")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_GetUserAndOwnerBookings(t *testing.T) {
	svc, _ := newService()

	user, err := svc.GetUserBookings(context.Background(), "guest")
	require.NoError(t, err)
	assert.Len(t, user.Bookings, 2)

	owner, err := svc.GetOwnerBookings(context.Background(), "owner")
	require.NoError(t, err)
	assert.Len(t, owner.Bookings, 3)

	empty, err := svc.GetUserBookings(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}
