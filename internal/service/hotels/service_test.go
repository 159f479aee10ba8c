package hotels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

type fakeHotels struct {
	hotels     map[string]*domain.Hotel
	lastFilter domain.HotelFilter
	deleted    []string
}

func (f *fakeHotels) Create(_ context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	h.ID = "hotel_new"
	f.hotels[h.ID] = h
	return h, nil
}

func (f *fakeHotels) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, hotelRepo.ErrHotelNotFound
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHotels) Search(_ context.Context, filter domain.HotelFilter) ([]*domain.Hotel, error) {
	f.lastFilter = filter
	var out []*domain.Hotel
	for _, h := range f.hotels {
		if filter.UserID != nil && h.UserID != *filter.UserID {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeHotels) Update(_ context.Context, h *domain.Hotel) (*domain.Hotel, error) {
	f.hotels[h.ID] = h
	cp := *h
	return &cp, nil
}

func (f *fakeHotels) Delete(_ context.Context, id string) error {
	delete(f.hotels, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRooms struct {
	rooms []*domain.Room
}

func (f *fakeRooms) GetByHotelIDs(_ context.Context, ids []string) ([]*domain.Room, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []*domain.Room
	for _, r := range f.rooms {
		if want[r.HotelID] {
			out = append(out, r)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeHotels) {
	hotels := &fakeHotels{hotels: map[string]*domain.Hotel{
		"h1": {ID: "h1", UserID: "owner", Title: "Sea View", Country: "PT", Spa: true},
		"h2": {ID: "h2", UserID: "other", Title: "Mountain Inn", Country: "CH"},
	}}
	rooms := &fakeRooms{rooms: []*domain.Room{
		{ID: "r1", HotelID: "h1"},
		{ID: "r2", HotelID: "h1"},
		{ID: "r3", HotelID: "h2"},
	}}
	return NewService(hotels, rooms, nopLogger{}), hotels
}

func TestService_GetByIDAttachesRooms(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), "h1")
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestService_SearchPassesFilter(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Search(context.Background(), &models.SearchHotelsRequest{Title: ptr.Ptr("sea"), Country: ptr.Ptr("PT")})
	require.NoError(t, err)

	assert.Equal(t, "sea", *repo.lastFilter.Title)
	assert.Equal(t, "PT", *repo.lastFilter.Country)
	assert.Nil(t, repo.lastFilter.UserID)
	assert.Len(t, resp.Hotels, 2)
}

func TestService_GetOwnerHotels(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetOwnerHotels(context.Background(), "owner")
	require.NoError(t, err)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "h1", resp.Hotels[0].ID)
	assert.Len(t, resp.Hotels[0].Rooms, 2)
}

func TestService_UpdateOwnerOnly(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Update(context.Background(), "h1", "other", &models.UpdateHotelRequest{Title: ptr.Ptr("Hijacked")})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, "Sea View", repo.hotels["h1"].Title)

	resp, err := svc.Update(context.Background(), "h1", "owner", &models.UpdateHotelRequest{City: ptr.Ptr("Lisbon")})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", resp.City)
	assert.Equal(t, "Sea View", resp.Title)
	assert.True(t, resp.Spa)
}

func TestService_DeleteOwnerOnly(t *testing.T) {
	svc, repo := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), "h1", "other"), ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), "h1", "owner"))
	assert.Equal(t, []string{"h1"}, repo.deleted)
}

func TestService_Create(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), "owner", &models.CreateHotelRequest{Title: "New", Country: "ES"})
	require.NoError(t, err)
	assert.Equal(t, "owner", resp.UserID)
	assert.Equal(t, "owner", repo.hotels["hotel_new"].UserID)
	assert.NotNil(t, resp.Rooms)
}
