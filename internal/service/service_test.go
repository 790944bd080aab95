package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
)

type mockVenueRepository struct {
	mock.Mock
}

func (m *mockVenueRepository) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	args := m.Called(ctx, venue)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func (m *mockVenueRepository) FindAll(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *mockVenueRepository) Update(ctx context.Context, id uint, venue domain.Venue) (domain.Venue, error) {
	args := m.Called(ctx, id, venue)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func (m *mockVenueRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventRepository) FindAll(ctx context.Context, city string) ([]domain.Event, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepository) Purchase(ctx context.Context, id uint, quantity int) (domain.Event, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(domain.Event), args.Error(1)
}

func TestVenueService_CreateVenue(t *testing.T) {
	ctx := context.Background()
	repo := &mockVenueRepository{}
	svc := NewVenueService(repo)

	in := domain.Venue{Name: "Sala", City: "Madrid", Capacity: 100}
	repo.On("Create", ctx, in).Return(domain.Venue{ID: 1, Name: "Sala", City: "Madrid", Capacity: 100}, nil)

	got, err := svc.CreateVenue(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)

	_, err = svc.CreateVenue(ctx, domain.Venue{Name: "Sala", City: "Madrid", Capacity: -5})
	assert.ErrorIs(t, err, domain.ErrNegativeCapacity)

	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestVenueService_UpdateVenue(t *testing.T) {
	ctx := context.Background()
	repo := &mockVenueRepository{}
	svc := NewVenueService(repo)

	in := domain.Venue{Name: "Nueva", City: "Bilbao", Capacity: 5}
	repo.On("Update", ctx, uint(2), in).Return(domain.Venue{ID: 2, Name: "Nueva", City: "Bilbao", Capacity: 5}, nil)
	repo.On("Update", ctx, uint(3), in).Return(domain.Venue{}, ErrVenueNotFound)

	got, err := svc.UpdateVenue(ctx, 2, in)
	require.NoError(t, err)
	assert.Equal(t, "Nueva", got.Name)

	_, err = svc.UpdateVenue(ctx, 3, in)
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = svc.UpdateVenue(ctx, 2, domain.Venue{Name: "", City: "Bilbao"})
	assert.ErrorIs(t, err, domain.ErrBlankField)
	repo.AssertNumberOfCalls(t, "Update", 2)
}

func TestVenueService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &mockVenueRepository{}
	svc := NewVenueService(repo)

	repo.On("FindAll", ctx).Return([]domain.Venue{{ID: 1}, {ID: 2}}, nil)
	repo.On("Delete", ctx, uint(1)).Return(nil)
	repo.On("Delete", ctx, uint(4)).Return(ErrVenueNotFound)

	venues, err := svc.GetVenues(ctx)
	require.NoError(t, err)
	assert.Len(t, venues, 2)

	assert.NoError(t, svc.DeleteVenue(ctx, 1))
	assert.ErrorIs(t, svc.DeleteVenue(ctx, 4), ErrVenueNotFound)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   domain.Event
		repoErr error
		wantErr error
	}{
		{name: "free event", event: domain.Event{Name: "Gratis", Date: date, Price: 0, VenueID: 1}},
		{name: "paid event resets tickets", event: domain.Event{Name: "Pago", Date: date, Price: 30, TicketsSold: 9, VenueID: 1}},
		{name: "negative price", event: domain.Event{Name: "Mal", Date: date, Price: -0.01, VenueID: 1}, wantErr: domain.ErrNegativePrice},
		{name: "unknown venue", event: domain.Event{Name: "Sin sitio", Date: date, VenueID: 99}, repoErr: ErrVenueNotFound, wantErr: ErrVenueNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEventRepository{}
			svc := NewEventService(repo)

			stored := tt.event
			stored.TicketsSold = 0
			repo.On("Create", ctx, stored).Return(domain.Event{ID: 1, Name: stored.Name, VenueID: stored.VenueID}, tt.repoErr)

			got, err := svc.CreateEvent(ctx, tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if errors.Is(tt.wantErr, domain.ErrValidation) {
					repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				}
				return
			}
			require.NoError(t, err)
			assert.Zero(t, got.TicketsSold)
			repo.AssertExpectations(t)
		})
	}
}

func TestEventService_GetEvents(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepository{}
	svc := NewEventService(repo)

	repo.On("FindAll", ctx, "Madrid").Return([]domain.Event{{ID: 1}}, nil)
	repo.On("FindAll", ctx, "").Return([]domain.Event{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.GetEvents(ctx, "  Madrid ")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.GetEvents(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEventService_PurchaseTickets(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepository{}
	svc := NewEventService(repo)

	repo.On("Purchase", ctx, uint(1), 2).Return(domain.Event{ID: 1, TicketsSold: 10}, nil)
	repo.On("Purchase", ctx, uint(1), 3).Return(domain.Event{}, ErrCapacityExceeded)
	repo.On("Purchase", ctx, uint(2), 1).Return(domain.Event{}, ErrEventNotFound)

	got, err := svc.PurchaseTickets(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TicketsSold)

	_, err = svc.PurchaseTickets(ctx, 1, 3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = svc.PurchaseTickets(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)

	for _, qty := range []int{0, -1} {
		_, err = svc.PurchaseTickets(ctx, 1, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
	repo.AssertNumberOfCalls(t, "Purchase", 3)
}
