package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository"
)

var (
	ErrEventNotFound    = repository.ErrEventNotFound
	ErrCapacityExceeded = repository.ErrCapacityExceeded
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context, city string) ([]domain.Event, error)
	Purchase(ctx context.Context, id uint, quantity int) (domain.Event, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// CreateEvent stores a new event with no tickets sold. It fails with
// ErrVenueNotFound when the referenced venue does not exist.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := event.ValidateNew(); err != nil {
		return domain.Event{}, err
	}
	event.TicketsSold = 0

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetEvents lists all events, or only those held in a city containing the
// given text when city is not blank.
func (s *EventService) GetEvents(ctx context.Context, city string) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx, strings.TrimSpace(city))
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) PurchaseTickets(ctx context.Context, eventID uint, quantity int) (domain.Event, error) {
	if err := domain.ValidatePurchaseQuantity(quantity); err != nil {
		return domain.Event{}, err
	}

	event, err := s.repo.Purchase(ctx, eventID, quantity)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Purchase -> %w", err)
	}

	return event, nil
}
