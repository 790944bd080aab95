package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository/dao"
)

var (
	ErrEventNotFound    = dao.ErrEventNotFound
	ErrCapacityExceeded = dao.ErrCapacityExceeded
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context, city string) ([]dao.Event, error)
	Purchase(ctx context.Context, id uint, quantity int) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context, city string) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) Purchase(ctx context.Context, id uint, quantity int) (domain.Event, error) {
	updated, err := r.dao.Purchase(ctx, id, quantity)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Purchase -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date,
		Price:       e.Price,
		TicketsSold: e.TicketsSold,
		VenueID:     e.VenueID,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date.UTC(),
		Price:       e.Price,
		TicketsSold: e.TicketsSold,
		VenueID:     e.VenueID,
	}
}
