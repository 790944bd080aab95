package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository/dao"
)

var (
	ErrVenueNotFound = dao.ErrVenueNotFound
)

type VenueDAO interface {
	Insert(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindAll(ctx context.Context) ([]dao.Venue, error)
	Update(ctx context.Context, id uint, venue dao.Venue) (dao.Venue, error)
	Delete(ctx context.Context, id uint) error
}

type VenueRepository struct {
	dao VenueDAO
}

func NewVenueRepository(dao VenueDAO) *VenueRepository {
	return &VenueRepository{
		dao: dao,
	}
}

func (r *VenueRepository) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VenueRepository) FindAll(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	venues := make([]domain.Venue, len(found))
	for i, v := range found {
		venues[i] = r.daoToDomain(v)
	}

	return venues, nil
}

func (r *VenueRepository) Update(ctx context.Context, id uint, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.dao.Update(ctx, id, r.domainToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VenueRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *VenueRepository) domainToDao(v domain.Venue) dao.Venue {
	return dao.Venue{
		ID:       v.ID,
		Name:     v.Name,
		City:     v.City,
		Capacity: v.Capacity,
	}
}

func (r *VenueRepository) daoToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:       v.ID,
		Name:     v.Name,
		City:     v.City,
		Capacity: v.Capacity,
	}
}
