package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/repository"
)

var (
	ErrVenueNotFound = repository.ErrVenueNotFound
)

type VenueRepository interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindAll(ctx context.Context) ([]domain.Venue, error)
	Update(ctx context.Context, id uint, venue domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, id uint) error
}

type VenueService struct {
	repo VenueRepository
}

func NewVenueService(repo VenueRepository) *VenueService {
	return &VenueService{
		repo: repo,
	}
}

func (s *VenueService) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if err := venue.Validate(); err != nil {
		return domain.Venue{}, err
	}

	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VenueService) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return venues, nil
}

// UpdateVenue replaces name, city and capacity of the venue with id.
func (s *VenueService) UpdateVenue(ctx context.Context, id uint, venue domain.Venue) (domain.Venue, error) {
	if err := venue.Validate(); err != nil {
		return domain.Venue{}, err
	}

	updated, err := s.repo.Update(ctx, id, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteVenue removes the venue together with its events.
func (s *VenueService) DeleteVenue(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
