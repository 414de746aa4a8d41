package service

import (
	"context"
	"time"

	"taproom/internal/shared/models"
)

// BeerService owns the beer resource lifecycle. Update and Patch follow the
// same shape: fetch the existing record, merge the payload over it, issue one
// write. A missing identifier short-circuits before any write.
type BeerService struct {
	repo Repository
}

// List returns all beers when style is nil, or only those whose style
// equals *style exactly. A supplied empty string filters for the empty
// style rather than disabling the filter.
func (s *BeerService) List(ctx context.Context, style *string) ([]models.BeerDTO, error) {
	beers, err := s.repo.ListBeers(ctx, style)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.BeerDTO, 0, len(beers))
	for _, b := range beers {
		dtos = append(dtos, models.BeerToDTO(b))
	}
	return dtos, nil
}

func (s *BeerService) Get(ctx context.Context, id string) (models.BeerDTO, error) {
	b, err := s.repo.GetBeer(ctx, id)
	if err != nil {
		return models.BeerDTO{}, err
	}
	return models.BeerToDTO(b), nil
}

// FindFirstByName returns the oldest beer with an exactly matching name.
func (s *BeerService) FindFirstByName(ctx context.Context, name string) (models.BeerDTO, error) {
	b, err := s.repo.FindFirstBeerByName(ctx, name)
	if err != nil {
		return models.BeerDTO{}, err
	}
	return models.BeerToDTO(b), nil
}

// Create persists a new beer. A client-supplied ID is ignored; the store
// assigns the identifier and both timestamps.
func (s *BeerService) Create(ctx context.Context, dto models.BeerDTO) (models.BeerDTO, error) {
	created, err := s.repo.CreateBeer(ctx, models.BeerFromDTO(dto))
	if err != nil {
		return models.BeerDTO{}, err
	}
	return models.BeerToDTO(created), nil
}

// Update replaces every mutable field from the payload, absent fields
// included.
func (s *BeerService) Update(ctx context.Context, id string, dto models.BeerDTO) (models.BeerDTO, error) {
	existing, err := s.repo.GetBeer(ctx, id)
	if err != nil {
		return models.BeerDTO{}, err
	}
	updated, err := s.repo.UpdateBeer(ctx, models.MergeBeerUpdate(existing, dto, time.Now().UTC()))
	if err != nil {
		return models.BeerDTO{}, err
	}
	return models.BeerToDTO(updated), nil
}

// Patch overwrites only the fields present in the payload.
func (s *BeerService) Patch(ctx context.Context, id string, dto models.BeerDTO) (models.BeerDTO, error) {
	existing, err := s.repo.GetBeer(ctx, id)
	if err != nil {
		return models.BeerDTO{}, err
	}
	patched, err := s.repo.UpdateBeer(ctx, models.MergeBeerPatch(existing, dto, time.Now().UTC()))
	if err != nil {
		return models.BeerDTO{}, err
	}
	return models.BeerToDTO(patched), nil
}

// Delete resolves the identifier first so an absent record surfaces as
// not-found rather than a silent no-op.
func (s *BeerService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetBeer(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBeer(ctx, id)
}
