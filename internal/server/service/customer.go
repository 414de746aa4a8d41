package service

import (
	"context"
	"time"

	"taproom/internal/shared/models"
)

type CustomerService struct {
	repo Repository
}

func (s *CustomerService) List(ctx context.Context) ([]models.CustomerDTO, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, models.CustomerToDTO(c))
	}
	return dtos, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (models.CustomerDTO, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return models.CustomerDTO{}, err
	}
	return models.CustomerToDTO(c), nil
}

func (s *CustomerService) Create(ctx context.Context, dto models.CustomerDTO) (models.CustomerDTO, error) {
	created, err := s.repo.CreateCustomer(ctx, models.CustomerFromDTO(dto))
	if err != nil {
		return models.CustomerDTO{}, err
	}
	return models.CustomerToDTO(created), nil
}

func (s *CustomerService) Update(ctx context.Context, id string, dto models.CustomerDTO) (models.CustomerDTO, error) {
	existing, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return models.CustomerDTO{}, err
	}
	updated, err := s.repo.UpdateCustomer(ctx, models.MergeCustomerUpdate(existing, dto, time.Now().UTC()))
	if err != nil {
		return models.CustomerDTO{}, err
	}
	return models.CustomerToDTO(updated), nil
}

func (s *CustomerService) Patch(ctx context.Context, id string, dto models.CustomerDTO) (models.CustomerDTO, error) {
	existing, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return models.CustomerDTO{}, err
	}
	patched, err := s.repo.UpdateCustomer(ctx, models.MergeCustomerPatch(existing, dto, time.Now().UTC()))
	if err != nil {
		return models.CustomerDTO{}, err
	}
	return models.CustomerToDTO(patched), nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCustomer(ctx, id)
}
