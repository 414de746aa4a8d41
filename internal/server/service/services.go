package service

import (
	"context"

	"taproom/internal/shared/models"
)

type Repository interface {
	CreateBeer(ctx context.Context, b models.Beer) (models.Beer, error)
	GetBeer(ctx context.Context, id string) (models.Beer, error)
	ListBeers(ctx context.Context, style *string) ([]models.Beer, error)
	FindFirstBeerByName(ctx context.Context, name string) (models.Beer, error)
	UpdateBeer(ctx context.Context, b models.Beer) (models.Beer, error)
	DeleteBeer(ctx context.Context, id string) error

	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type Services struct {
	Beers     *BeerService
	Customers *CustomerService
}

func NewServices(repo Repository) *Services {
	return &Services{
		Beers:     &BeerService{repo: repo},
		Customers: &CustomerService{repo: repo},
	}
}
