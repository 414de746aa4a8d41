// Package bootstrap seeds the store with sample catalog data on first start.
package bootstrap

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"taproom/internal/shared/models"
)

type Store interface {
	CreateBeer(ctx context.Context, b models.Beer) (models.Beer, error)
	CountBeers(ctx context.Context) (int64, error)
	CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	CountCustomers(ctx context.Context) (int64, error)
}

// Seed loads the sample beers and customers when the respective table is
// empty. Existing rows are left untouched, so restarts are safe.
func Seed(ctx context.Context, store Store, logger *log.Logger) error {
	ten := decimal.NewFromInt(10)
	beers := []models.Beer{
		{BeerName: "Galaxy Cat", BeerStyle: "Pale Ale", UPC: "146514", QuantityOnHand: 5, Price: ten},
		{BeerName: "Crank", BeerStyle: "Pale Ale", UPC: "32154", QuantityOnHand: 9, Price: ten},
		{BeerName: "Sunshine City", BeerStyle: "IPA", UPC: "94546", QuantityOnHand: 10, Price: ten},
	}
	customers := []models.Customer{
		{CustomerName: "John Doe"},
		{CustomerName: "Jane Doe"},
		{CustomerName: "Jack Doe"},
	}

	n, err := store.CountBeers(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, b := range beers {
			if _, err := store.CreateBeer(ctx, b); err != nil {
				return err
			}
		}
		if logger != nil {
			logger.Printf("loaded %d sample beers", len(beers))
		}
	}

	n, err = store.CountCustomers(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, c := range customers {
			if _, err := store.CreateCustomer(ctx, c); err != nil {
				return err
			}
		}
		if logger != nil {
			logger.Printf("loaded %d sample customers", len(customers))
		}
	}
	return nil
}
