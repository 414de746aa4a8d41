package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"taproom/internal/server/repository"
	"taproom/internal/shared/models"
)

func strptr(s string) *string { return &s }

func newRepo(t *testing.T, name string) *Repository {
	t.Helper()
	repo, err := New("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestBeerCRUD(t *testing.T) {
	repo := newRepo(t, "repo_beer_crud")
	ctx := context.Background()

	created, err := repo.CreateBeer(ctx, models.Beer{
		BeerName:       "Galaxy Cat",
		BeerStyle:      "Pale Ale",
		UPC:            "146514",
		QuantityOnHand: 5,
		Price:          decimal.RequireFromString("10.99"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("id not assigned")
	}
	if created.CreatedDate.IsZero() || created.LastModifiedDate.IsZero() {
		t.Fatalf("timestamps not assigned: %+v", created)
	}

	got, err := repo.GetBeer(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BeerName != "Galaxy Cat" || got.BeerStyle != "Pale Ale" || got.UPC != "146514" || got.QuantityOnHand != 5 {
		t.Fatalf("fields mismatch: %+v", got)
	}
	if !got.Price.Equal(decimal.RequireFromString("10.99")) {
		t.Fatalf("price did not round-trip: %s", got.Price)
	}

	got.BeerName = "Renamed"
	got.LastModifiedDate = time.Now().UTC()
	if _, err := repo.UpdateBeer(ctx, got); err != nil {
		t.Fatal(err)
	}
	again, err := repo.GetBeer(ctx, created.ID)
	if err != nil || again.BeerName != "Renamed" {
		t.Fatalf("update not persisted: %v %+v", err, again)
	}
	if !again.CreatedDate.Equal(created.CreatedDate) {
		t.Fatalf("created date changed on update: %v vs %v", again.CreatedDate, created.CreatedDate)
	}

	if err := repo.DeleteBeer(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetBeer(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBeerNotFoundPaths(t *testing.T) {
	repo := newRepo(t, "repo_beer_notfound")
	ctx := context.Background()

	if _, err := repo.GetBeer(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get: %v", err)
	}
	if _, err := repo.UpdateBeer(ctx, models.Beer{ID: "missing"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("update: %v", err)
	}
	if err := repo.DeleteBeer(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindFirstBeerByName(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("find by name: %v", err)
	}
}

func TestListBeersStyleFilter(t *testing.T) {
	repo := newRepo(t, "repo_beer_filter")
	ctx := context.Background()

	for _, b := range []models.Beer{
		{BeerName: "Galaxy Cat", BeerStyle: "Pale Ale"},
		{BeerName: "Crank", BeerStyle: "Pale Ale"},
		{BeerName: "Sunshine City", BeerStyle: "IPA"},
	} {
		if _, err := repo.CreateBeer(ctx, b); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.ListBeers(ctx, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("list all: %v %d", err, len(all))
	}
	ipas, err := repo.ListBeers(ctx, strptr("IPA"))
	if err != nil || len(ipas) != 1 || ipas[0].BeerName != "Sunshine City" {
		t.Fatalf("filter IPA: %v %+v", err, ipas)
	}
	// exact match only, not prefix or contains
	if pale, _ := repo.ListBeers(ctx, strptr("Pale")); len(pale) != 0 {
		t.Fatalf("filter must be exact match, got %d rows", len(pale))
	}
	if none, err := repo.ListBeers(ctx, strptr("Stout")); err != nil || none == nil || len(none) != 0 {
		t.Fatalf("empty filter result should be an empty slice: %v %v", err, none)
	}
	// an empty style is a filter value, not the absence of one
	if blank, err := repo.ListBeers(ctx, strptr("")); err != nil || len(blank) != 0 {
		t.Fatalf("empty style filter should match nothing here: %v %d", err, len(blank))
	}
	if _, err := repo.CreateBeer(ctx, models.Beer{BeerName: "Mystery Brew"}); err != nil {
		t.Fatal(err)
	}
	if blank, err := repo.ListBeers(ctx, strptr("")); err != nil || len(blank) != 1 || blank[0].BeerName != "Mystery Brew" {
		t.Fatalf("empty style filter should match the unstyled beer: %v %+v", err, blank)
	}
}

func TestFindFirstBeerByName(t *testing.T) {
	repo := newRepo(t, "repo_beer_first")
	ctx := context.Background()
	first, err := repo.CreateBeer(ctx, models.Beer{BeerName: "Crank", BeerStyle: "Pale Ale"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateBeer(ctx, models.Beer{BeerName: "Crank", BeerStyle: "IPA"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.FindFirstBeerByName(ctx, "Crank")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected oldest row %s, got %s", first.ID, got.ID)
	}
}

func TestCustomerCRUD(t *testing.T) {
	repo := newRepo(t, "repo_customer_crud")
	ctx := context.Background()

	created, err := repo.CreateCustomer(ctx, models.Customer{CustomerName: "John Doe"})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.CreatedDate.IsZero() {
		t.Fatalf("system fields not assigned: %+v", created)
	}

	list, err := repo.ListCustomers(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v %d", err, len(list))
	}

	created.CustomerName = "Jane Doe"
	created.LastModifiedDate = time.Now().UTC()
	if _, err := repo.UpdateCustomer(ctx, created); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetCustomer(ctx, created.ID)
	if err != nil || got.CustomerName != "Jane Doe" {
		t.Fatalf("update: %v %+v", err, got)
	}

	if err := repo.DeleteCustomer(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteCustomer(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestCounts(t *testing.T) {
	repo := newRepo(t, "repo_counts")
	ctx := context.Background()
	n, err := repo.CountBeers(ctx)
	if err != nil || n != 0 {
		t.Fatalf("count beers: %v %d", err, n)
	}
	if _, err := repo.CreateBeer(ctx, models.Beer{BeerName: "Crank"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.CreateCustomer(ctx, models.Customer{CustomerName: "John Doe"}); err != nil {
		t.Fatal(err)
	}
	if n, _ = repo.CountBeers(ctx); n != 1 {
		t.Fatalf("count beers after create: %d", n)
	}
	if n, _ = repo.CountCustomers(ctx); n != 1 {
		t.Fatalf("count customers after create: %d", n)
	}
}
