package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"taproom/internal/server/repository"
	"taproom/internal/shared/models"
)

type Repository struct {
	db *sql.DB
}

func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS beers (
			id TEXT PRIMARY KEY,
			beer_name TEXT NOT NULL,
			beer_style TEXT NOT NULL,
			upc TEXT NOT NULL,
			quantity_on_hand INTEGER NOT NULL,
			price TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error { return r.db.Close() }

// Beers

func (r *Repository) CreateBeer(ctx context.Context, b models.Beer) (models.Beer, error) {
	b.ID = uuid.NewString()
	now := time.Now().UTC()
	b.CreatedDate = now
	b.LastModifiedDate = now
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO beers(id,beer_name,beer_style,upc,quantity_on_hand,price,created_at,updated_at) VALUES(?,?,?,?,?,?,?,?)`,
		b.ID, b.BeerName, b.BeerStyle, b.UPC, b.QuantityOnHand, b.Price.String(), b.CreatedDate, b.LastModifiedDate)
	if err != nil {
		return models.Beer{}, err
	}
	return b, nil
}

func (r *Repository) GetBeer(ctx context.Context, id string) (models.Beer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id,beer_name,beer_style,upc,quantity_on_hand,price,created_at,updated_at FROM beers WHERE id = ?`, id)
	return scanBeer(row)
}

// ListBeers returns every beer, or only those whose style equals *style
// exactly. A nil style means no filter; a pointer to "" filters for the
// empty style.
func (r *Repository) ListBeers(ctx context.Context, style *string) ([]models.Beer, error) {
	query := `SELECT id,beer_name,beer_style,upc,quantity_on_hand,price,created_at,updated_at FROM beers ORDER BY created_at`
	args := []any{}
	if style != nil {
		query = `SELECT id,beer_name,beer_style,upc,quantity_on_hand,price,created_at,updated_at FROM beers WHERE beer_style = ? ORDER BY created_at`
		args = append(args, *style)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	beers := []models.Beer{}
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, err
		}
		beers = append(beers, b)
	}
	return beers, rows.Err()
}

func (r *Repository) FindFirstBeerByName(ctx context.Context, name string) (models.Beer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id,beer_name,beer_style,upc,quantity_on_hand,price,created_at,updated_at FROM beers WHERE beer_name = ? ORDER BY created_at LIMIT 1`, name)
	return scanBeer(row)
}

func (r *Repository) UpdateBeer(ctx context.Context, b models.Beer) (models.Beer, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE beers SET beer_name=?, beer_style=?, upc=?, quantity_on_hand=?, price=?, updated_at=? WHERE id=?`,
		b.BeerName, b.BeerStyle, b.UPC, b.QuantityOnHand, b.Price.String(), b.LastModifiedDate, b.ID)
	if err != nil {
		return models.Beer{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Beer{}, repository.ErrNotFound
	}
	return b, nil
}

func (r *Repository) DeleteBeer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM beers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Repository) CountBeers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beers`).Scan(&n)
	return n, err
}

// Customers

func (r *Repository) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedDate = now
	c.LastModifiedDate = now
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers(id,customer_name,created_at,updated_at) VALUES(?,?,?,?)`,
		c.ID, c.CustomerName, c.CreatedDate, c.LastModifiedDate)
	if err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (r *Repository) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var c models.Customer
	row := r.db.QueryRowContext(ctx,
		`SELECT id,customer_name,created_at,updated_at FROM customers WHERE id = ?`, id)
	err := row.Scan(&c.ID, &c.CustomerName, &c.CreatedDate, &c.LastModifiedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id,customer_name,created_at,updated_at FROM customers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.CustomerName, &c.CreatedDate, &c.LastModifiedDate); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *Repository) UpdateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET customer_name=?, updated_at=? WHERE id=?`,
		c.CustomerName, c.LastModifiedDate, c.ID)
	if err != nil {
		return models.Customer{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Customer{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBeer(row rowScanner) (models.Beer, error) {
	var b models.Beer
	var price string
	err := row.Scan(&b.ID, &b.BeerName, &b.BeerStyle, &b.UPC, &b.QuantityOnHand, &price, &b.CreatedDate, &b.LastModifiedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Beer{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Beer{}, err
	}
	// price kept as TEXT so decimals round-trip exactly
	b.Price, err = decimal.NewFromString(price)
	if err != nil {
		return models.Beer{}, err
	}
	return b, nil
}
