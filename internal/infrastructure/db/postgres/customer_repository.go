package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logimart/shipment-service/internal/api/metrics"
	"github.com/logimart/shipment-service/internal/core/domain"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = "customer_id, name, email, phone, address, c_type"

// FindByID retrieves a customer by its shared identifier.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE customer_id = $1", id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return c, nil
}

// UpsertMarketplace materializes an externally-sourced customer. The insert
// is conflict-tolerant: when another request already created the row, the
// existing row is fetched and returned instead of failing. After an actual
// insert the serial sequence is advanced past the borrowed identifier, so
// locally-generated ids can never collide with marketplace-sourced ones.
func (r *CustomerRepository) UpsertMarketplace(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO customers (customer_id, name, email, phone, address, c_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (customer_id) DO NOTHING
		 RETURNING `+customerColumns,
		c.ID, c.Name, c.Email, c.Phone, c.Address, string(c.Type))

	inserted, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race: the row already exists and is authoritative.
			return r.FindByID(ctx, c.ID)
		}
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	if err := r.resyncSequence(ctx); err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	metrics.CustomersMaterializedTotal.Inc()
	return inserted, nil
}

// resyncSequence advances the customers serial sequence to the current
// maximum id. Required after every insert that supplies an explicit id from
// the marketplace's numbering space.
func (r *CustomerRepository) resyncSequence(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('customers', 'customer_id'),
		        (SELECT MAX(customer_id) FROM customers))`)
	return err
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var ctype string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &ctype); err != nil {
		return nil, err
	}
	c.Type = domain.CustomerType(ctype)
	return &c, nil
}
