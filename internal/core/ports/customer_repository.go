package ports

import (
	"context"

	"github.com/logimart/shipment-service/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// FindByID returns the local customer record or domain.ErrCustomerNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)

	// UpsertMarketplace materializes an externally-sourced customer exactly
	// once: insert-or-fetch-on-conflict keyed by the shared identifier, so two
	// concurrent callers racing on the same unknown customer both succeed.
	// Implementations must resynchronize the local identifier sequence after
	// an insert, since customer ids are borrowed from the marketplace's
	// numbering space.
	UpsertMarketplace(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}
