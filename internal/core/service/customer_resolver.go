package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/core/domain"
	"github.com/logimart/shipment-service/internal/core/ports"
)

// CustomerResolver guarantees a local customer record exists for a given id,
// materializing it from the marketplace user service on first sight.
type CustomerResolver struct {
	customers   ports.CustomerRepository
	marketplace ports.MarketplaceGateway
	logger      zerolog.Logger
}

func NewCustomerResolver(customers ports.CustomerRepository, marketplace ports.MarketplaceGateway, logger zerolog.Logger) *CustomerResolver {
	return &CustomerResolver{customers: customers, marketplace: marketplace, logger: logger}
}

// Resolve returns the local customer unchanged when present (no refresh, no
// staleness check). When absent, it fetches the marketplace user and upserts
// a local row typed as Marketplace. A failed or empty remote lookup is fatal:
// the caller must abort the whole creation sequence.
func (r *CustomerResolver) Resolve(ctx context.Context, customerID int64) (*domain.Customer, error) {
	existing, err := r.customers.FindByID(ctx, customerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	user, err := r.marketplace.UserByID(ctx, strconv.FormatInt(customerID, 10))
	if err != nil {
		r.logger.Error().Err(err).Int64("customer_id", customerID).Msg("marketplace user lookup failed")
		return nil, domain.ErrMarketplaceUserNotFound
	}
	if user == nil {
		return nil, domain.ErrMarketplaceUserNotFound
	}

	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: marketplace user id %q is not numeric: %w", user.ID, err)
	}

	// Two concurrent resolutions of the same unknown customer can both reach
	// this point; the repository upsert makes the second insert a no-op.
	created, err := r.customers.UpsertMarketplace(ctx, &domain.Customer{
		ID:      id,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   orPlaceholder(user.Phone),
		Address: orPlaceholder(user.Address),
		Type:    domain.CustomerTypeMarketplace,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	r.logger.Info().Int64("customer_id", created.ID).Msg("marketplace customer materialized")
	return created, nil
}

func orPlaceholder(v string) string {
	if v == "" {
		return domain.PlaceholderContact
	}
	return v
}
