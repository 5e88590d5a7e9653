package ports

import (
	"context"

	"github.com/logimart/shipment-service/internal/core/domain"
)

// MarketplaceGateway performs single synchronous request/response calls to
// the sibling marketplace GraphQL services. Each method maps to one fixed
// remote query with one variable.
type MarketplaceGateway interface {
	// UserByID returns the marketplace user, (nil, nil) when the remote
	// service answers but knows no such user, or an error when the call fails.
	UserByID(ctx context.Context, id string) (*domain.MarketplaceUser, error)

	// OrdersByUser returns the user's orders in the order service's own
	// ordering (first element = latest; external contract, not re-sorted).
	OrdersByUser(ctx context.Context, userID string) ([]domain.MarketplaceOrder, error)

	// PaymentsByOrder returns the order's payments, first element = latest.
	PaymentsByOrder(ctx context.Context, orderID string) ([]domain.MarketplacePayment, error)
}
