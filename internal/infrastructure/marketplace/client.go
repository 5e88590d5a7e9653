// Package marketplace implements the outbound GraphQL calls to the sibling
// user, order and payment services. Each call is a single synchronous
// request/response with one variable; there are no retries and no caching;
// every orchestration call fetches fresh.
package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/api/metrics"
	"github.com/logimart/shipment-service/internal/core/domain"
)

const (
	serviceUser    = "user"
	serviceOrder   = "order"
	servicePayment = "payment"
)

const userQuery = `
query GetUser($id: ID!) {
	user(id: $id) {
		user_id
		name
		email
		phone
		address
	}
}`

const ordersQuery = `
query OrdersByUser($userId: ID!) {
	ordersByUser(userId: $userId) {
		order_id
		total_amount
		status
		order_date
	}
}`

const paymentsQuery = `
query PaymentsByOrder($orderId: ID!) {
	paymentsByOrder(orderId: $orderId) {
		payment_id
		amount
		payment_status
		payment_date
	}
}`

// Config points the client at the three marketplace endpoints. Timeout bounds
// every call; without it an unresponsive sibling service would block the
// whole creation sequence indefinitely.
type Config struct {
	UserServiceURL    string
	OrderServiceURL   string
	PaymentServiceURL string
	Timeout           time.Duration
}

// Client talks to the three marketplace GraphQL services.
type Client struct {
	users    *graphql.Client
	orders   *graphql.Client
	payments *graphql.Client
	logger   zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	opt := graphql.WithHTTPClient(httpClient)
	return &Client{
		users:    graphql.NewClient(cfg.UserServiceURL, opt),
		orders:   graphql.NewClient(cfg.OrderServiceURL, opt),
		payments: graphql.NewClient(cfg.PaymentServiceURL, opt),
		logger:   logger,
	}
}

// UserByID fetches a marketplace user. A reachable service that knows no such
// user yields (nil, nil); transport and GraphQL errors are returned as-is.
func (c *Client) UserByID(ctx context.Context, id string) (*domain.MarketplaceUser, error) {
	req := graphql.NewRequest(userQuery)
	req.Var("id", id)

	var resp struct {
		User *domain.MarketplaceUser `json:"user"`
	}
	if err := c.users.Run(ctx, req, &resp); err != nil {
		metrics.MarketplaceRequestsTotal.WithLabelValues(serviceUser, "error").Inc()
		return nil, fmt.Errorf("marketplace user service: %w", err)
	}
	metrics.MarketplaceRequestsTotal.WithLabelValues(serviceUser, "ok").Inc()
	return resp.User, nil
}

// OrdersByUser fetches a user's orders in the order service's own ordering.
func (c *Client) OrdersByUser(ctx context.Context, userID string) ([]domain.MarketplaceOrder, error) {
	req := graphql.NewRequest(ordersQuery)
	req.Var("userId", userID)

	var resp struct {
		OrdersByUser []domain.MarketplaceOrder `json:"ordersByUser"`
	}
	if err := c.orders.Run(ctx, req, &resp); err != nil {
		metrics.MarketplaceRequestsTotal.WithLabelValues(serviceOrder, "error").Inc()
		return nil, fmt.Errorf("marketplace order service: %w", err)
	}
	metrics.MarketplaceRequestsTotal.WithLabelValues(serviceOrder, "ok").Inc()
	return resp.OrdersByUser, nil
}

// PaymentsByOrder fetches an order's payments.
func (c *Client) PaymentsByOrder(ctx context.Context, orderID string) ([]domain.MarketplacePayment, error) {
	req := graphql.NewRequest(paymentsQuery)
	req.Var("orderId", orderID)

	var resp struct {
		PaymentsByOrder []domain.MarketplacePayment `json:"paymentsByOrder"`
	}
	if err := c.payments.Run(ctx, req, &resp); err != nil {
		metrics.MarketplaceRequestsTotal.WithLabelValues(servicePayment, "error").Inc()
		return nil, fmt.Errorf("marketplace payment service: %w", err)
	}
	metrics.MarketplaceRequestsTotal.WithLabelValues(servicePayment, "ok").Inc()
	return resp.PaymentsByOrder, nil
}
