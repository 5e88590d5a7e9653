package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/core/ports"
)

// ContextEnricher gathers the latest order and payment for a customer from
// the sibling marketplace services. Enrichment is strictly best-effort:
// failures are logged and reported as Unavailable, never raised.
type ContextEnricher struct {
	marketplace ports.MarketplaceGateway
	logger      zerolog.Logger
}

func NewContextEnricher(marketplace ports.MarketplaceGateway, logger zerolog.Logger) *ContextEnricher {
	return &ContextEnricher{marketplace: marketplace, logger: logger}
}

// Enrich fetches the customer's latest order and, if one exists, that order's
// latest payment. "Latest" is the first element of the remote list; the
// remote ordering is an external contract and is not re-sorted here. When the
// order lookup fails or comes back empty, no payment call is made.
func (e *ContextEnricher) Enrich(ctx context.Context, customerID int64) ports.Enrichment {
	var enr ports.Enrichment

	orders, err := e.marketplace.OrdersByUser(ctx, strconv.FormatInt(customerID, 10))
	if err != nil {
		e.logger.Warn().Err(err).Int64("customer_id", customerID).Msg("order enrichment unavailable")
		enr.LatestOrder.Unavailable = true
		return enr
	}
	if len(orders) == 0 {
		return enr
	}
	enr.LatestOrder.Order = &orders[0]

	payments, err := e.marketplace.PaymentsByOrder(ctx, orders[0].ID)
	if err != nil {
		e.logger.Warn().Err(err).Str("order_id", orders[0].ID).Msg("payment enrichment unavailable")
		enr.LatestPayment.Unavailable = true
		return enr
	}
	if len(payments) > 0 {
		enr.LatestPayment.Payment = &payments[0]
	}
	return enr
}
