package ports

import (
	"context"

	"github.com/logimart/shipment-service/internal/core/domain"
)

// CreateShipmentInput carries all data needed to create a new shipment.
type CreateShipmentInput struct {
	CustomerID         int64
	OriginAddress      string
	DestinationAddress string
	Type               string
	Weight             float64
	Status             string
	VehicleID          *int64 // optional, not validated against the fleet service
}

// OrderLookup is the explicit result of the best-effort latest-order fetch.
// Unavailable distinguishes "the order service could not be reached" from
// "the user simply has no orders" (Order == nil, Unavailable == false).
type OrderLookup struct {
	Order       *domain.MarketplaceOrder
	Unavailable bool
}

// PaymentLookup mirrors OrderLookup for the latest payment.
type PaymentLookup struct {
	Payment     *domain.MarketplacePayment
	Unavailable bool
}

// Enrichment is the remote context gathered before a shipment is written.
// Both lookups are best-effort: absence never aborts creation.
type Enrichment struct {
	LatestOrder   OrderLookup
	LatestPayment PaymentLookup
}

// ShipmentService defines the use-case operations exposed over GraphQL.
type ShipmentService interface {
	// CreateShipment runs the full orchestration: resolve customer (fatal on
	// failure), enrich context (best-effort), then write the shipment and its
	// initial tracking entry.
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)

	GetShipment(ctx context.Context, id int64) (*domain.Shipment, error)
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	ListShipmentsByCustomer(ctx context.Context, customerID int64) ([]domain.Shipment, error)
	ListShipmentsByStatus(ctx context.Context, status string) ([]domain.Shipment, error)
	ListShipmentsByVehicle(ctx context.Context, vehicleID int64) ([]domain.Shipment, error)

	// UpdateShipment applies a partial update; an empty update returns the
	// existing row unchanged and performs no write.
	UpdateShipment(ctx context.Context, id int64, upd ShipmentUpdate) (*domain.Shipment, error)

	// DeleteShipment reports whether a shipment existed and was removed.
	DeleteShipment(ctx context.Context, id int64) (bool, error)

	// TrackingUpdates returns a shipment's tracking log, oldest first.
	TrackingUpdates(ctx context.Context, shipmentID int64) ([]domain.TrackingUpdate, error)
}
