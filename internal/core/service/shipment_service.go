package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/core/domain"
	"github.com/logimart/shipment-service/internal/core/ports"
)

// ShipmentService composes customer resolution, context enrichment and the
// two local writes into the shipment creation orchestration, and carries the
// plain read/update/delete surface.
type ShipmentService struct {
	shipments ports.ShipmentRepository
	tracking  ports.TrackingRepository
	resolver  *CustomerResolver
	enricher  *ContextEnricher
	logger    zerolog.Logger
}

func NewShipmentService(
	shipments ports.ShipmentRepository,
	tracking ports.TrackingRepository,
	resolver *CustomerResolver,
	enricher *ContextEnricher,
	logger zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipments: shipments,
		tracking:  tracking,
		resolver:  resolver,
		enricher:  enricher,
		logger:    logger,
	}
}

// CreateShipment runs the creation sequence in strict order:
//
//  1. Resolve the customer. Failure aborts, nothing is written.
//  2. Enrich remote context. Best-effort, absent fields propagate.
//  3. Write the shipment row and the initial tracking row in one
//     transaction, so a tracking-write failure cannot leave an orphaned
//     shipment behind.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	customer, err := s.resolver.Resolve(ctx, input.CustomerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("customer_id", input.CustomerID).Msg("customer resolution failed, aborting creation")
		return nil, err
	}

	enrichment := s.enricher.Enrich(ctx, input.CustomerID)

	shipment := &domain.Shipment{
		CustomerID:         customer.ID,
		OriginAddress:      input.OriginAddress,
		DestinationAddress: input.DestinationAddress,
		Type:               input.Type,
		Weight:             input.Weight,
		Status:             input.Status,
		VehicleID:          input.VehicleID,
	}

	created, err := s.shipments.CreateWithInitialTracking(ctx, shipment, initialTracking(customer, input.Status, enrichment))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().
		Int64("shipment_id", created.ID).
		Int64("customer_id", created.CustomerID).
		Str("status", created.Status).
		Msg("shipment created")

	return created, nil
}

func (s *ShipmentService) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	return s.shipments.FindByID(ctx, id)
}

func (s *ShipmentService) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	return s.shipments.List(ctx)
}

func (s *ShipmentService) ListShipmentsByCustomer(ctx context.Context, customerID int64) ([]domain.Shipment, error) {
	return s.shipments.ListByCustomer(ctx, customerID)
}

func (s *ShipmentService) ListShipmentsByStatus(ctx context.Context, status string) ([]domain.Shipment, error) {
	return s.shipments.ListByStatus(ctx, status)
}

func (s *ShipmentService) ListShipmentsByVehicle(ctx context.Context, vehicleID int64) ([]domain.Shipment, error) {
	return s.shipments.ListByVehicle(ctx, vehicleID)
}

// UpdateShipment applies a partial update. An update with no fields supplied
// returns the existing row unchanged and performs no write.
func (s *ShipmentService) UpdateShipment(ctx context.Context, id int64, upd ports.ShipmentUpdate) (*domain.Shipment, error) {
	if upd.IsEmpty() {
		return s.shipments.FindByID(ctx, id)
	}
	updated, err := s.shipments.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("shipment_id", id).Msg("shipment updated")
	return updated, nil
}

func (s *ShipmentService) DeleteShipment(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.shipments.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete shipment: %w", err)
	}
	if deleted {
		s.logger.Info().Int64("shipment_id", id).Msg("shipment deleted")
	}
	return deleted, nil
}

func (s *ShipmentService) TrackingUpdates(ctx context.Context, shipmentID int64) ([]domain.TrackingUpdate, error) {
	return s.tracking.ListByShipment(ctx, shipmentID)
}

// initialTracking builds the tracking row written alongside a new shipment:
// fixed location, the shipment's initial status, recipient fields copied from
// the resolved customer, and, only when enrichment produced them, an order
// summary in item_name and a payment reference in barcode.
func initialTracking(c *domain.Customer, status string, enr ports.Enrichment) *domain.TrackingUpdate {
	t := &domain.TrackingUpdate{
		Location:         domain.LocationOrderReceived,
		Status:           status,
		RecipientName:    c.Name,
		RecipientPhone:   c.Phone,
		RecipientAddress: c.Address,
	}
	if o := enr.LatestOrder.Order; o != nil {
		summary := fmt.Sprintf("Order %s - Total %s", o.ID, formatAmount(o.TotalAmount))
		t.ItemName = &summary
	}
	if p := enr.LatestPayment.Payment; p != nil {
		ref := "PAY-" + p.ID
		t.Barcode = &ref
	}
	return t
}

// formatAmount renders a marketplace amount without a forced decimal point,
// matching how the upstream services print whole-number totals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
