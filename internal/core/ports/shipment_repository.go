package ports

import (
	"context"

	"github.com/logimart/shipment-service/internal/core/domain"
)

// ShipmentUpdate carries a partial update: only non-nil fields are written.
// Presence, not value, decides what is included in the UPDATE statement.
type ShipmentUpdate struct {
	OriginAddress      *string
	DestinationAddress *string
	Type               *string
	Weight             *float64
	Status             *string
	VehicleID          *int64
}

// IsEmpty reports whether the update carries no fields at all.
func (u ShipmentUpdate) IsEmpty() bool {
	return u.OriginAddress == nil &&
		u.DestinationAddress == nil &&
		u.Type == nil &&
		u.Weight == nil &&
		u.Status == nil &&
		u.VehicleID == nil
}

// ShipmentRepository defines persistence operations for shipments and the
// initial tracking entry written alongside creation.
type ShipmentRepository interface {
	// CreateWithInitialTracking inserts the shipment row and its first
	// tracking-update row in one transaction. The tracking row's ShipmentID
	// is filled from the generated shipment id before the second insert.
	// Returns the persisted shipment including id and creation timestamp.
	CreateWithInitialTracking(ctx context.Context, s *domain.Shipment, t *domain.TrackingUpdate) (*domain.Shipment, error)

	// FindByID returns a shipment or domain.ErrShipmentNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Shipment, error)

	// List returns all shipments, newest first.
	List(ctx context.Context) ([]domain.Shipment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Shipment, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Shipment, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Shipment, error)

	// Update applies a partial update and returns the resulting row, or
	// domain.ErrShipmentNotFound. Callers must not pass an empty update.
	Update(ctx context.Context, id int64, upd ShipmentUpdate) (*domain.Shipment, error)

	// Delete removes a shipment; reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// TrackingRepository reads the append-only tracking log.
type TrackingRepository interface {
	// ListByShipment returns a shipment's tracking entries, oldest first.
	ListByShipment(ctx context.Context, shipmentID int64) ([]domain.TrackingUpdate, error)
}
