package graph

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/logimart/shipment-service/internal/api/metrics"
	"github.com/logimart/shipment-service/internal/core/domain"
	"github.com/logimart/shipment-service/internal/core/ports"
)

// Resolver is the GraphQL root resolver. Struct-field names in the argument
// types mirror the schema's snake_case argument names (graphql-go matches
// them case-insensitively).
type Resolver struct {
	service  ports.ShipmentService
	validate *inputValidator
	logger   zerolog.Logger
}

func NewResolver(service ports.ShipmentService, logger zerolog.Logger) *Resolver {
	return &Resolver{service: service, validate: newInputValidator(), logger: logger}
}

// --- Queries ---

func (r *Resolver) Shipments(ctx context.Context) ([]*shipmentResolver, error) {
	shipments, err := r.service.ListShipments(ctx)
	if err != nil {
		return nil, err
	}
	return wrapShipments(shipments), nil
}

func (r *Resolver) Shipment(ctx context.Context, args struct{ ID graphql.ID }) (*shipmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	return r.lookupShipment(ctx, id)
}

func (r *Resolver) ShipmentsByCustomer(ctx context.Context, args struct{ Customer_id graphql.ID }) ([]*shipmentResolver, error) {
	id, err := parseID(args.Customer_id)
	if err != nil {
		return nil, err
	}
	shipments, err := r.service.ListShipmentsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	return wrapShipments(shipments), nil
}

func (r *Resolver) ShipmentsByStatus(ctx context.Context, args struct{ Status string }) ([]*shipmentResolver, error) {
	shipments, err := r.service.ListShipmentsByStatus(ctx, args.Status)
	if err != nil {
		return nil, err
	}
	return wrapShipments(shipments), nil
}

func (r *Resolver) ShipmentsByVehicle(ctx context.Context, args struct{ Vehicle_id graphql.ID }) ([]*shipmentResolver, error) {
	id, err := parseID(args.Vehicle_id)
	if err != nil {
		return nil, err
	}
	shipments, err := r.service.ListShipmentsByVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	return wrapShipments(shipments), nil
}

func (r *Resolver) TrackingUpdates(ctx context.Context, args struct{ Shipment_id graphql.ID }) ([]*trackingResolver, error) {
	id, err := parseID(args.Shipment_id)
	if err != nil {
		return nil, err
	}
	updates, err := r.service.TrackingUpdates(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]*trackingResolver, 0, len(updates))
	for i := range updates {
		out = append(out, &trackingResolver{t: updates[i]})
	}
	return out, nil
}

// ShipmentByReference resolves an entity reference by shipment_id, for
// callers that address shipments the federation way.
func (r *Resolver) ShipmentByReference(ctx context.Context, args struct{ Shipment_id graphql.ID }) (*shipmentResolver, error) {
	id, err := parseID(args.Shipment_id)
	if err != nil {
		return nil, err
	}
	return r.lookupShipment(ctx, id)
}

// lookupShipment maps "not found" to a null result instead of an error,
// matching the nullable Shipment fields in the schema.
func (r *Resolver) lookupShipment(ctx context.Context, id int64) (*shipmentResolver, error) {
	s, err := r.service.GetShipment(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipmentResolver{s: *s}, nil
}

// --- Mutations ---

type createShipmentArgs struct {
	Customer_id         graphql.ID `validate:"required"`
	Origin_address      string     `validate:"required"`
	Destination_address string     `validate:"required"`
	S_type              string     `validate:"required"`
	Weight              float64    `validate:"required,gt=0"`
	Status              string     `validate:"required"`
	Vehicle_id          *graphql.ID
}

func (r *Resolver) CreateShipment(ctx context.Context, args createShipmentArgs) (*shipmentResolver, error) {
	if err := r.validate.Validate(&args); err != nil {
		return nil, err
	}

	customerID, err := parseID(args.Customer_id)
	if err != nil {
		return nil, err
	}

	input := ports.CreateShipmentInput{
		CustomerID:         customerID,
		OriginAddress:      args.Origin_address,
		DestinationAddress: args.Destination_address,
		Type:               args.S_type,
		Weight:             args.Weight,
		Status:             args.Status,
	}
	if args.Vehicle_id != nil {
		vehicleID, err := parseID(*args.Vehicle_id)
		if err != nil {
			return nil, err
		}
		input.VehicleID = &vehicleID
	}

	created, err := r.service.CreateShipment(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(created.Type).Inc()
	return &shipmentResolver{s: *created}, nil
}

type updateShipmentArgs struct {
	ID                  graphql.ID
	Origin_address      *string
	Destination_address *string
	S_type              *string
	Weight              *float64
	Status              *string
	Vehicle_id          *graphql.ID
}

func (r *Resolver) UpdateShipment(ctx context.Context, args updateShipmentArgs) (*shipmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	upd := ports.ShipmentUpdate{
		OriginAddress:      args.Origin_address,
		DestinationAddress: args.Destination_address,
		Type:               args.S_type,
		Weight:             args.Weight,
		Status:             args.Status,
	}
	if args.Vehicle_id != nil {
		vehicleID, err := parseID(*args.Vehicle_id)
		if err != nil {
			return nil, err
		}
		upd.VehicleID = &vehicleID
	}

	updated, err := r.service.UpdateShipment(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipmentResolver{s: *updated}, nil
}

func (r *Resolver) DeleteShipment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}
	return r.service.DeleteShipment(ctx, id)
}

// --- Field resolvers ---

type shipmentResolver struct {
	s domain.Shipment
}

func (r *shipmentResolver) Shipment_id() graphql.ID { return formatID(r.s.ID) }
func (r *shipmentResolver) Customer_id() graphql.ID { return formatID(r.s.CustomerID) }
func (r *shipmentResolver) Origin_address() string  { return r.s.OriginAddress }
func (r *shipmentResolver) Destination_address() string {
	return r.s.DestinationAddress
}
func (r *shipmentResolver) S_type() string  { return r.s.Type }
func (r *shipmentResolver) Weight() float64 { return r.s.Weight }
func (r *shipmentResolver) Status() string  { return r.s.Status }

func (r *shipmentResolver) Vehicle_id() *graphql.ID {
	if r.s.VehicleID == nil {
		return nil
	}
	id := formatID(*r.s.VehicleID)
	return &id
}

func (r *shipmentResolver) Created_at() string {
	return r.s.CreatedAt.UTC().Format(time.RFC3339)
}

func (r *shipmentResolver) Customer() *customerRefResolver {
	return &customerRefResolver{id: formatID(r.s.CustomerID)}
}

func (r *shipmentResolver) Vehicle() *vehicleRefResolver {
	if r.s.VehicleID == nil {
		return nil
	}
	return &vehicleRefResolver{id: formatID(*r.s.VehicleID)}
}

// customerRefResolver and vehicleRefResolver are federation-style stub
// references: only the key field is populated, the owning services resolve
// the rest.
type customerRefResolver struct{ id graphql.ID }

func (r *customerRefResolver) Customer_id() graphql.ID { return r.id }

type vehicleRefResolver struct{ id graphql.ID }

func (r *vehicleRefResolver) Vehicle_id() graphql.ID { return r.id }

type trackingResolver struct {
	t domain.TrackingUpdate
}

func (r *trackingResolver) Tracking_id() graphql.ID      { return formatID(r.t.ID) }
func (r *trackingResolver) Shipment_id() graphql.ID      { return formatID(r.t.ShipmentID) }
func (r *trackingResolver) Location() string             { return r.t.Location }
func (r *trackingResolver) Status() string               { return r.t.Status }
func (r *trackingResolver) Recipient_name() string       { return r.t.RecipientName }
func (r *trackingResolver) Recipient_phone() string      { return r.t.RecipientPhone }
func (r *trackingResolver) Recipient_address() string    { return r.t.RecipientAddress }
func (r *trackingResolver) Item_name() *string           { return r.t.ItemName }
func (r *trackingResolver) Barcode() *string             { return r.t.Barcode }
func (r *trackingResolver) Created_at() string           { return r.t.CreatedAt.UTC().Format(time.RFC3339) }

// --- Helpers ---

func wrapShipments(shipments []domain.Shipment) []*shipmentResolver {
	out := make([]*shipmentResolver, 0, len(shipments))
	for i := range shipments {
		out = append(out, &shipmentResolver{s: shipments[i]})
	}
	return out
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be numeric", string(id))
	}
	return n, nil
}

func formatID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}
