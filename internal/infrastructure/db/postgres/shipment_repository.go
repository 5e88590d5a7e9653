package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logimart/shipment-service/internal/core/domain"
	"github.com/logimart/shipment-service/internal/core/ports"
)

type ShipmentRepository struct {
	pool *pgxpool.Pool
}

func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

const shipmentColumns = "shipment_id, customer_id, origin_address, destination_address, s_type, weight, status, vehicle_id, created_at"

// CreateWithInitialTracking inserts the shipment and its first tracking row
// in one transaction, so a tracking-write failure can never leave an orphaned
// shipment without tracking history behind.
func (r *ShipmentRepository) CreateWithInitialTracking(ctx context.Context, s *domain.Shipment, t *domain.TrackingUpdate) (*domain.Shipment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create shipment: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO shipments (customer_id, origin_address, destination_address, s_type, weight, status, vehicle_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING shipment_id, created_at`,
		s.CustomerID, s.OriginAddress, s.DestinationAddress, s.Type, s.Weight, s.Status, s.VehicleID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	t.ShipmentID = s.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO tracking_updates (shipment_id, location, status, recipient_name, recipient_phone, recipient_address, item_name, barcode)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING tracking_id, created_at`,
		t.ShipmentID, t.Location, t.Status, t.RecipientName, t.RecipientPhone, t.RecipientAddress, t.ItemName, t.Barcode,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create shipment: tracking insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create shipment: commit: %w", err)
	}

	clone := *s
	return &clone, nil
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id int64) (*domain.Shipment, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE shipment_id = $1", id)

	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("find shipment: %w", err)
	}
	return s, nil
}

func (r *ShipmentRepository) List(ctx context.Context) ([]domain.Shipment, error) {
	return r.list(ctx, "SELECT "+shipmentColumns+" FROM shipments ORDER BY created_at DESC")
}

func (r *ShipmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Shipment, error) {
	return r.list(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE customer_id = $1 ORDER BY created_at DESC", customerID)
}

func (r *ShipmentRepository) ListByStatus(ctx context.Context, status string) ([]domain.Shipment, error) {
	return r.list(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE status = $1 ORDER BY created_at DESC", status)
}

func (r *ShipmentRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Shipment, error) {
	return r.list(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE vehicle_id = $1 ORDER BY created_at DESC", vehicleID)
}

func (r *ShipmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Shipment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var out []domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("list shipments: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return out, nil
}

// Update builds the SET clause from the fields actually present in upd.
// Callers guarantee at least one field is set.
func (r *ShipmentRepository) Update(ctx context.Context, id int64, upd ports.ShipmentUpdate) (*domain.Shipment, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.OriginAddress != nil {
		add("origin_address", *upd.OriginAddress)
	}
	if upd.DestinationAddress != nil {
		add("destination_address", *upd.DestinationAddress)
	}
	if upd.Type != nil {
		add("s_type", *upd.Type)
	}
	if upd.Weight != nil {
		add("weight", *upd.Weight)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.VehicleID != nil {
		add("vehicle_id", *upd.VehicleID)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE shipments SET %s WHERE shipment_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), shipmentColumns)

	s, err := scanShipment(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return s, nil
}

// Delete removes a shipment row; reports whether one existed.
func (r *ShipmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM shipments WHERE shipment_id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete shipment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.OriginAddress, &s.DestinationAddress,
		&s.Type, &s.Weight, &s.Status, &s.VehicleID, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
