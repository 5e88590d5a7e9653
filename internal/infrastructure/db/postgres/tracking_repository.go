package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logimart/shipment-service/internal/core/domain"
)

type TrackingRepository struct {
	pool *pgxpool.Pool
}

func NewTrackingRepository(pool *pgxpool.Pool) *TrackingRepository {
	return &TrackingRepository{pool: pool}
}

// ListByShipment returns the shipment's tracking log, oldest entry first.
func (r *TrackingRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]domain.TrackingUpdate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT tracking_id, shipment_id, location, status,
		        recipient_name, recipient_phone, recipient_address,
		        item_name, barcode, created_at
		 FROM tracking_updates
		 WHERE shipment_id = $1
		 ORDER BY created_at ASC, tracking_id ASC`, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list tracking updates: %w", err)
	}
	defer rows.Close()

	var out []domain.TrackingUpdate
	for rows.Next() {
		var t domain.TrackingUpdate
		err := rows.Scan(
			&t.ID, &t.ShipmentID, &t.Location, &t.Status,
			&t.RecipientName, &t.RecipientPhone, &t.RecipientAddress,
			&t.ItemName, &t.Barcode, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("list tracking updates: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tracking updates: %w", err)
	}
	return out, nil
}
