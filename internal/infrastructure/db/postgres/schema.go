package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the idempotent bootstrap for local runs; production schema
// management happens outside this service. customers.customer_id keeps a
// sequence even though ids are borrowed from the marketplace user service,
// so locally-registered customers can still be assigned ids; the customer
// repository resynchronizes it after every externally-sourced insert.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '-',
		address     TEXT NOT NULL DEFAULT '-',
		c_type      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		shipment_id         BIGSERIAL PRIMARY KEY,
		customer_id         BIGINT NOT NULL REFERENCES customers (customer_id),
		origin_address      TEXT NOT NULL,
		destination_address TEXT NOT NULL,
		s_type              TEXT NOT NULL,
		weight              DOUBLE PRECISION NOT NULL,
		status              TEXT NOT NULL,
		vehicle_id          BIGINT,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tracking_updates (
		tracking_id       BIGSERIAL PRIMARY KEY,
		shipment_id       BIGINT NOT NULL REFERENCES shipments (shipment_id) ON DELETE CASCADE,
		location          TEXT NOT NULL,
		status            TEXT NOT NULL,
		recipient_name    TEXT NOT NULL DEFAULT '',
		recipient_phone   TEXT NOT NULL DEFAULT '',
		recipient_address TEXT NOT NULL DEFAULT '',
		item_name         TEXT,
		barcode           TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_customer_id ON shipments (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_status ON shipments (status)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_updates_shipment_id ON tracking_updates (shipment_id)`,
}

// InitSchema creates the tables and indexes if they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
