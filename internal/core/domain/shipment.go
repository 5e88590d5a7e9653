package domain

import (
	"errors"
	"time"
)

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrMarketplaceUserNotFound = errors.New("marketplace user not found")

// Shipment is the core aggregate root. Status is a free-form string (the
// admin frontend drives the vocabulary, e.g. "pending"); VehicleID is an
// optional, unvalidated reference into the fleet service's keyspace.
type Shipment struct {
	ID                 int64     `json:"shipment_id"`
	CustomerID         int64     `json:"customer_id"`
	OriginAddress      string    `json:"origin_address"`
	DestinationAddress string    `json:"destination_address"`
	Type               string    `json:"s_type"`
	Weight             float64   `json:"weight"`
	Status             string    `json:"status"`
	VehicleID          *int64    `json:"vehicle_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
