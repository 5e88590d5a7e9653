package domain

import "time"

// LocationOrderReceived is the fixed location stamped on the tracking entry
// written at shipment creation.
const LocationOrderReceived = "Order received"

// TrackingUpdate is an append-only log entry recording a status/location
// event for a shipment. Recipient fields are denormalized from the customer
// at creation time. ItemName carries the order summary text and Barcode the
// payment reference string when marketplace enrichment produced them.
type TrackingUpdate struct {
	ID               int64     `json:"tracking_id"`
	ShipmentID       int64     `json:"shipment_id"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	RecipientName    string    `json:"recipient_name"`
	RecipientPhone   string    `json:"recipient_phone"`
	RecipientAddress string    `json:"recipient_address"`
	ItemName         *string   `json:"item_name,omitempty"`
	Barcode          *string   `json:"barcode,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
