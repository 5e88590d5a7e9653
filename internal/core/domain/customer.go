package domain

// CustomerType distinguishes where a customer record originated.
type CustomerType string

const (
	// CustomerTypeRegistered marks customers registered directly with this system.
	CustomerTypeRegistered CustomerType = "Registered"
	// CustomerTypeMarketplace marks customers materialized from the external
	// marketplace user service on their first shipment.
	CustomerTypeMarketplace CustomerType = "Marketplace"
)

// PlaceholderContact fills phone/address when the marketplace payload omits them.
const PlaceholderContact = "-"

// Customer is the local record of a shipment customer. Its identifier is
// shared with the external marketplace user service: once materialized, the
// row is treated as an authoritative local cache and never refreshed.
type Customer struct {
	ID      int64        `json:"customer_id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Address string       `json:"address"`
	Type    CustomerType `json:"c_type"`
}
