package domain

// Remote marketplace context. These are ephemeral views fetched fresh per
// orchestration call and never persisted as such. Identifiers stay in their
// GraphQL ID (string) form on the wire; only the user id crosses into the
// local keyspace (customers.customer_id).

// MarketplaceUser is the user service's view of a customer.
type MarketplaceUser struct {
	ID      string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// MarketplaceOrder is one order belonging to a marketplace user. The order
// service's list ordering is trusted as-is: its first element is "latest".
type MarketplaceOrder struct {
	ID          string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	OrderDate   string  `json:"order_date"`
}

// MarketplacePayment is one payment belonging to a marketplace order.
type MarketplacePayment struct {
	ID          string  `json:"payment_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"payment_status"`
	PaymentDate string  `json:"payment_date"`
}
