package order

// Customer is the shipping/billing block captured at checkout.
type Customer struct {
	Name            string `json:"customerName"`
	Email           string `json:"email,omitempty"`
	Mobile          string `json:"mobile,omitempty"`
	BillingAddress  string `json:"billingAddress,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
	Pincode         string `json:"pincode,omitempty"`
}

// Item is an immutable snapshot of the product at order time. Catalog
// edits after the fact never reach it.
type Item struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type Order struct {
	ID int64 `json:"id"`
	Customer
	Items         []Item `json:"items"`
	Total         string `json:"total"`
	Status        Status `json:"status"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// UpdateStatusRequest payload for the admin status transition.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Processing"`
}
