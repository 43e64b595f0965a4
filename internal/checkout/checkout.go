// Package checkout sequences the purchase: cart → payment gateway →
// order ledger → cart clear. Each step is a hard precondition for the
// next.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/printkart/storefront/internal/cart"
	"github.com/printkart/storefront/internal/money"
	"github.com/printkart/storefront/internal/order"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentFailed = errors.New("payment failed")
)

// Gateway is the payment collaborator. The mock implementation lives
// in fulfillment; tests inject counters here.
type Gateway interface {
	Authorize(amount, method string) error
}

type GatewayFunc func(amount, method string) error

func (f GatewayFunc) Authorize(amount, method string) error { return f(amount, method) }

type Service struct {
	gateway Gateway
	orders  order.Repository
}

func NewService(gateway Gateway, orders order.Repository) *Service {
	return &Service{gateway: gateway, orders: orders}
}

type Result struct {
	OrderID int64  `json:"orderId"`
	Total   string `json:"total"`
	Message string `json:"message"`
}

// Checkout charges the cart total plus flat shipping, records the
// order (status New, payment Paid) and clears the cart. The cart is
// left untouched on any failure; a ledger failure after a successful
// charge is surfaced as-is, with no compensating refund.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, customer order.Customer, method string) (*Result, error) {
	if c.Empty() {
		return nil, ErrEmptyCart
	}

	subtotal, err := c.Subtotal()
	if err != nil {
		return nil, err
	}
	total := money.Format(subtotal.Add(cart.ShippingFlat))

	if err := s.gateway.Authorize(total, method); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	items := make([]order.Item, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		items = append(items, order.Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}
	o := &order.Order{
		Customer:      customer,
		Items:         items,
		Total:         total,
		Status:        order.StatusNew,
		PaymentStatus: "Paid",
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	c.Clear()
	return &Result{OrderID: o.ID, Total: total, Message: "Order placed successfully!"}, nil
}
