// Package cart models the client-held shopping cart: an ordered list of
// product snapshots with quantities. The cart is never persisted server
// side; it arrives with the checkout request and is cleared when the
// order goes through.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/printkart/storefront/internal/catalog"
	"github.com/printkart/storefront/internal/money"
)

var (
	ErrBadQuantity = errors.New("quantity must be at least 1")
	ErrNotInCart   = errors.New("product not in cart")
)

// ShippingFlat is the flat shipping charge shown at the checkout
// summary step. It is not part of the cart's own subtotal.
var ShippingFlat = decimal.NewFromInt(100)

// Line carries a snapshot of the product's name and price taken at
// add-to-cart time; later catalog edits do not reach it.
type Line struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// FromLines builds a cart from request lines, applying the same merge
// and validation rules as Add.
func FromLines(lines []Line) (*Cart, error) {
	c := New()
	for _, l := range lines {
		p := catalog.Product{ID: l.ProductID, Name: l.Name, Price: l.Price}
		if err := c.Add(p, l.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a line, or merges by product id when the product is
// already present, summing quantities.
func (c *Cart) Add(p catalog.Product, qty int) error {
	if qty < 1 {
		return ErrBadQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty})
	return nil
}

// UpdateQuantity sets the line's quantity. Quantities below 1 are
// rejected; use Remove to drop a line.
func (c *Cart) UpdateQuantity(productID int64, qty int) error {
	if qty < 1 {
		return ErrBadQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return nil
		}
	}
	return ErrNotInCart
}

func (c *Cart) Remove(productID int64) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Lines() []Line { return append([]Line(nil), c.lines...) }

func (c *Cart) Clear() { c.lines = nil }

// Subtotal sums price × quantity over all lines. Shipping is excluded.
func (c *Cart) Subtotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range c.lines {
		price, err := money.Parse(l.Price)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total, nil
}

// Total renders the subtotal as a display string.
func (c *Cart) Total() (string, error) {
	sub, err := c.Subtotal()
	if err != nil {
		return "", err
	}
	return money.Format(sub), nil
}
