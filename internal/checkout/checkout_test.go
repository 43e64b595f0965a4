package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/printkart/storefront/internal/cart"
	"github.com/printkart/storefront/internal/catalog"
	"github.com/printkart/storefront/internal/order"
)

type countingGateway struct {
	calls  int
	reject bool
}

func (g *countingGateway) Authorize(amount, method string) error {
	g.calls++
	if g.reject {
		return fmt.Errorf("declined")
	}
	return nil
}

type failingRepo struct{ order.Repository }

func (failingRepo) Create(ctx context.Context, o *order.Order) error {
	return fmt.Errorf("ledger down")
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	if err := c.Add(catalog.Product{ID: 1, Name: "A4 Portrait Photo Book", Price: "₹2,499"}, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.Add(catalog.Product{ID: 3, Name: "Classic Wooden Frame", Price: "₹1,299"}, 2); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCheckout_EmptyCartRejectedBeforePayment(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw, order.NewMemRepo(nil))

	_, err := svc.Checkout(context.Background(), cart.New(), order.Customer{Name: "A"}, "Razorpay")
	if err != ErrEmptyCart {
		t.Fatalf("err=%v", err)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway llamado %d veces, esperaba 0", gw.calls)
	}
}

func TestCheckout_HappyPath(t *testing.T) {
	gw := &countingGateway{}
	repo := order.NewMemRepo(nil)
	svc := NewService(gw, repo)
	c := filledCart(t)

	res, err := svc.Checkout(context.Background(), c, order.Customer{Name: "John Doe", Pincode: "560001"}, "Razorpay")
	if err != nil {
		t.Fatal(err)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway llamado %d veces", gw.calls)
	}
	// 2499 + 2×1299 + 100 shipping = 5197
	if res.Total != "₹5,197.00" {
		t.Fatalf("total=%q", res.Total)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("ledger len=%d, esperaba exactamente 1", len(all))
	}
	o := all[0]
	if o.ID != res.OrderID || o.Status != order.StatusNew || o.PaymentStatus != "Paid" {
		t.Fatalf("order=%+v", o)
	}
	if len(o.Items) != 2 || o.Items[0].Name != "A4 Portrait Photo Book" || o.Items[1].Quantity != 2 {
		t.Fatalf("items no coinciden con el snapshot del carrito: %+v", o.Items)
	}
	if !c.Empty() {
		t.Fatal("el carrito debía quedar vacío")
	}
}

func TestCheckout_PaymentDeclineLeavesCartUntouched(t *testing.T) {
	gw := &countingGateway{reject: true}
	repo := order.NewMemRepo(nil)
	svc := NewService(gw, repo)
	c := filledCart(t)

	_, err := svc.Checkout(context.Background(), c, order.Customer{Name: "A"}, "PayU")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("err=%v", err)
	}
	if c.Empty() {
		t.Fatal("el carrito no debía tocarse")
	}
	if all, _ := repo.List(context.Background()); len(all) != 0 {
		t.Fatalf("ledger len=%d", len(all))
	}
}

func TestCheckout_LedgerFailureIsFatal(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw, failingRepo{})
	c := filledCart(t)

	_, err := svc.Checkout(context.Background(), c, order.Customer{Name: "A"}, "Razorpay")
	if err == nil || errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("err=%v, esperaba el error del ledger sin compensación", err)
	}
	if c.Empty() {
		t.Fatal("el carrito no debía limpiarse tras fallo del ledger")
	}
}
