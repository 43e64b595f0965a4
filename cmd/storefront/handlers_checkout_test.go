package main

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/printkart/storefront/internal/checkout"
	"github.com/printkart/storefront/internal/order"
)

func newCheckoutRouter(repo order.Repository, gw checkout.Gateway) *gin.Engine {
	r := gin.New()
	r.POST("/checkout", checkoutHandler(checkout.NewService(gw, repo)))
	r.GET("/track", trackShipmentHandler())
	r.POST("/refund", refundHandler())
	r.POST("/invoice", invoiceHandler())
	r.POST("/shipments", updateShipmentHandler())
	return r
}

func TestCheckout_HappyPathEndToEnd(t *testing.T) {
	repo := order.NewMemRepo(nil)
	r := newCheckoutRouter(repo, paymentGateway())

	body := `{
		"items":[
			{"productId":1,"name":"A4 Portrait Photo Book","price":"₹2,499","quantity":1},
			{"productId":3,"name":"Classic Wooden Frame","price":"₹1,299","quantity":2}
		],
		"customerName":"John Doe","email":"john@example.com","mobile":"9999999999",
		"billingAddress":"12 MG Road","shippingAddress":"12 MG Road","pincode":"560001",
		"paymentMethod":"Razorpay"
	}`
	w := doJSON(t, r, http.MethodPost, "/checkout", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var res checkout.Result
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.OrderID != 1 || res.Total != "₹5,197.00" {
		t.Fatalf("res=%+v", res)
	}

	got, err := repo.GetByID(context.Background(), res.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PaymentStatus != "Paid" || got.Status != order.StatusNew || len(got.Items) != 2 {
		t.Fatalf("order=%+v", got)
	}
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	repo := order.NewMemRepo(nil)
	calls := 0
	gw := checkout.GatewayFunc(func(amount, method string) error {
		calls++
		return nil
	})
	r := newCheckoutRouter(repo, gw)

	w := doJSON(t, r, http.MethodPost, "/checkout", `{"items":[],"customerName":"A","paymentMethod":"Razorpay"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400", w.Code)
	}
	if calls != 0 {
		t.Fatalf("gateway llamado %d veces con carrito vacío", calls)
	}
	if all, _ := repo.List(context.Background()); len(all) != 0 {
		t.Fatalf("ledger len=%d", len(all))
	}
}

func TestCheckout_MissingPaymentMethod(t *testing.T) {
	repo := order.NewMemRepo(nil)
	r := newCheckoutRouter(repo, paymentGateway())

	body := `{"items":[{"productId":1,"name":"X","price":"₹100","quantity":1}],"customerName":"A"}`
	w := doJSON(t, r, http.MethodPost, "/checkout", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400 (pago rechazado)", w.Code)
	}
	if all, _ := repo.List(context.Background()); len(all) != 0 {
		t.Fatalf("ledger len=%d tras pago fallido", len(all))
	}
}

func TestTrack_RequiresOrderID(t *testing.T) {
	r := newCheckoutRouter(order.NewMemRepo(nil), paymentGateway())

	w := doJSON(t, r, http.MethodGet, "/track?orderId=7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var info struct {
		OrderID        string `json:"orderId"`
		TrackingNumber string `json:"trackingNumber"`
		History        []any  `json:"history"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &info)
	if info.OrderID != "7" || !regexp.MustCompile(`^SR\d{9}$`).MatchString(info.TrackingNumber) || len(info.History) != 2 {
		t.Fatalf("info=%+v", info)
	}

	if w := doJSON(t, r, http.MethodGet, "/track", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400 sin orderId", w.Code)
	}
}

func TestRefundEndpoint(t *testing.T) {
	r := newCheckoutRouter(order.NewMemRepo(nil), paymentGateway())

	w := doJSON(t, r, http.MethodPost, "/refund", `{"orderId":"1","amount":"₹1,299"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/refund", `{"orderId":"1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400 sin amount", w.Code)
	}
}

func TestInvoiceEndpoint(t *testing.T) {
	r := newCheckoutRouter(order.NewMemRepo(nil), paymentGateway())

	w := doJSON(t, r, http.MethodPost, "/invoice", `{"orderId":"1","customerName":"John Doe","totalAmount":"118.00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var res struct {
		Success bool `json:"success"`
		Invoice struct {
			GSTAmount string `json:"gstAmount"`
			NetAmount string `json:"netAmount"`
		} `json:"invoice"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if !res.Success || res.Invoice.GSTAmount != "21.24" || res.Invoice.NetAmount != "100.00" {
		t.Fatalf("res=%+v", res)
	}

	if w := doJSON(t, r, http.MethodPost, "/invoice", `{"customerName":"X"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400", w.Code)
	}
}

func TestShipmentUpdateEndpoint(t *testing.T) {
	r := newCheckoutRouter(order.NewMemRepo(nil), paymentGateway())

	w := doJSON(t, r, http.MethodPost, "/shipments", `{"orderId":"1","status":"Out for delivery"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/shipments", `{"orderId":"1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, esperaba 400", w.Code)
	}
}
