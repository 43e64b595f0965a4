// Package fulfillment simulates the external collaborators: payment
// gateway, refunds, GST invoicing and shipment tracking. Everything
// here is stateless; no call mutates the order ledger.
package fulfillment

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/printkart/storefront/internal/money"
	"github.com/printkart/storefront/internal/order"
)

var (
	ErrMissingFields = errors.New("missing required fields")
)

type PaymentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthorizePayment stands in for the Razorpay/PayU round trip. It
// declines only when amount or method is missing.
func AuthorizePayment(amount, method string) (PaymentResult, error) {
	if amount == "" || method == "" {
		return PaymentResult{Success: false, Message: "Payment failed: Missing amount or payment method"}, ErrMissingFields
	}
	return PaymentResult{Success: true, Message: fmt.Sprintf("%s payment successful for %s", method, amount)}, nil
}

type RefundResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Refund echoes success. It deliberately does not touch order status;
// any follow-up (e.g. cancelling the order) is the admin's call.
func Refund(orderID, amount string) (RefundResult, error) {
	if orderID == "" || amount == "" {
		return RefundResult{Success: false, Message: "Missing orderId or amount"}, ErrMissingFields
	}
	return RefundResult{Success: true, Message: fmt.Sprintf("Refund of %s processed for order %s", amount, orderID)}, nil
}

type Invoice struct {
	InvoiceID    string       `json:"invoiceId"`
	OrderID      string       `json:"orderId"`
	CustomerName string       `json:"customerName"`
	TotalAmount  string       `json:"totalAmount"`
	GSTAmount    string       `json:"gstAmount"`
	NetAmount    string       `json:"netAmount"`
	Items        []order.Item `json:"items,omitempty"`
	Date         string       `json:"date"`
}

var gstRate = decimal.RequireFromString("0.18")

// GenerateInvoice computes the fixed 18% GST breakdown:
// gst = total × 0.18, net = total / 1.18, both two-decimal strings.
// The invoice id derives from the current time and nothing is stored.
func GenerateInvoice(orderID, customerName, totalAmount string, items []order.Item) (Invoice, error) {
	if orderID == "" || totalAmount == "" {
		return Invoice{}, ErrMissingFields
	}
	total, err := money.Parse(totalAmount)
	if err != nil {
		return Invoice{}, err
	}
	now := time.Now()
	return Invoice{
		InvoiceID:    fmt.Sprintf("INV-%d", now.UnixMilli()),
		OrderID:      orderID,
		CustomerName: customerName,
		TotalAmount:  totalAmount,
		GSTAmount:    total.Mul(gstRate).StringFixed(2),
		NetAmount:    total.Div(gstRate.Add(decimal.NewFromInt(1))).StringFixed(2),
		Items:        items,
		Date:         now.UTC().Format("2006-01-02"),
	}, nil
}

type TrackingEvent struct {
	Timestamp   string `json:"timestamp"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type TrackingInfo struct {
	OrderID           string          `json:"orderId"`
	TrackingNumber    string          `json:"trackingNumber"`
	Status            string          `json:"status"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	History           []TrackingEvent `json:"history"`
}

// TrackShipment regenerates fresh simulated data on every call: a
// random SR tracking number, a fixed status and a two-event history.
// Nothing is kept between calls, so UpdateShipmentStatus has no effect
// on what this returns.
func TrackShipment(orderID string) (TrackingInfo, error) {
	if orderID == "" {
		return TrackingInfo{}, ErrMissingFields
	}
	return TrackingInfo{
		OrderID:           orderID,
		TrackingNumber:    fmt.Sprintf("SR%09d", rand.Intn(1_000_000_000)),
		Status:            "In Transit",
		EstimatedDelivery: "2025-08-10",
		History: []TrackingEvent{
			{Timestamp: "2025-08-04T10:00:00Z", Location: "Warehouse", Description: "Order picked up"},
			{Timestamp: "2025-08-04T14:30:00Z", Location: "Sorting Hub", Description: "Departed sorting hub"},
		},
	}, nil
}

type ShipmentUpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdateShipmentStatus accepts any non-empty pair and echoes success.
// No tracking state is mutated.
func UpdateShipmentStatus(orderID, status string) (ShipmentUpdateResult, error) {
	if orderID == "" || status == "" {
		return ShipmentUpdateResult{Success: false, Message: "Missing orderId or status"}, ErrMissingFields
	}
	return ShipmentUpdateResult{Success: true, Message: fmt.Sprintf("Shipment status updated for order %s to %s", orderID, status)}, nil
}
