package fulfillment

import (
	"regexp"
	"testing"
)

func TestAuthorizePayment(t *testing.T) {
	res, err := AuthorizePayment("₹5,197.00", "Razorpay")
	if err != nil || !res.Success {
		t.Fatalf("res=%+v err=%v", res, err)
	}

	if _, err := AuthorizePayment("", "Razorpay"); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
	if _, err := AuthorizePayment("₹100", ""); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
}

func TestRefund(t *testing.T) {
	res, err := Refund("7", "₹1,299")
	if err != nil || !res.Success {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if res.Message != "Refund of ₹1,299 processed for order 7" {
		t.Fatalf("msg=%q", res.Message)
	}
	if _, err := Refund("", "₹1"); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
}

func TestGenerateInvoice_GSTMath(t *testing.T) {
	inv, err := GenerateInvoice("1", "John Doe", "118.00", nil)
	if err != nil {
		t.Fatal(err)
	}
	if inv.GSTAmount != "21.24" {
		t.Fatalf("gst=%q, esperado 21.24", inv.GSTAmount)
	}
	if inv.NetAmount != "100.00" {
		t.Fatalf("net=%q, esperado 100.00", inv.NetAmount)
	}
	if !regexp.MustCompile(`^INV-\d+$`).MatchString(inv.InvoiceID) {
		t.Fatalf("invoiceId=%q", inv.InvoiceID)
	}
}

func TestGenerateInvoice_MissingFields(t *testing.T) {
	if _, err := GenerateInvoice("", "John", "100", nil); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
}

func TestTrackShipment(t *testing.T) {
	info, err := TrackShipment("42")
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^SR\d{9}$`).MatchString(info.TrackingNumber) {
		t.Fatalf("trackingNumber=%q", info.TrackingNumber)
	}
	if info.Status != "In Transit" || len(info.History) != 2 {
		t.Fatalf("info=%+v", info)
	}

	if _, err := TrackShipment(""); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
}

func TestUpdateShipmentStatus_HasNoDurableEffect(t *testing.T) {
	if _, err := UpdateShipmentStatus("42", "Delivered"); err != nil {
		t.Fatal(err)
	}
	// subsequent tracking regenerates fresh data, not the pushed status
	info, err := TrackShipment("42")
	if err != nil {
		t.Fatal(err)
	}
	if info.Status != "In Transit" {
		t.Fatalf("status=%q, el mock es sin estado", info.Status)
	}

	if _, err := UpdateShipmentStatus("42", ""); err != ErrMissingFields {
		t.Fatalf("err=%v", err)
	}
}
