package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printkart/storefront/internal/cart"
	"github.com/printkart/storefront/internal/checkout"
	"github.com/printkart/storefront/internal/fulfillment"
	"github.com/printkart/storefront/internal/order"
)

// checkoutRequest carries the client-held cart plus the shipping form.
// swagger:model CheckoutRequest
type checkoutRequest struct {
	Items []cart.Line `json:"items"`
	order.Customer
	PaymentMethod string `json:"paymentMethod" example:"Razorpay"`
}

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		ct, err := cart.FromLines(req.Items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := svc.Checkout(c.Request.Context(), ct, req.Customer, req.PaymentMethod)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			case errors.Is(err, checkout.ErrPaymentFailed):
				// user-facing decline, not a system fault
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func trackShipmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := fulfillment.TrackShipment(c.Query("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

func refundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID string `json:"orderId"`
			Amount  string `json:"amount"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		res, err := fulfillment.Refund(req.OrderID, req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func invoiceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID      string       `json:"orderId"`
			CustomerName string       `json:"customerName"`
			TotalAmount  string       `json:"totalAmount"`
			Items        []order.Item `json:"items"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		inv, err := fulfillment.GenerateInvoice(req.OrderID, req.CustomerName, req.TotalAmount, req.Items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId and totalAmount are required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "GST invoice generated", "invoice": inv})
	}
}

func updateShipmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		res, err := fulfillment.UpdateShipmentStatus(req.OrderID, req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
