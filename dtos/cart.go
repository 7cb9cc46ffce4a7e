package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest is the POST /api/cart payload. Quantity defaults to 1
// when omitted; an explicit zero or negative value is rejected by the binding.
type AddCartItemRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest is the PATCH /api/cart/:id payload.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartSummaryResponse carries the derived order totals for a session's cart.
// Clients may recompute these values; the server is the reference.
type CartSummaryResponse struct {
	ItemCount             int             `json:"itemCount"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Shipping              decimal.Decimal `json:"shipping"`
	Total                 decimal.Decimal `json:"total"`
	FreeShippingRemaining decimal.Decimal `json:"freeShippingRemaining"`
	DeliveryFrom          time.Time       `json:"deliveryFrom"`
	DeliveryTo            time.Time       `json:"deliveryTo"`
}
