package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flat-rate delivery pricing. Orders at or above the threshold ship free;
// everything below pays the flat charge. Amounts are in rupees.
var (
	ShippingThreshold = decimal.NewFromInt(2000)
	ShippingCharge    = decimal.NewFromInt(200)
)

// Standard courier window in days.
const (
	DeliveryMinDays = 3
	DeliveryMaxDays = 5
)

func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(ShippingThreshold) {
		return decimal.Zero
	}
	return ShippingCharge
}

// FreeShippingRemaining returns how much more must be added to the cart to
// qualify for free delivery, or zero once qualified.
func FreeShippingRemaining(subtotal decimal.Decimal) decimal.Decimal {
	remaining := ShippingThreshold.Sub(subtotal)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func DeliveryEstimate(now time.Time) (from, to time.Time) {
	return now.AddDate(0, 0, DeliveryMinDays), now.AddDate(0, 0, DeliveryMaxDays)
}
