package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a single catalog entry. Money and rating fields are exact
// decimals and serialize as decimal strings, so clients never see float
// rounding on prices. JSON field names are camelCase, matching what the
// storefront client consumes.
type Product struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	Slug            string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Name            string                      `gorm:"not null" json:"name"`
	Description     string                      `gorm:"not null" json:"description"`
	LongDescription string                      `json:"longDescription"`
	Price           decimal.Decimal             `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice   *decimal.Decimal            `gorm:"type:decimal(12,2)" json:"originalPrice"`
	Images          datatypes.JSONSlice[string] `json:"images"`
	Category        string                      `gorm:"index;not null" json:"category"`
	SubCategory     string                      `json:"subCategory"`
	InStock         bool                        `gorm:"default:true" json:"inStock"`
	StockCount      int                         `gorm:"default:0" json:"stockCount"`
	Rating          decimal.Decimal             `gorm:"type:decimal(3,1);default:0" json:"rating"`
	ReviewCount     int                         `gorm:"default:0" json:"reviewCount"`
	Features        datatypes.JSONSlice[string] `json:"features"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

// MarshalJSON appends the derived discountPercent field to the stored columns.
func (p Product) MarshalJSON() ([]byte, error) {
	type productAlias Product
	return json.Marshal(struct {
		productAlias
		DiscountPercent int `json:"discountPercent"`
	}{productAlias(p), p.DiscountPercent()})
}

// DiscountPercent returns the rounded percentage saved against the original
// price, or 0 when the product has no discount.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || p.OriginalPrice.IsZero() {
		return 0
	}
	if !p.OriginalPrice.GreaterThan(p.Price) {
		return 0
	}
	pct := p.OriginalPrice.Sub(p.Price).
		Div(*p.OriginalPrice).
		Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}
