package models

import "time"

// CartItem is one product line in an anonymous session's cart. The composite
// unique index is what lets add-to-cart run as a single insert-or-increment
// upsert instead of a racy find-then-save.
//
// Rows are hard-deleted (remove/clear); a soft-deleted row would keep blocking
// the unique index and break merge-add. The Product association carries no FK
// constraint: a cart row whose product was deleted is returned with a null
// product rather than failing.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"uniqueIndex:idx_cart_session_product;not null" json:"sessionId"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_session_product;not null" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
