package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bazaar-backend/dtos"
	"bazaar-backend/models"
	"bazaar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartHandler struct {
	DB *gorm.DB
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	items := []models.CartItem{}
	if err := h.DB.Preload("Product").Where("session_id = ?", sessionID).Order("id ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dtos.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var product models.Product
	if err := h.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}
	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product is out of stock"})
		return
	}
	if quantity > product.StockCount {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Only %d units available in stock.", product.StockCount)})
		return
	}

	// Single atomic insert-or-increment keyed on (session_id, product_id):
	// two concurrent adds for the same product merge into one row instead of
	// racing a find-then-save.
	item := models.CartItem{
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item to cart"})
		return
	}

	if err := h.DB.Where("session_id = ? AND product_id = ?", req.SessionID, req.ProductID).First(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart item"})
		return
	}

	// The merged quantity never exceeds the stock ceiling.
	if item.Quantity > product.StockCount {
		item.Quantity = product.StockCount
		if err := h.DB.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart item"})
			return
		}
	}

	if err := h.DB.Preload("Product").First(&item, item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	var req dtos.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.SanitizeValidationError(err)})
		return
	}

	var item models.CartItem
	if err := h.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart item"})
		return
	}

	// Stock ceiling is enforced here as well as in the client. A deleted
	// product leaves no ceiling to check.
	var product models.Product
	if err := h.DB.First(&product, item.ProductID).Error; err == nil {
		if req.Quantity > product.StockCount {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Only %d units available in stock.", product.StockCount)})
			return
		}
	}

	if err := h.DB.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update cart item"})
		return
	}

	if err := h.DB.Preload("Product").First(&item, item.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveFromCart deletes a single cart row. Deleting an id that no longer
// exists still succeeds.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item id"})
		return
	}

	if err := h.DB.Delete(&models.CartItem{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove item from cart"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearCart empties a session's cart. Idempotent.
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	if err := h.DB.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCartSummary derives the order totals for a session: subtotal, flat
// shipping below the free-delivery threshold, and the courier window. Items
// whose product has been deleted contribute nothing to the subtotal.
func (h *CartHandler) GetCartSummary(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var items []models.CartItem
	if err := h.DB.Preload("Product").Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}

	subtotal := decimal.Zero
	itemCount := 0
	for _, item := range items {
		itemCount += item.Quantity
		if item.Product == nil {
			continue
		}
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := utils.ShippingFee(subtotal)
	from, to := utils.DeliveryEstimate(time.Now())

	c.JSON(http.StatusOK, dtos.CartSummaryResponse{
		ItemCount:             itemCount,
		Subtotal:              subtotal,
		Shipping:              shipping,
		Total:                 subtotal.Add(shipping),
		FreeShippingRemaining: utils.FreeShippingRemaining(subtotal),
		DeliveryFrom:          from,
		DeliveryTo:            to,
	})
}
