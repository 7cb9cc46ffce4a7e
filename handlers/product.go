package handlers

import (
	"errors"
	"net/http"

	"bazaar-backend/database"
	"bazaar-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

// GetProducts lists the catalog, newest first. `category` filters on exact
// equality; `search` is a case-insensitive substring match over name and
// description.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := []models.Product{}
	query := h.DB.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", term, term)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	var product models.Product

	if err := h.DB.Where("slug = ?", c.Param("slug")).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// SeedProducts loads the demo catalog. Safe to call repeatedly; the reported
// count is always the batch size.
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	count, err := database.SeedCatalog(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to seed products"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Database seeded successfully", "count": count})
}
