package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"bazaar-backend/database"
	"bazaar-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	// Limit to 1 open connection to prevent SQLite concurrent access issues
	// with in-memory databases, so every query sees the same tables.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB returns a clean database for each test by deleting all rows.
func freshDB() *gorm.DB {
	testDB.Exec("DELETE FROM cart_items")
	testDB.Exec("DELETE FROM products")
	return testDB
}

// newSessionID generates a client-style opaque session token.
func newSessionID() string {
	return uuid.New().String()
}

// seedProduct creates a test product.
func seedProduct(db *gorm.DB, slug, name, category string, price int64, stockCount int) models.Product {
	prod := models.Product{
		Slug:        slug,
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(price),
		Images:      datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
		Category:    category,
		InStock:     true,
		StockCount:  stockCount,
		Rating:      decimal.RequireFromString("4.5"),
		ReviewCount: 10,
	}
	db.Create(&prod)
	return prod
}

// seedOutOfStockProduct flips in_stock after create: GORM skips zero-value
// bools on insert, so the column default (true) would win otherwise.
func seedOutOfStockProduct(db *gorm.DB, slug, name, category string, price int64) models.Product {
	prod := seedProduct(db, slug, name, category, price, 0)
	db.Model(&prod).Update("in_stock", false)
	prod.InStock = false
	return prod
}

// seedProductAt creates a product with an explicit creation time, for
// ordering assertions.
func seedProductAt(db *gorm.DB, slug, name, category string, price int64, createdAt time.Time) models.Product {
	prod := models.Product{
		Slug:        slug,
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromInt(price),
		Category:    category,
		InStock:     true,
		StockCount:  100,
		CreatedAt:   createdAt,
	}
	db.Create(&prod)
	return prod
}

// seedCartItem creates a cart row directly.
func seedCartItem(db *gorm.DB, sessionID string, productID uint, quantity int) models.CartItem {
	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	db.Create(&item)
	return item
}

// ==================== Router Setup Helpers ====================

// setupProductRouter sets up routes for product handler tests.
func setupProductRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	productHandler := &ProductHandler{DB: db}

	api := r.Group("/api")
	api.GET("/products", productHandler.GetProducts)
	api.GET("/products/:slug", productHandler.GetProductBySlug)
	api.POST("/products/seed", productHandler.SeedProducts)

	return r
}

// setupCartRouter sets up routes for cart handler tests.
func setupCartRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cartHandler := &CartHandler{DB: db}

	api := r.Group("/api")
	api.GET("/cart/:sessionId", cartHandler.GetCart)
	api.GET("/cart/:sessionId/summary", cartHandler.GetCartSummary)
	api.POST("/cart", cartHandler.AddToCart)
	api.PATCH("/cart/:id", cartHandler.UpdateCartItem)
	api.DELETE("/cart/:id", cartHandler.RemoveFromCart)
	api.DELETE("/cart/session/:sessionId", cartHandler.ClearCart)

	return r
}

// ==================== Request Helpers ====================

// jsonRequest creates an HTTP request with JSON body.
func jsonRequest(method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ==================== Response Helpers ====================

// parseResponse reads the response body into a map.
func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// parseResponseArray reads the response body into a slice of maps.
func parseResponseArray(w *httptest.ResponseRecorder) []interface{} {
	var result []interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
