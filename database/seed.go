package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bazaar-backend/models"
)

func rs(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func rsPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultCatalog returns the demo product set used to bootstrap a fresh store.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{
			Slug:            "wireless-earbuds-pro",
			Name:            "Wireless Earbuds Pro",
			Description:     "High-quality wireless earbuds with noise cancellation.",
			LongDescription: "Experience the ultimate sound quality with our Wireless Earbuds Pro. Featuring active noise cancellation, 24-hour battery life, and a comfortable ergonomic design.",
			Price:           rs(4500),
			OriginalPrice:   rsPtr(6000),
			Images:          datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:        "Electronics",
			SubCategory:     "Audio",
			InStock:         true,
			StockCount:      50,
			Rating:          decimal.RequireFromString("4.5"),
			ReviewCount:     120,
			Features:        datatypes.JSONSlice[string]{"Active Noise Cancellation", "24h Battery", "Water Resistant"},
		},
		{
			Slug:            "smart-watch-series-5",
			Name:            "Smart Watch Series 5",
			Description:     "Track your fitness and stay connected.",
			LongDescription: "The Smart Watch Series 5 helps you stay active, healthy, and connected. Track your workouts, monitor your heart rate, and get notifications on your wrist.",
			Price:           rs(8500),
			OriginalPrice:   rsPtr(10000),
			Images:          datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:        "Electronics",
			SubCategory:     "Wearables",
			InStock:         true,
			StockCount:      30,
			Rating:          decimal.RequireFromString("4.8"),
			ReviewCount:     85,
			Features:        datatypes.JSONSlice[string]{"Heart Rate Monitor", "GPS", "Sleep Tracking"},
		},
		{
			Slug:          "classic-leather-wallet",
			Name:          "Classic Leather Wallet",
			Description:   "Premium genuine leather wallet for men.",
			Price:         rs(1500),
			OriginalPrice: rsPtr(2000),
			Images:        datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:      "Fashion",
			SubCategory:   "Accessories",
			InStock:       true,
			StockCount:    100,
			Rating:        decimal.RequireFromString("4.2"),
			ReviewCount:   45,
			Features:      datatypes.JSONSlice[string]{"Genuine Leather", "RFID Blocking", "Slim Design"},
		},
		{
			Slug:            "pure-khaddar-kurta",
			Name:            "Pure Khaddar Kurta",
			Description:     "Hand-loomed khaddar kurta in classic cut.",
			LongDescription: "Woven on traditional looms, this khaddar kurta keeps you cool in summer and layers well in winter. Pre-washed fabric, no shrinkage.",
			Price:           rs(2800),
			OriginalPrice:   rsPtr(3500),
			Images:          datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:        "Fashion",
			SubCategory:     "Men",
			InStock:         true,
			StockCount:      40,
			Rating:          decimal.RequireFromString("4.4"),
			ReviewCount:     62,
			Features:        datatypes.JSONSlice[string]{"Hand-Loomed Khaddar", "Machine Washable", "Regular Fit"},
		},
		{
			Slug:        "himalayan-pink-salt-lamp",
			Name:        "Himalayan Pink Salt Lamp",
			Description: "Hand-carved salt lamp from the Khewra mines.",
			Price:       rs(1200),
			Images:      datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:    "Home",
			SubCategory: "Decor",
			InStock:     true,
			StockCount:  75,
			Rating:      decimal.RequireFromString("4.6"),
			ReviewCount: 210,
			Features:    datatypes.JSONSlice[string]{"Hand-Carved", "Dimmer Switch", "Bulb Included"},
		},
		{
			Slug:          "traditional-khussa-shoes",
			Name:          "Traditional Khussa Shoes",
			Description:   "Hand-stitched leather khussa with cushioned sole.",
			Price:         rs(1800),
			OriginalPrice: rsPtr(2400),
			Images:        datatypes.JSONSlice[string]{"https://placehold.co/600x400/png"},
			Category:      "Fashion",
			SubCategory:   "Footwear",
			InStock:       true,
			StockCount:    60,
			Rating:        decimal.RequireFromString("4.1"),
			ReviewCount:   38,
			Features:      datatypes.JSONSlice[string]{"Hand-Stitched", "Genuine Leather", "Cushioned Sole"},
		},
	}
}

// SeedCatalog inserts the demo catalog, silently skipping slugs that already
// exist so re-seeding is idempotent. The returned count is the batch size,
// not the number of rows actually inserted.
func SeedCatalog(db *gorm.DB) (int, error) {
	catalog := DefaultCatalog()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&catalog).Error; err != nil {
		return 0, err
	}
	return len(catalog), nil
}
