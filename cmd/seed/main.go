package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/config"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the products table from the bundled catalog snapshot
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VIBETUMBLER STORE - Product Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if err := config.InitDB(); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Products table migrated")

	products := catalog.StaticProducts()

	var existing int64
	if err := config.StoreGorm.Model(&models.Product{}).Count(&existing).Error; err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	if existing > 0 && os.Getenv("SEED_FORCE") != "true" {
		fmt.Printf("❌ Products table already has %d rows; set SEED_FORCE=true to replace them\n", existing)
		os.Exit(1)
	}
	if existing > 0 {
		if err := config.StoreGorm.Exec("DELETE FROM products").Error; err != nil {
			log.Fatalf("❌ Failed to clear products table: %v", err)
		}
		log.Printf("✓ Cleared %d existing rows", existing)
	}

	if err := config.StoreGorm.Create(&products).Error; err != nil {
		log.Fatalf("❌ Failed to insert products: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	for _, p := range products {
		fmt.Printf("%-4d %-28s Rs. %-10.2f inventory %d\n", p.ID, p.Name, p.Price, p.Inventory)
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products")
}
