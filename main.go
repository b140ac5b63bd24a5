// @title VibeTumbler Store API
// @version 1.0
// @description VibeTumbler storefront backend: catalog, cart, checkout and order history.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/checkout"
	"github.com/SaakshamKindra/tumbler-vibe-shop/config"
	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/cart_controller"
	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/checkout_controller"
	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/order_controller"
	"github.com/SaakshamKindra/tumbler-vibe-shop/controllers/storefront/product_controller"
	_ "github.com/SaakshamKindra/tumbler-vibe-shop/docs"
	"github.com/SaakshamKindra/tumbler-vibe-shop/middleware"
	"github.com/SaakshamKindra/tumbler-vibe-shop/routes/store_routes"
	"github.com/SaakshamKindra/tumbler-vibe-shop/services"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB. Failure is survivable: the catalog serves its bundled
	// static snapshot instead.
	if err := config.InitDB(); err != nil {
		log.Printf("⚠️ Store database unavailable, catalog will use static snapshot: %v", err)
	}

	// Redis connection. Failure is survivable: carts and order history fall
	// back to an in-process store for the life of the process.
	if err := config.ConnectRedis(); err != nil {
		log.Printf("⚠️ Redis unavailable, carts will not survive a restart: %v", err)
	}

	// ✅ Initialize session token service for guest carts
	sessionSecret := os.Getenv("SESSION_JWT_SECRET")
	if sessionSecret == "" {
		if os.Getenv("APP_ENV") == "production" {
			log.Fatal("❌ SESSION_JWT_SECRET environment variable not set")
		}
		sessionSecret = "dev-secret-key-change-in-production"
		log.Println("⚠️ SESSION_JWT_SECRET not set, using development secret")
	}
	if err := services.InitSessionService(sessionSecret); err != nil {
		log.Fatalf("Failed to initialize session service: %v", err)
	}
	log.Println("✅ Session service initialized")

	// Catalog: database-backed when connected, static snapshot otherwise
	var catalogStore *catalog.Store
	if config.StoreGorm != nil {
		catalogStore = catalog.NewStore(context.Background(), catalog.NewGormSource(config.StoreGorm))
	} else {
		catalogStore = catalog.NewStaticStore()
	}

	// Session blobs: Redis when connected, in-process otherwise
	var blobs storage.BlobStore
	if config.RedisClient != nil {
		blobs = storage.NewRedisBlobStore(config.RedisClient)
	} else {
		blobs = storage.NewMemoryBlobStore()
		log.Println("⚠️ Using in-memory session storage")
	}

	pricingCfg := config.LoadPricingConfig()
	cartManager := cart.NewManager(blobs, catalogStore)
	orderHistory := checkout.NewHistory(blobs)
	gateway := services.NewSimulatedGateway(config.PaymentLatency(), config.PaymentAlwaysDecline())
	checkoutFlow := checkout.NewFlow(gateway, orderHistory, pricingCfg, config.PaymentTimeout())

	// ✅ Wire controllers
	product_controller.Init(catalogStore)
	cart_controller.Init(cartManager)
	checkout_controller.Init(checkoutFlow, cartManager, pricingCfg, services.NewResendClient())
	order_controller.Init(orderHistory)

	// ✅ Configure CORS for the storefront, exposing download headers for
	// invoice PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	store := api.Group("/store")
	store.Use(middleware.GuestSession())
	store.Use(middleware.RateLimiter(300, time.Minute))
	store_routes.SetupProductRoutes(store)
	store_routes.SetupCartRoutes(store)
	store_routes.SetupCheckoutRoutes(store)
	store_routes.SetupOrderRoutes(store)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
