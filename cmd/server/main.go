package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/wn-marie/mood-journal/internal/config"
	"github.com/wn-marie/mood-journal/internal/database"
	"github.com/wn-marie/mood-journal/internal/handlers"
	"github.com/wn-marie/mood-journal/internal/middleware"
	"github.com/wn-marie/mood-journal/internal/routes"
	"github.com/wn-marie/mood-journal/internal/services"
	"github.com/wn-marie/mood-journal/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB (journal entries). The app keeps running without it,
	// but entries are then echoed back instead of saved.
	var entryStore store.EntryStore
	if cfg.MongoURI != "" {
		log.Printf("Connecting to MongoDB...")
		if err := database.Connect(cfg.MongoURI); err != nil {
			log.Printf("⚠️  WARNING: MongoDB connection failed: %v", err)
			log.Println("   Journal entries will not be persisted.")
		} else {
			defer database.Disconnect()
			entryStore = store.NewMongoEntryStore(database.DB)
		}
	} else {
		log.Println("⚠️  WARNING: MONGODB_URI not set. Journal entries will not be persisted.")
	}

	// Connect to PostgreSQL (payments)
	var paymentStore store.PaymentStore
	if cfg.PostgresURI != "" {
		log.Printf("Connecting to PostgreSQL...")
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Printf("⚠️  WARNING: PostgreSQL connection failed: %v", err)
			log.Println("   Payments will not be persisted.")
		} else {
			defer database.DisconnectPostgres()
			paymentStore = store.NewPostgresPaymentStore(database.PostgresDB)
		}
	} else {
		log.Println("⚠️  WARNING: POSTGRES_URI not set. Payments will not be persisted.")
	}

	// Connect to Redis (stats cache + rate limiting)
	var cache *services.CacheService
	redisReady := false
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️  WARNING: Redis connection failed: %v", err)
			log.Println("   Stats caching and rate limiting disabled.")
		} else {
			defer database.DisconnectRedis()
			cache = services.NewCacheService(database.RedisClient)
			redisReady = true
		}
	}

	// Wire the service layer
	classifier := services.NewHuggingFaceClassifier(cfg.HuggingFaceAPIKey, cfg.SentimentModelURLs)
	gateway := services.NewIntaSendGateway(cfg.IntaSendAPIKey, cfg.CheckoutAPIURL, cfg.Host)
	if cfg.IntaSendAPIKey == "" {
		log.Println("⚠️  WARNING: INTASEND_API_KEY not set. Payment checkout runs in demo mode.")
	}

	entryService := services.NewEntryService(entryStore, classifier, cache)
	statsService := services.NewStatsService(entryStore, cache)
	paymentService := services.NewPaymentService(paymentStore, gateway)
	handlers.Init(entryService, statsService, paymentService)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestID)
	if redisReady {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check (no rate limit concerns here, it is cheap)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  POST   /api/entries")
	log.Println("  GET    /api/entries")
	log.Println("  DELETE /api/entries/{id}")
	log.Println("  POST   /api/ai/analyze")
	log.Println("  GET    /api/stats")
	log.Println("  POST   /api/payment/initiate")
	log.Println("  GET    /api/payments")
	log.Println("  GET    /payment/success")
	log.Println("  GET    /payment/cancel")

	log.Printf("🚀 Mood Journal backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
