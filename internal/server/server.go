package server

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/scootsmagoo/filtersfast-next-sub008/internal/client/taxjar"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/config"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/constants"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/db"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/handlers"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/logger"
	"github.com/scootsmagoo/filtersfast-next-sub008/internal/services"
)

// Handler definitions
var (
	pricingHandler *handlers.PricingHandler
	healthHandler  *handlers.HealthHandler

	// Database
	dbPool    *pgxpool.Pool
	dbQueries *db.Queries
)

// InitializeHandlers wires the store, services, and handlers from config.
func InitializeHandlers(cfg *config.Config) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	dbPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(dbPool)

	taxClient := taxjar.NewClient(cfg.TaxJarAPIKey, taxjar.WithBaseURL(cfg.TaxJarBaseURL))

	catalog := services.NewDiscountCatalog(cfg.StoreTimezone)
	verification := services.NewVerificationDiscountResolver(cfg.StoreTimezone)
	taxCalculator := services.NewTaxCalculator(taxClient, services.DefaultTaxFallbackPolicy(), cfg.TaxCallTimeout)
	giftCards := services.NewGiftCardLedger()
	currency := services.NewCurrencyService()

	engine := services.NewPricingEngine(dbPool, dbQueries, catalog, verification, taxCalculator, giftCards, currency, cfg.StoreTxTimeout)

	pricingHandler = handlers.NewPricingHandler(engine)
	healthHandler = handlers.NewHealthHandler()
}

// NewRouter builds the gin router with CORS and the API routes.
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		pricing := v1.Group("/pricing")
		{
			pricing.POST("/preview", pricingHandler.PreviewPricing)
			pricing.POST("/finalize", pricingHandler.FinalizePricing)
		}
	}

	return router
}

// Shutdown releases the connection pool.
func Shutdown() {
	if dbPool != nil {
		dbPool.Close()
	}
}

func allowedOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	return strings.Split(raw, ",")
}

// requestLogger logs each request with latency and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// HealthCheck pings the pool so load balancers can verify readiness.
func HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return dbPool.Ping(ctx)
}
