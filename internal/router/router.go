package router

import (
	"time"

	"pricewatch/internal/config"
	"pricewatch/internal/handler"
	"pricewatch/internal/middleware"
	"pricewatch/internal/repository"
	"pricewatch/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storage service.EvidenceStorage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, "global", 1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	competitorRepo := repository.NewCompetitorRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)
	clientRepo := repository.NewClientRepository(db)
	skuRepo := repository.NewSKURepository(db)
	evidenceRepo := repository.NewEvidenceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	priceSvc := service.NewPriceService(priceRepo, historyRepo, productRepo, competitorRepo)
	comparisonSvc := service.NewComparisonService(productRepo, competitorRepo, priceRepo, historyRepo)
	exportSvc := service.NewExportService(comparisonSvc)
	clientSvc := service.NewClientService(clientRepo, skuRepo, evidenceRepo, storage)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	competitorsH := handler.NewCompetitorsHandler(comparisonSvc)
	pricesH := handler.NewPricesHandler(priceSvc, comparisonSvc)
	historyH := handler.NewHistoryHandler(comparisonSvc)
	exportH := handler.NewExportHandler(exportSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	evidenceH := handler.NewEvidenceHandler(clientSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
	}

	// Client registration is called by the storefront itself, before any
	// operator logs in, so it stays outside the JWT group.
	r.POST("/v1/clients", clientsH.GetOrCreate)
	r.GET("/v1/clients", clientsH.List)
	r.GET("/v1/clients/:id/skus", clientsH.ListSKUs)
	r.POST("/v1/skus", clientsH.CreateSKU)
	r.DELETE("/v1/skus/:id", clientsH.DeleteSKU)
	r.POST("/v1/clients/:id/evidence/upload", evidenceH.Upload)
	r.GET("/v1/clients/:id/evidence", evidenceH.ListByClient)
	r.POST("/v1/evidence", evidenceH.Create)
	r.DELETE("/v1/evidence/:id", evidenceH.Delete)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		v1.POST("/products", productsH.Create)
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		v1.PUT("/products/:id", productsH.Update)
		v1.DELETE("/products/:id", productsH.Delete)

		v1.GET("/competitors", competitorsH.List)

		v1.POST("/prices", pricesH.Register)
		v1.GET("/prices", pricesH.List)
		v1.DELETE("/prices/:id", pricesH.Delete)
		v1.GET("/prices/comparison", pricesH.Comparison)
		v1.GET("/prices/product/:id", pricesH.ListByProduct)
		v1.GET("/prices/average/:id", pricesH.Average)

		v1.GET("/history", historyH.List)

		export := v1.Group("/export")
		{
			export.GET("/comparison/pdf", exportH.ComparisonPDF)
			export.GET("/comparison/excel", exportH.ComparisonExcel)
			export.GET("/history/pdf", exportH.HistoryPDF)
			export.GET("/history/excel", exportH.HistoryExcel)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
