package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/config"
	"github.com/kral14/mobilsayt/internal/handler"
	"github.com/kral14/mobilsayt/internal/middleware"
	"github.com/kral14/mobilsayt/internal/repository"
	"github.com/kral14/mobilsayt/internal/service"
	"github.com/kral14/mobilsayt/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	orderRepo := repository.NewOrderRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	productRepo := repository.NewProductRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	logRepo := repository.NewLogRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours, cfg.JWTRefreshHours)
	orderSvc := service.NewOrderService(orderRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo)
	productSvc := service.NewProductService(productRepo)
	warehouseSvc := service.NewWarehouseService(warehouseRepo, dispatcher, cfg.AlertEmailTo)
	discountSvc := service.NewDiscountService(discountRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	productsH := handler.NewProductsHandler(productSvc)
	warehousesH := handler.NewWarehousesHandler(warehouseSvc)
	categoriesH := handler.NewCategoriesHandler(categoryRepo)
	customersH := handler.NewCustomersHandler(customerRepo)
	notificationsH := handler.NewNotificationsHandler(notificationRepo)
	logsH := handler.NewLogsHandler(logRepo)
	discountsH := handler.NewDiscountsHandler(discountSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Public API surface: health, auth, schema bootstrap.
	public := r.Group("/api")
	{
		public.GET("/health", handler.Health(db, rdb))
		public.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
		public.POST("/auth/refresh", authH.Refresh)
		public.GET("/setup/init-discounts", handler.SetupInitDiscounts(db))
	}

	api := r.Group("/api", middleware.JWTAuth(authSvc))
	{
		api.GET("/products", productsH.List)
		api.GET("/products/export", productsH.Export)
		api.GET("/products/:id", productsH.Get)
		api.GET("/products/:id/discounts", productsH.Discounts)

		api.GET("/customers", customersH.List)
		api.POST("/customers", customersH.Create)
		api.DELETE("/customers/:id", middleware.RequireRole("admin"), customersH.Delete)

		api.GET("/warehouses", warehousesH.List)
		api.PUT("/warehouses/:id", warehousesH.Update)

		api.GET("/categories", categoriesH.List)

		api.GET("/orders", ordersH.List)
		api.POST("/orders", ordersH.Create)
		api.GET("/orders/:id", ordersH.Get)
		api.PUT("/orders/:id", ordersH.Update)
		api.PUT("/orders/:id/status", ordersH.UpdateStatus)
		api.DELETE("/orders/:id", middleware.RequireRole("admin"), ordersH.Delete)

		api.GET("/purchase-invoices", purchasesH.List)
		api.POST("/purchase-invoices", purchasesH.Create)
		api.GET("/purchase-invoices/:id", purchasesH.Get)
		api.DELETE("/purchase-invoices/:id", middleware.RequireRole("admin"), purchasesH.Delete)

		api.GET("/notifications", notificationsH.List)
		api.POST("/notifications", notificationsH.Create)
		api.PATCH("/notifications/:id", notificationsH.MarkRead)

		api.POST("/logs", logsH.CreateBatch)

		api.GET("/documents/discounts", discountsH.List)
		api.POST("/documents/discounts", discountsH.Create)
		api.GET("/documents/discounts/:id", discountsH.Get)
		api.PUT("/documents/discounts/:id", discountsH.Update)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
