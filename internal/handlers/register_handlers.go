package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/protecfeu/erp_backend/cmd/docs"
	"github.com/protecfeu/erp_backend/internal/core/domain"
	portssvc "github.com/protecfeu/erp_backend/internal/core/ports/services"
	"github.com/protecfeu/erp_backend/internal/middleware"
	"github.com/protecfeu/erp_backend/internal/platform/config"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	r.Use(corsMiddleware(cfg))

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RateLimit(newRateLimiter(cfg.RateLimit)),
	)

	registerAccountRoutes(v1, services.Account)
	registerLedgerRoutes(v1, services.Ledger, services.Reporting)
	registerProjectRoutes(v1, services.Project, services.CashBox)
	registerInventoryRoutes(v1, services.Inventory)
	registerDeliveryRoutes(v1, services.Delivery)
	registerReferenceRoutes(v1, services.Reference)
}

// registerCustomValidators adds the account_type binding rule to gin's
// validator engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
			return domain.ValidAccountType(domain.AccountType(fl.Field().String()))
		})
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(corsConfig)
}

// newRateLimiter builds an in-memory IP rate limiter from a rate string
// like "300-M". A malformed rate falls back to 300 requests per minute.
func newRateLimiter(rate string) *limiter.Limiter {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		parsed = limiter.Rate{Period: time.Minute, Limit: 300}
	}
	return limiter.New(memory.NewStore(), parsed)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
