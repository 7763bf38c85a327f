package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	"github.com/naai-app/naai-api/internal/auth"
	"github.com/naai-app/naai-api/internal/config"
	"github.com/naai-app/naai-api/internal/handlers"
	infraRepo "github.com/naai-app/naai-api/internal/infra/repository"
	"github.com/naai-app/naai-api/internal/middleware"
	"github.com/naai-app/naai-api/internal/storage"
	ucAccount "github.com/naai-app/naai-api/internal/usecase/account"
	ucShop "github.com/naai-app/naai-api/internal/usecase/shop"
)

type Deps struct {
	Tokens   *auth.TokenService
	Redis    *redis.Client
	Uploader *storage.Uploader
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	shopRepo := infraRepo.NewShopGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAccount.NewSignup(accountRepo, auditDispatcher)
	loginUC := ucAccount.NewLogin(accountRepo, auditDispatcher)
	createShopUC := ucShop.NewCreateShop(shopRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC, accountRepo, deps.Tokens, deps.Log)
	shopHandler := handlers.NewShopHandler(shopRepo, createShopUC, auditDispatcher, deps.Log)
	serviceHandler := handlers.NewServiceHandler(shopRepo, auditDispatcher, deps.Log)
	photoHandler := handlers.NewPhotoHandler(shopRepo, deps.Uploader, auditDispatcher, deps.Log)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", handlers.Welcome)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		if deps.Redis != nil && cfg.AuthRateLimit > 0 {
			authAPI.Use(middleware.RateLimitPerIP(deps.Redis, cfg.AuthRateLimit))
		}
		{
			authAPI.POST("/signup", authHandler.Signup)
			authAPI.POST("/login", authHandler.Login)
			authAPI.GET("/me", middleware.AuthMiddleware(deps.Tokens), authHandler.Me)
		}

		// ------------------------------
		// SHOPS (PUBLIC)
		// ------------------------------
		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:id", shopHandler.Get)

		// ------------------------------
		// SHOPS (AUTHENTICATED)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Tokens))
		{
			secured.POST("/shops", shopHandler.Create)
			secured.PUT("/shops/:id", shopHandler.Update)
			secured.POST("/shops/:id/services", serviceHandler.Add)
			secured.POST("/shops/:id/photo", photoHandler.Upload)

			secured.GET("/barber/shop", shopHandler.MyShop)
		}
	}
}
