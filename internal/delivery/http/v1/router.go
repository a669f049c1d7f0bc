package v1

import (
	"net/http"
	"time"

	"go-investment-backend/config"
	"go-investment-backend/internal/delivery/http/middleware"
	"go-investment-backend/internal/delivery/http/response"
	"go-investment-backend/internal/domain"
	"go-investment-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC domain.ContentUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	contact := v1.Group("")
	contact.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(
		deps.Config.RateLimitContactThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	NewContactHandler(contact, deps.ContactUC, deps.Config)

	NewContentHandler(v1, deps.ContentUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
