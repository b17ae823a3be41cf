package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/drip-billing/internal/config"
	"github.com/sangkips/drip-billing/internal/presentation/http/handler"
	"github.com/sangkips/drip-billing/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Menu    *handler.MenuHandler
	Till    *handler.TillHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	health := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	}
	router.GET("/health", health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/health", health)

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: perSecond(deps.Cfg.RateLimit),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
	}
	v1.Use(rateLimiter.Middleware())

	v1.GET("/menu", h.Menu.List)
	v1.GET("/merchant", h.Menu.Merchant)

	registerTillRoutes(v1, h)

	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
	}

	return router
}

func registerTillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	till := v1.Group("/till")
	{
		till.DELETE("", h.Till.Reset)
		till.PUT("/selection", h.Till.SetSelection)
		till.GET("/selection", h.Till.GetSelection)

		till.POST("/bill", h.Till.Generate)
		till.GET("/bill", h.Till.GetBill)
		till.GET("/bill/text", h.Till.GetText)
		till.POST("/bill/text", h.Till.SaveText)
		till.GET("/bill/pdf", h.Till.GetPDF)
		till.POST("/bill/pdf", h.Till.SavePDF)
		till.GET("/bill/payment", h.Till.GetPayment)
		till.GET("/bill/qr", h.Till.GetQR)
		till.POST("/bill/qr", h.Till.SaveQR)
		till.POST("/bill/print", h.Printer.PrintBill)
	}
}

func perSecond(cfg config.RateLimitConfig) float64 {
	if cfg.Duration <= 0 {
		return float64(cfg.Requests)
	}
	return float64(cfg.Requests) / float64(cfg.Duration)
}
