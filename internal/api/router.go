package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/export"
)

// RouterConfig carries the dependencies and settings for the HTTP surface
type RouterConfig struct {
	Invoices       port.InvoiceRepository
	Users          port.UserRepository
	Storage        port.FileStorage
	Tokens         *auth.TokenManager
	StorageBaseDir string
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// NewRouter assembles the gin engine with all routes and middleware
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(cfg.Logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	authHandler := NewAuthHandler(cfg.Users, cfg.Tokens, cfg.Logger)
	invoiceHandler := NewInvoiceHandler(cfg.Invoices, cfg.Logger)
	dashboardHandler := NewDashboardHandler(cfg.Invoices, cfg.Logger)
	fileHandler := NewFileHandler(cfg.Storage, cfg.MaxUploadBytes, cfg.Logger)
	exportHandler := NewExportHandler(cfg.Invoices, export.NewExcelWriter(cfg.Logger), cfg.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoice-tracker",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// Uploaded documents are served statically under their public base
	router.Static("/files", cfg.StorageBaseDir)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("")
		authed.Use(auth.Middleware(cfg.Tokens))
		{
			authed.GET("/auth/me", authHandler.Me)
			authed.POST("/auth/logout", authHandler.Logout)

			authed.GET("/invoices", invoiceHandler.List)
			authed.POST("/invoices", invoiceHandler.Create)
			authed.GET("/invoices/export", exportHandler.Export)
			authed.GET("/invoices/:id", invoiceHandler.Get)
			authed.PUT("/invoices/:id", invoiceHandler.Update)
			authed.DELETE("/invoices/:id", invoiceHandler.Delete)

			authed.GET("/dashboard/stats", dashboardHandler.Stats)

			authed.POST("/files", fileHandler.Upload)
			authed.GET("/files/:name", fileHandler.Download)
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
