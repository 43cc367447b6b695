package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/citizenhub/backend/internal/api/handlers"
	"github.com/citizenhub/backend/internal/api/middleware"
	"github.com/citizenhub/backend/internal/db"
	"github.com/citizenhub/backend/internal/services"
	"github.com/citizenhub/backend/pkg/metrics"
)

// Router owns the gin engine, the middleware chain and every handler.
type Router struct {
	engine             *gin.Engine
	logger             *zap.Logger
	metrics            *metrics.Collector
	healthHandler      *handlers.HealthHandler
	authHandler        *handlers.AuthHandler
	applicationHandler *handlers.ApplicationHandler
	paymentHandler     *handlers.PaymentHandler
	searchHandler      *handlers.SearchHandler
	guideHandler       *handlers.GuideHandler
}

func NewRouter(
	logger *zap.Logger,
	collector *metrics.Collector,
	store db.Store,
	authService *services.AuthService,
	applicationService *services.ApplicationService,
	paymentService *services.PaymentService,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	reqMiddleware := middleware.NewRequestMiddleware(logger)
	logMiddleware := middleware.NewLoggingMiddleware(logger, collector)

	engine.Use(reqMiddleware.ProcessRequest())
	engine.Use(reqMiddleware.RecoverPanic())
	engine.Use(logMiddleware.LogRequest())
	engine.Use(middleware.CORS())

	return &Router{
		engine:             engine,
		logger:             logger,
		metrics:            collector,
		healthHandler:      handlers.NewHealthHandler(store),
		authHandler:        handlers.NewAuthHandler(authService, logger),
		applicationHandler: handlers.NewApplicationHandler(applicationService, logger),
		paymentHandler:     handlers.NewPaymentHandler(paymentService, logger),
		searchHandler:      handlers.NewSearchHandler(),
		guideHandler:       handlers.NewGuideHandler(),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/", r.healthHandler.Root)
	r.engine.GET("/test", r.healthHandler.TestDatabase)

	r.engine.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"counters":  r.metrics.Counters(),
			"latencies": r.metrics.Latencies(),
		})
	})

	r.engine.POST("/auth/login", r.authHandler.Login)

	r.engine.POST("/applications", r.applicationHandler.CreateApplication)
	r.engine.GET("/applications", r.applicationHandler.ListApplications)

	r.engine.POST("/payments/init", r.paymentHandler.InitPayment)

	r.engine.GET("/search", r.searchHandler.Search)
	r.engine.GET("/guides/:key", r.guideHandler.GetGuide)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	r.logger.Info("Starting HTTP server", zap.String("address", addr))
	return r.engine.Run(addr)
}
