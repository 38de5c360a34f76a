package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// PublicHandler also exposes routes that require no session.
type PublicHandler interface {
	Handler
	RegisterPublicRoutes(*gin.RouterGroup)
}

type Router struct {
	engine        *gin.Engine
	session       *middleware.SessionMiddleware
	sessionH      PublicHandler
	tokenH        Handler
	appointmentH  Handler
	availabilityH Handler
	walletH       Handler
	adsH          Handler
	clinicH       Handler
	h             *handler.Handler
	metrics       *metrics.Metrics
}

type Config struct {
	Timeout   time.Duration
	RateLimit middleware.RateLimiterConfig
	CORS      middleware.CORSConfig
	Metrics   *metrics.Metrics
}

func NewRouter(
	session *middleware.SessionMiddleware,
	sessionH PublicHandler,
	tokenH Handler,
	appointmentH Handler,
	availabilityH Handler,
	walletH Handler,
	adsH Handler,
	clinicH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:        engine,
		session:       session,
		sessionH:      sessionH,
		tokenH:        tokenH,
		appointmentH:  appointmentH,
		availabilityH: availabilityH,
		walletH:       walletH,
		adsH:          adsH,
		clinicH:       clinicH,
		h:             h,
		metrics:       config.Metrics,
	}

	if config.Timeout == 0 {
		config.Timeout = middleware.DefaultTimeoutConfig().Duration
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.Timeout}),
	)

	engine.Use(middleware.CORS(config.CORS))

	rateLimiter := middleware.NewRateLimiter(config.RateLimit)
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)

	// Public routes
	r.sessionH.RegisterPublicRoutes(api)

	// Session-scoped routes
	protected := api.Group("")
	protected.Use(r.session.Authenticate())

	r.sessionH.RegisterRoutes(protected)
	r.tokenH.RegisterRoutes(protected)
	r.appointmentH.RegisterRoutes(protected)
	r.availabilityH.RegisterRoutes(protected)
	r.walletH.RegisterRoutes(protected)
	r.adsH.RegisterRoutes(protected)
	r.clinicH.RegisterRoutes(protected)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	if r.metrics == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
