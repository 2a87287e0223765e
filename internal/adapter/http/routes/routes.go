package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/model/response"
)

type Handlers struct {
	Auth *handler.AuthHandler
	Todo *handler.TodoHandler

	// Identity guards the /api/todos group.
	Identity gin.HandlerFunc
}

type Options struct {
	ServiceName   string
	Logger        zerolog.Logger
	Metrics       *telemetry.AppMetrics
	Registry      *prometheus.Registry
	RateLimiter   *middleware.RateLimiter
	HTTPSEnforcer *middleware.HTTPSEnforcer
}

func SetupRouter(handlers Handlers, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(recoveryHandler))

	if opts.HTTPSEnforcer != nil {
		router.Use(opts.HTTPSEnforcer.Middleware())
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(opts.Logger))

	if opts.ServiceName != "" {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}

	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}

	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Message{Message: "Todo API is running"})
	})

	if opts.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	registerRoutes(router, handlers)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error{
			Message: "Not Found - " + c.Request.URL.Path,
		})
	})

	return router
}

// SetupRouterForTests wires the routes without telemetry or rate limiting.
func SetupRouterForTests(handlers Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())

	registerRoutes(router, handlers)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error{
			Message: "Not Found - " + c.Request.URL.Path,
		})
	})

	return router
}

func registerRoutes(router *gin.Engine, handlers Handlers) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	todos := router.Group("/api/todos")
	todos.Use(handlers.Identity)
	{
		todos.POST("", handlers.Todo.Create)
		todos.GET("", handlers.Todo.List)
		todos.PUT("/:id", handlers.Todo.Update)
		todos.DELETE("/:id", handlers.Todo.Delete)
	}
}

func recoveryHandler(c *gin.Context, recovered any) {
	log.Error().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Any("panic", recovered).
		Msg("panic recovered")

	body := response.Error{Message: "Internal Server Error"}

	if gin.Mode() != gin.ReleaseMode {
		body.Stack = fmt.Sprintf("%v", recovered)
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
