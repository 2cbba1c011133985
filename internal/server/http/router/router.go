package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/metrics"
	"github.com/polkiloo/shopdash/internal/server/http/handlers"
	"github.com/polkiloo/shopdash/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade  handlers.DashboardFacade
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics.Requests, p.Metrics.Latency))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(p.Facade)
	overviewHandler := handlers.NewOverviewHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)

	engine.GET("/health", healthHandler.Check)
	if p.Config.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	}

	api := engine.Group("/api")
	api.GET("/dashboard", overviewHandler.Dashboard)
	api.GET("/notifications", overviewHandler.Notifications)
	api.GET("/activities", overviewHandler.Activities)
	api.GET("/contacts", overviewHandler.Contacts)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("/views", orderHandler.Create)

	view := orders.Group("/views/:id")
	view.GET("", orderHandler.Get)
	view.DELETE("", orderHandler.Delete)
	view.PUT("/search", orderHandler.Search)
	view.PUT("/sort", orderHandler.Sort)
	view.POST("/sort/toggle", orderHandler.ToggleSort)
	view.PUT("/page", orderHandler.Page)
	view.POST("/page/next", orderHandler.NextPage)
	view.POST("/page/previous", orderHandler.PreviousPage)
	view.POST("/selection/"+model.VisibleSelectionID+"/toggle", orderHandler.ToggleVisibleSelection)
	view.POST("/selection/:orderID/toggle", orderHandler.ToggleSelection)

	return engine
}
