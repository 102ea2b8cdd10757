package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnquangdev/meeting-actions/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// multipartOverhead is allowed on top of the file limit for form boundaries and headers
const multipartOverhead = 1 << 20

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	actionHandler *Action
	uploadHandler *Upload
	shareHandler  *Share
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, actionHandler *Action, uploadHandler *Upload, shareHandler *Share) *Router {
	return &Router{
		cfg:           cfg,
		actionHandler: actionHandler,
		uploadHandler: uploadHandler,
		shareHandler:  shareHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/health", rt.healthCheck)

	rt.setupActionRoutes(api)
	rt.setupUploadRoutes(api)
	rt.setupShareRoutes(api)
}

// setupActionRoutes configures text extraction routes
func (rt *Router) setupActionRoutes(g *echo.Group) {
	actionGroup := g.Group("/actions")
	if rt.actionHandler != nil {
		actionGroup.POST("/extract", rt.actionHandler.Extract)
	} else {
		actionGroup.POST("/extract", rt.notImplemented)
	}
}

// setupUploadRoutes configures file upload routes
func (rt *Router) setupUploadRoutes(g *echo.Group) {
	if rt.uploadHandler == nil {
		g.POST("/upload", rt.notImplemented)
		return
	}
	limit := int64(50 << 20)
	if rt.cfg != nil && rt.cfg.Server.UploadMaxBytes > 0 {
		limit = rt.cfg.Server.UploadMaxBytes
	}
	g.POST("/upload", rt.uploadHandler.Upload, middleware.BodyLimit(fmt.Sprintf("%dB", limit+multipartOverhead)))
}

// setupShareRoutes configures share link and email routes
func (rt *Router) setupShareRoutes(g *echo.Group) {
	shareGroup := g.Group("/share")

	if rt.shareHandler != nil {
		shareGroup.POST("/link", rt.shareHandler.CreateLink)
		shareGroup.POST("/email", rt.shareHandler.SendEmail)
		shareGroup.GET("/email/quota", rt.shareHandler.Quota)
		shareGroup.GET("/:shareId", rt.shareHandler.GetLink)
	} else {
		shareGroup.POST("/link", rt.notImplemented)
		shareGroup.POST("/email", rt.notImplemented)
		shareGroup.GET("/email/quota", rt.notImplemented)
		shareGroup.GET("/:shareId", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}
