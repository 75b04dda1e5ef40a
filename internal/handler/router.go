package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	tablesHandler *api.TablesHandler,
	reservationsHandler *api.ReservationsHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *middleware.Logger,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, tablesHandler, reservationsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	tablesHandler *api.TablesHandler,
	reservationsHandler *api.ReservationsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodPost, Path: "/signup", Handler: authHandler.SignUp},
		{Method: http.MethodPost, Path: "/signin", Handler: authHandler.SignIn},
	})

	protected := engine.Group("")
	protected.Use(authMiddleware.RequireAuth())
	addRoutes(protected, []route{
		{Method: http.MethodGet, Path: "/tables", Handler: tablesHandler.List},
		{Method: http.MethodPost, Path: "/tables", Handler: tablesHandler.Create},
		{Method: http.MethodGet, Path: "/tables/:number", Handler: tablesHandler.GetByNumber},
		{Method: http.MethodPost, Path: "/reservations", Handler: reservationsHandler.Create},
		{Method: http.MethodGet, Path: "/reservations", Handler: reservationsHandler.List},
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
