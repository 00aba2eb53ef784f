package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"consultation-booking/internal/handler/api"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Draft        *api.DraftHandler
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	metrics MetricsExporter,
	limiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	h Handlers,
) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, metrics, limiter, authMiddleware, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics MetricsExporter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, metrics MetricsExporter, limiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability/dates", Handler: h.Availability.Dates},
			{Method: http.MethodGet, Path: "/availability/slots", Handler: h.Availability.Slots},
			{Method: http.MethodGet, Path: "/booking/options", Handler: h.Availability.Options},
		})

		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Draft.Create, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Draft.Get},
				{Method: http.MethodPut, Path: "/:id/date", Handler: h.Draft.SelectDate},
				{Method: http.MethodPut, Path: "/:id/time", Handler: h.Draft.SelectTime},
				{Method: http.MethodPost, Path: "/:id/details", Handler: h.Draft.SubmitDetails, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/:id/back", Handler: h.Draft.Back},
				{Method: http.MethodPost, Path: "/:id/reset", Handler: h.Draft.Reset},
				{Method: http.MethodGet, Path: "/:id/calendar.ics", Handler: h.Draft.CalendarFile},
			})
		}

		adminGroup := apiGroup.Group("/admin")
		{
			addRoutes(adminGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := adminGroup.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/session", Handler: h.Auth.Session},
				{Method: http.MethodGet, Path: "/setup", Handler: h.Booking.Setup},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/stream", Handler: h.Booking.Stream},
				{Method: http.MethodGet, Path: "/bookings/export.csv", Handler: h.Booking.ExportCSV},
				{Method: http.MethodGet, Path: "/bookings/export.json", Handler: h.Booking.ExportJSON},
				{Method: http.MethodGet, Path: "/bookings/date/:date", Handler: h.Booking.ListForDate},
				{Method: http.MethodGet, Path: "/bookings/slot", Handler: h.Booking.Slot},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Booking.Update},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
