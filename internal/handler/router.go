package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbooker/internal/domain/customer"
	"slotbooker/internal/handler/api"
	"slotbooker/internal/handler/middleware"
	"slotbooker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Slot        *api.SlotHandler
	Booking     *api.BookingHandler
	Payment     *api.PaymentHandler
	ServiceType *api.ServiceTypeHandler
	Schedule    *api.ScheduleHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics, registry *prometheus.Registry) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, handlers, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(metrics.Middleware())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireStaff := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRoleAtLeast(customer.RoleOrganiser),
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})
		}

		serviceTypes := apiGroup.Group("/service-types")
		{
			addRoutes(serviceTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.ServiceType.List},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.ServiceType.Get},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: handlers.Slot.ListDay},
				{Method: http.MethodPost, Path: "", Handler: handlers.ServiceType.Create, Mw: requireStaff},
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.ServiceType.Update, Mw: requireStaff},
				{Method: http.MethodPatch, Path: "/:id/publish", Handler: handlers.ServiceType.SetPublished, Mw: requireStaff},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.Admit},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Booking.Cancel},
				{Method: http.MethodGet, Path: "/:id/checkout", Handler: handlers.Payment.Checkout},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListByCustomer, Mw: requireStaff},
				{Method: http.MethodGet, Path: "/stats", Handler: handlers.Booking.Stats, Mw: requireStaff},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Booking.Transition, Mw: requireStaff},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Booking.Delete, Mw: requireStaff},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Payment.Initiate},
				{Method: http.MethodPost, Path: "/:id/settle", Handler: handlers.Payment.Settle},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: handlers.Payment.Receipt},
			})
		}

		resources := apiGroup.Group("/resources")
		resources.Use(requireStaff...)
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: handlers.Schedule.List},
				{Method: http.MethodPost, Path: "/:id/schedule", Handler: handlers.Schedule.Create},
				{Method: http.MethodPut, Path: "/:id/schedule", Handler: handlers.Schedule.Replace},
			})
		}

		scheduleRules := apiGroup.Group("/schedule-rules")
		scheduleRules.Use(requireStaff...)
		{
			addRoutes(scheduleRules, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Schedule.Delete},
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
