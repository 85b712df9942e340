package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookslot/internal/handler/api"
	"bookslot/internal/handler/middleware"
	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/queries"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Appointment *api.AppointmentHandler
	Waitlist    *api.WaitlistHandler
	Catalog     *api.CatalogHandler
	Payment     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRole(queries.RoleAdmin, queries.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			// Guests can book and browse availability without a token.
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Appointment.BookedSlots},
			})

			authed := appointments.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Appointment.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Delete, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		waitlist := apiGroup.Group("/waitlist")
		{
			addRoutes(waitlist, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Enqueue},
			})

			operators := waitlist.Group("")
			operators.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(operators, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Waitlist.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Waitlist.Remove},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})

			admins := services.Group("")
			admins.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(admins, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService},
			})
		}

		locations := apiGroup.Group("/locations")
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListLocations, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})

			admins := locations.Group("")
			admins.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(admins, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateLocation},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateLocation},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/intent", Handler: h.Payment.CreateIntent},
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
