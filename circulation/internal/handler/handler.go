package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-circulation/circulation/docs"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
)

type Handler struct {
	svc     CirculationService
	authCfg auth.Config
	log     *zap.Logger
}

func New(svc CirculationService, log *zap.Logger, authCfg auth.Config) *Handler {
	return &Handler{
		svc:     svc,
		authCfg: authCfg,
		log:     log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.authCfg),
		clientInfo,
	)
	h.register(api)
	return e
}

func (h *Handler) register(api *echo.Group) {
	api.POST("/issues", h.IssueBook, md.RequirePermission(auth.IssueCreate))
	api.GET("/issues", h.ListIssues)
	api.PUT("/issues/:id/return", h.ReturnBook, md.RequirePermission(auth.IssueReturn))
	api.POST("/issues/overdue", h.MarkOverdue, md.RequirePermission(auth.IssueReturn))

	api.GET("/fines", h.ListFines)
	api.POST("/fines/:id/pay", h.PayFine, md.RequirePermission(auth.FinePay))
	api.POST("/fines/:id/waive", h.WaiveFine, md.RequirePermission(auth.FineWaive))

	api.GET("/requests", h.ListRequests)
	api.POST("/requests", h.CreateRequest, md.RequirePermission(auth.RequestCreate))
	api.PUT("/requests/:id/process", h.ProcessRequest, md.RequirePermission(auth.RequestManage))
	api.PUT("/requests/:id/cancel", h.CancelRequest, md.RequirePermission(auth.RequestCreate))

	api.GET("/members/:id/summary", h.MemberSummary, md.RequirePermission(auth.MemberRead, auth.MemberReadSelf))
	api.GET("/activity-logs", h.ListActivity, md.RequirePermission(auth.ActivityRead))
	api.POST("/settings/reload", h.ReloadSettings, md.RequirePermission(auth.SettingsManage))
}

// Health godoc
// @Summary liveness probe
// @Tags manage
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func clientInfo(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := service.WithClientInfo(req.Context(), c.RealIP(), req.UserAgent())
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func actor(c echo.Context) auth.Principal {
	p, _ := auth.FromContext(c.Request().Context())
	return p
}
