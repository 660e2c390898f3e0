package api

import (
	"net"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/adriit/roledash/internal/api/handler"
	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"

	_ "github.com/adriit/roledash/docs"
)

// Deps is everything the router wires into handlers and middleware.
type Deps struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Tokens   ports.TokenService
	Sessions ports.SessionResolver
	Cookie   middleware.SessionCookie
	// Policy defaults to middleware.DefaultRoutePolicy.
	Policy *middleware.RoutePolicy
	// Limiter is optional; leave it nil to disable login/signup throttling.
	Limiter ports.AttemptLimiter
	// TrustedProxies may set X-Forwarded-For. Without any, the client IP is
	// the peer address and forwarded headers are ignored.
	TrustedProxies []*net.IPNet
	// Pingers are checked by /health/ready, keyed by dependency name.
	Pingers map[string]handler.Pinger
	Log     zerolog.Logger
	// Metrics exposes /metrics and records request metrics.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.IPExtractor = ipExtractor(d.TrustedProxies)

	policy := d.Policy
	if policy == nil {
		policy = middleware.DefaultRoutePolicy()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("roledash"))
	}
	e.Use(middleware.Gate(policy, d.Tokens, d.Cookie))

	authHandler := handler.NewAuthHandler(d.Auth, d.Users, d.Tokens, d.Sessions, d.Cookie, d.Log)
	userHandler := handler.NewUserHandler(d.Users, d.Tokens, d.Cookie, d.Log)
	pageHandler := handler.NewPageHandler(d.Users, d.Sessions, d.Cookie)
	healthHandler := handler.NewHealthHandler(d.Pingers)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login, middleware.Throttle(d.Limiter, "login", d.Log))
	auth.POST("/signup", authHandler.Signup, middleware.Throttle(d.Limiter, "signup", d.Log))
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)
	auth.POST("/check-username", authHandler.CheckUsername)

	// --- Account administration ---
	users := e.Group("/users", middleware.Auth(d.Tokens, d.Cookie))
	users.GET("/count-by-role", userHandler.CountByRole, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	users.GET("/total-count", userHandler.TotalCount, middleware.RBAC(domain.RoleAdmin))
	users.DELETE("", userHandler.Delete)
	users.PUT("", userHandler.UpdateProfile)

	// --- Pages (access decided by the gate) ---
	e.GET("/", pageHandler.Home)
	e.GET(middleware.LoginPath, pageHandler.Login)
	e.GET(middleware.SignupPath, pageHandler.Signup)
	e.GET(middleware.UnauthorizedPath, pageHandler.Unauthorized)
	e.GET("/admin/dashboard", pageHandler.AdminDashboard)
	e.GET("/manager/dashboard", pageHandler.ManagerDashboard)
	e.GET("/client/dashboard", pageHandler.ClientDashboard)
	e.GET("/analytics", pageHandler.Analytics)
	e.GET("/profile", pageHandler.Profile)
	e.GET("/settings", pageHandler.Settings)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	if d.Metrics {
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
