package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stylemind/stylemind-backend/api-gateway/config"
	"github.com/stylemind/stylemind-backend/api-gateway/health"
	"github.com/stylemind/stylemind-backend/api-gateway/middleware"
	"github.com/stylemind/stylemind-backend/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
}

// Routes holds all route definitions. Profile creation issues the device
// token, so the user routes stay public; user-scoped data requires the
// token it issued.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/users",
		ServiceName: "stylemind",
		Description: "Profile creation and style DNA",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/outfits",
		ServiceName: "stylemind",
		Description: "Curated outfit deck",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/products",
		ServiceName: "stylemind",
		Description: "Product recommendations",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/weather",
		ServiceName: "stylemind",
		Description: "Weather context",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/analyze-clothing",
		ServiceName: "stylemind",
		Description: "Clothing photo analysis",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/analyze-body",
		ServiceName: "stylemind",
		Description: "Body photo analysis",
		RequireAuth: false,
	},

	// User-scoped routes
	{
		Prefix:      "/api/swipes",
		ServiceName: "stylemind",
		Description: "Swipe feedback",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/wardrobe",
		ServiceName: "stylemind",
		Description: "Wardrobe items",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/wardrobe-gaps",
		ServiceName: "stylemind",
		Description: "Wardrobe gap analysis",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/outfit-suggestion",
		ServiceName: "stylemind",
		Description: "Outfit suggestions",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/chat",
		ServiceName: "stylemind",
		Description: "Stylist chat",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks backend instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "StyleMind API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
