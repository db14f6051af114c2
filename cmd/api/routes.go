package main

import (
	"net/http"

	"go.uber.org/zap"

	httphandlers "stockroom/internal/interfaces/http"
	"stockroom/internal/shared/config"
	"stockroom/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with
// middleware applied.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Pages. The landing page sends signed-in visitors to the dashboard;
	// everything else requires a session and redirects back to "/".
	pageGuard := middleware.RequirePage(deps.Identity)

	mux.HandleFunc("/", deps.PageHandler.HandleLanding)
	mux.Handle("/dashboard", pageGuard(http.HandlerFunc(deps.PageHandler.HandleDashboard)))
	mux.Handle("/sales", pageGuard(http.HandlerFunc(deps.PageHandler.HandleSalesPage)))
	mux.Handle("/settings", pageGuard(http.HandlerFunc(deps.PageHandler.HandleSettingsPage)))

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Public session routes
	mux.HandleFunc("/api/signin", deps.SessionHandler.HandleSignIn)
	mux.HandleFunc("/api/signout", deps.SessionHandler.HandleSignOut)

	// Protected API routes
	apiGuard := middleware.RequireSession(deps.Identity)

	mux.Handle("/api/session", apiGuard(http.HandlerFunc(deps.SessionHandler.HandleSession)))
	mux.Handle("/api/inventory", apiGuard(http.HandlerFunc(deps.InventoryHandler.HandleInventory)))
	mux.Handle("/api/inventory/{id}", apiGuard(http.HandlerFunc(deps.InventoryHandler.HandleInventoryByID)))
	mux.Handle("/api/sales", apiGuard(http.HandlerFunc(deps.SalesHandler.HandleSales)))
	mux.Handle("/api/profile", apiGuard(http.HandlerFunc(deps.ProfileHandler.HandleProfile)))
	mux.Handle("/api/ebay-accounts", apiGuard(http.HandlerFunc(deps.ProfileHandler.HandleEbayAccounts)))
	mux.Handle("/api/ebay-accounts/{id}", apiGuard(http.HandlerFunc(deps.ProfileHandler.HandleEbayAccountByID)))

	// Global middleware, innermost first.
	handler := middleware.CORS(mux)
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}
	handler = middleware.Logging(logger)(handler)
	if len(cfg.Server.AllowedHosts) > 0 {
		handler = middleware.AllowedHosts(cfg.Server.AllowedHosts)(handler)
	}

	return handler
}
