package server

import (
	"log/slog"
	"net/http"

	authHandlers "starmap-server/internal/auth/handlers"
	"starmap-server/internal/events"
	"starmap-server/internal/galaxy"
	galaxyHandlers "starmap-server/internal/galaxy/handlers"
	"starmap-server/internal/middleware"
	serverHandlers "starmap-server/internal/server/handlers"
	"starmap-server/internal/shared/database"
	"starmap-server/internal/shared/redis"
	"starmap-server/internal/warp"
)

type Routes struct {
	db            *database.DB
	cache         *redis.Client
	galaxyService *galaxy.Service
	warpBuilder   *warp.Builder
	hub           *events.Hub
	logger        *slog.Logger
}

func NewRoutes(db *database.DB, cache *redis.Client, galaxyService *galaxy.Service, warpBuilder *warp.Builder, hub *events.Hub, logger *slog.Logger) *Routes {
	return &Routes{
		db:            db,
		cache:         cache,
		galaxyService: galaxyService,
		warpBuilder:   warpBuilder,
		hub:           hub,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	loginHandler := authHandlers.NewLoginHandler()
	logoutHandler := authHandlers.NewLogoutHandler()

	savesHandler := galaxyHandlers.NewSavesHandler(r.galaxyService)
	mapHandler := galaxyHandlers.NewMapHandler(r.galaxyService, r.warpBuilder)
	discoverHandler := galaxyHandlers.NewDiscoverHandler(r.galaxyService, r.warpBuilder)
	presetsHandler := galaxyHandlers.NewPresetsHandler(r.galaxyService)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.Handle("/api/galaxy/presets", presetsHandler)
	mux.Handle("/auth/login", loginHandler)
	mux.Handle("/auth/logout", logoutHandler)

	// Protected endpoints (authenticated commanders)
	mux.Handle("/api/saves", middleware.JWTMiddleware(savesHandler))
	mux.Handle("/api/saves/{id}", middleware.JWTMiddleware(http.HandlerFunc(savesHandler.Get)))
	mux.Handle("/api/saves/{id}/delete", middleware.JWTMiddleware(http.HandlerFunc(savesHandler.Delete)))
	mux.Handle("/api/saves/{id}/map", middleware.JWTMiddleware(http.HandlerFunc(mapHandler.GetMap)))
	mux.Handle("/api/saves/{id}/systems/{index}", middleware.JWTMiddleware(http.HandlerFunc(mapHandler.GetSystem)))
	mux.Handle("/api/saves/{id}/systems/{index}/discover", middleware.JWTMiddleware(discoverHandler))

	// Event stream
	mux.Handle("/ws/events", middleware.JWTMiddleware(r.hub))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/galaxy/presets"},
		"protected_endpoints", []string{"/api/saves", "/api/saves/{id}", "/api/saves/{id}/map", "/api/saves/{id}/systems/{index}", "/api/saves/{id}/systems/{index}/discover"},
		"auth_endpoints", []string{"/auth/login", "/auth/logout"},
		"websocket_endpoints", []string{"/ws/events"},
	)

	return mux
}
