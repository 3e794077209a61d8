package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"TravelRecord/internal/config"
	"TravelRecord/internal/middleware"
	"TravelRecord/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	tripService *service.TripService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)
	tripHandler := NewTripHandler(tripService, logger, config)

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "TravelRecord backend running"})
	})

	// Auth routes
	r.Post("/api/register", userHandler.Register)
	r.Post("/api/login", userHandler.Login)
	r.Post("/api/logout", userHandler.Logout)
	r.Get("/api/me", userHandler.Me)

	// Trip routes
	r.Post("/api/add", tripHandler.AddOne)
	r.Post("/api/bulk", tripHandler.Bulk)
	r.Get("/api/all", tripHandler.ListAll)
	r.Post("/api/delete_many", tripHandler.DeleteMany)

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr отдаёт конверт {"ok":false,"error":...} исходного бэкенда.
func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
