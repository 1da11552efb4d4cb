package http

import (
	"log/slog"
	"net/http"

	"techevents/internal/delivery/http/controllers"
	"techevents/internal/delivery/http/middleware"
	"techevents/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events    *controllers.EventController
	Attendees *controllers.AttendeeController
	Auth      *controllers.AuthController
	Users     *controllers.UserController
}

// RouterConfig carries the cross-cutting settings of the HTTP stack.
type RouterConfig struct {
	AllowedOrigins []string
	Verifier       domain.TokenVerifier
	Logger         *slog.Logger
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it in the request id, logging, recovery and CORS middleware.
func NewRouter(c Controllers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)

	// Events
	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.HandleFunc("GET /api/events/upcoming", c.Events.ListUpcoming)
	mux.HandleFunc("POST /api/events", c.Events.CreateEvent)
	mux.HandleFunc("GET /api/events/{id}", c.Events.GetEvent)
	mux.HandleFunc("PATCH /api/events/{id}", c.Events.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", c.Events.DeleteEvent)

	// Registrations
	mux.HandleFunc("POST /api/events/{id}/register", c.Attendees.Register)
	mux.HandleFunc("DELETE /api/events/{id}/register", c.Attendees.Unregister)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)

	// Current user
	mux.HandleFunc("GET /api/users/me", requireAuth(c.Users.GetMe))
	mux.HandleFunc("GET /api/users/me/registrations", requireAuth(c.Attendees.ListMyRegistrations))

	mux.HandleFunc("GET /health", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.Recovery(cfg.Logger, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RequestID(handler)
	return handler
}
