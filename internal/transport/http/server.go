// Package http provides the HTTP boundary for both services. Handlers build
// one notification collector per request, invoke the orchestrator, and
// translate the collector into a transport outcome with a fixed priority:
// unexpected failure, then not-found, then any recorded message, then
// success.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dfranca/storefront/internal/auth"
	"github.com/dfranca/storefront/internal/domain"
	"github.com/dfranca/storefront/internal/notification"
)

// UserService is the account orchestrator consumed by the boundary.
type UserService interface {
	Create(ctx context.Context, n *notification.Notification, model domain.UserModel)
	Login(ctx context.Context, n *notification.Notification, userName, password string) string
}

// ProductService is the product orchestrator consumed by the boundary.
type ProductService interface {
	Create(ctx context.Context, n *notification.Notification, model domain.ProductModel)
	Update(ctx context.Context, n *notification.Notification, model domain.ProductModel)
	Delete(ctx context.Context, n *notification.Notification, id uuid.UUID)
	GetByID(ctx context.Context, n *notification.Notification, id uuid.UUID) *domain.ProductModel
	GetAll(ctx context.Context, n *notification.Notification) []domain.ProductModel
}

// Server is the HTTP server for one of the two services.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	jwt        *auth.JWTHandler
	logger     *zap.Logger
}

// NewAccountServer creates the auth service's HTTP server.
func NewAccountServer(users UserService, logger *zap.Logger) *Server {
	s := newServer(nil, logger)

	h := &accountHandler{server: s, users: users}
	s.router.Route("/api/v1/account", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	return s
}

// NewProductServer creates the product service's HTTP server. Every product
// route sits behind the bearer-token middleware; mutations additionally
// require the Admin role.
func NewProductServer(products ProductService, jwt *auth.JWTHandler, logger *zap.Logger) *Server {
	s := newServer(jwt, logger)

	h := &productHandler{server: s, products: products}
	s.router.Route("/api/v1/products", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Group(func(r chi.Router) {
			r.Use(s.requireRoles(domain.RoleAdmin, domain.RoleUser))
			r.Get("/", h.handleGetAll)
			r.Get("/{id}", h.handleGetByID)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireRoles(domain.RoleAdmin))
			r.Post("/", h.handleCreate)
			r.Put("/", h.handleUpdate)
			r.Delete("/{id}", h.handleDelete)
		})
	})

	return s
}

func newServer(jwt *auth.JWTHandler, logger *zap.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		jwt:    jwt,
		logger: logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Get("/health", s.handleHealth)

	return s
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Response helpers

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeFailure maps the collector to an error response and reports whether
// it handled the request. Priority: Unexpected, then NotFound, then any
// recorded message as a bad request.
func (s *Server) writeFailure(w http.ResponseWriter, n *notification.Notification) bool {
	if !n.Any() {
		return false
	}

	status := http.StatusBadRequest
	switch n.Severity() {
	case notification.Unexpected:
		status = http.StatusInternalServerError
	case notification.NotFound:
		status = http.StatusNotFound
	}

	s.writeJSON(w, status, errorResponse{Error: n.Summary()})
	return true
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
