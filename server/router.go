// Package server wires the HTTP surface: global middleware, the public
// credential routes and the authenticated /api group.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/auth"
	"github.com/user/changelog-api/logging"
	"github.com/user/changelog-api/products"
	"github.com/user/changelog-api/throttle"
	"github.com/user/changelog-api/updates"
	"github.com/user/changelog-api/users"
	"github.com/user/changelog-api/validation"
)

// requestTimeout bounds every request, including its store calls.
const requestTimeout = 60 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds everything the router needs. Handler and service fields are required.
type Deps struct {
	Logger      *zap.Logger
	LogRequests bool
	TrustProxy  bool // take the client address from proxy headers
	Verifier    auth.Verifier
	Auth        *auth.Handlers
	Users       *users.UserHandlers
	Products    *products.ProductHandler
	Updates     *updates.UpdateHandler
	Throttle    *throttle.Limiter
	Store       Pinger
}

// NewRouter builds the application's http.Handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if d.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.RequestLogger(d.Logger, d.LogRequests))
	r.Use(recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteError(w, r, apperror.NewNotFoundError("route not found", nil))
	})

	r.Get("/", handleHello())
	r.Get("/healthz", handleHealth(d.Store))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	credentials := validation.Body(validation.Required("username"), validation.Required("password"))
	r.Group(func(r chi.Router) {
		r.Use(d.Throttle.Middleware())
		r.With(credentials).Post("/user", d.Auth.HandleRegister())
		r.With(credentials).Post("/signin", d.Auth.HandleSignIn())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(d.Verifier))

		d.Products.RegisterRoutes(r)
		d.Updates.RegisterRoutes(r)
		r.Get("/me", d.Users.HandleGetProfile())
	})

	return r
}

// recoverer turns a panic into the canonical 500 body.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			logging.FromContext(r.Context()).Error("panic recovered",
				zap.Any("panic", rvr),
				zap.Stack("stack"),
			)
			apperror.WriteJSON(w, r, http.StatusInternalServerError,
				apperror.NewInternalError("internal server error", nil).ToResponse())
		}()
		next.ServeHTTP(w, r)
	})
}

// handleHello godoc
// @Summary Liveness greeting
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func handleHello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apperror.WriteJSON(w, r, http.StatusOK, map[string]string{"message": "hello"})
	}
}

// handleHealth godoc
// @Summary Store health
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} apperror.ErrorResponse
// @Router /healthz [get]
func handleHealth(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			apperror.WriteError(w, r, apperror.NewDatabaseError("database unreachable", err))
			return
		}
		apperror.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	}
}
