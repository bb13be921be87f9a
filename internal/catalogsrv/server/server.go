// Package server assembles the HTTP stack: routing, request logging, panic
// recovery, CORS, authentication and the per-request store binding.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/apis"
	"github.com/articod/articod/internal/catalogsrv/auth"
	"github.com/articod/articod/internal/catalogsrv/config"
	"github.com/articod/articod/internal/catalogsrv/db"
	"github.com/articod/articod/internal/common/httpx"
	"github.com/articod/articod/internal/common/middleware"
)

// Version is stamped at build time.
var Version = "dev"

type Server struct {
	Router *chi.Mux
}

func CreateNewServer() *Server {
	return &Server{Router: chi.NewRouter()}
}

// MountHandlers installs the middleware chain and the API routes.
func (s *Server) MountHandlers() {
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(middleware.PanicHandler)

	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Location", "X-Articod-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	s.Router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{"version": Version})
	})

	s.Router.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Use(auth.RequireWrite)
		r.Use(storeBinder)
		apis.Router(r)
	})
}

// storeBinder binds a pooled store connection to each request context.
func storeBinder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.ConnCtx(r.Context())
		defer func() {
			if store := db.DB(ctx); store != nil {
				store.Close(ctx)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ListenAndServe runs the server on the configured port until it fails.
func ListenAndServe() error {
	s := CreateNewServer()
	s.MountHandlers()

	addr := ":" + config.Config().ServerPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", addr).Msg("catalog server listening")
	return srv.ListenAndServe()
}
