// This is the main entry point of the datamon application.
// It's responsible for initializing configuration, the JSON-file stores,
// services, handlers, setting up the HTTP router and middleware, and starting
// the HTTP server. It also handles graceful shutdown.
//
// @title Datamon API
// @version 1.0
// @description Survey-record storage, filtering, and session-based access control.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/datamon-go/apperror"
	"github.com/user/datamon-go/auth"
	"github.com/user/datamon-go/config"
	_ "github.com/user/datamon-go/docs" // Generated Swagger docs
	"github.com/user/datamon-go/pages"
	"github.com/user/datamon-go/records"
	"github.com/user/datamon-go/store"
)

func main() {
	// Load .env file. Used in development to set environment variables
	// without modifying the system environment; in production the variables
	// are usually set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The durable stores. Each one owns a single JSON file; the files are
	// created lazily on first write, so a fresh deployment starts empty.
	recordStore := store.NewRecordStore(cfg.Store.DataFile)
	userStore := store.NewUserStore(cfg.Store.UsersFile)
	snapshotStore := store.NewSnapshotStore(cfg.Store.FilteredFile)

	// Services encapsulate the business logic; their dependencies are
	// injected through constructors. Handlers translate HTTP to service calls.
	authService := auth.NewAuthService(userStore, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	recordService := records.NewRecordService(recordStore, snapshotStore)
	recordHandlers := records.NewHandlers(recordService)

	pageHandlers := pages.NewHandlers(authService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)    // Log all requests
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(middleware.RequestID) // Add request ID to context
	r.Use(middleware.RealIP)    // Get real IP from proxy headers
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		// Any origin may read the record API; restrict this for production.
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic-to-apperror middleware: anything that slips past a handler as a
	// panic still comes back to the client as a structured 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					err := apperror.NewInternalError("internal server error", nil)
					writeError(ww, err)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Swagger UI endpoint, serving the documentation generated by swaggo/swag.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public pages and form endpoints.
	r.Get("/", pageHandlers.HandleIndex())
	r.Post("/login", authHandlers.HandleLogin())
	r.Get("/register", pageHandlers.HandleRegisterForm())
	r.Post("/register", authHandlers.HandleRegister())
	r.Get("/logout", authHandlers.HandleLogout())

	// Monitoring pages, gated by the session middleware: anonymous visitors
	// are redirected to the login page.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(authService))
		r.Get("/data_monitoring", pageHandlers.HandleDataMonitoring())
		r.Get("/filter_results", pageHandlers.HandleFilterResults())
	})

	// The JSON record API is open, matching the page/API split: only the
	// monitoring views sit behind the session gate.
	r.Route("/api/data", func(r chi.Router) {
		r.Get("/", recordHandlers.HandleListRecords())
		r.Post("/", recordHandlers.HandleAddRecord())
		r.Get("/filter", recordHandlers.HandleFilterRecords())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine so the main goroutine can wait for
	// shutdown signals.
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown: finish in-flight requests, bounded by a timeout.
	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware. It formats
// panic errors with the apperror system like every other API error.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
