package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"restaurant-pos/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Application exposes the point-of-sale over HTTP. The catalog, queue and
// register are not safe for concurrent use, so every handler that touches
// them holds mu.
type Application struct {
	mu       sync.Mutex
	catalog  *services.Catalog
	register *services.Register
	// bills processed by POST /orders/next and still waiting for payment
	unpaid map[string]services.Bill

	ping func(ctx context.Context) error
	log  *zap.SugaredLogger
}

func New(catalog *services.Catalog, register *services.Register, log *zap.SugaredLogger) *Application {
	return &Application{
		catalog:  catalog,
		register: register,
		unpaid:   make(map[string]services.Bill),
		log:      log,
	}
}

// WithStoragePing makes /health report the catalog backend status.
func (app *Application) WithStoragePing(ping func(ctx context.Context) error) *Application {
	app.ping = ping
	return app
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(app.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.listMenuHandler)
			r.Post("/", app.createMenuItemHandler)
			r.Get("/{name}", app.getMenuItemHandler)
			r.Patch("/{name}", app.updateMenuItemHandler)
			r.Delete("/{name}", app.deleteMenuItemHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", app.createOrderHandler)
			r.Get("/pending", app.pendingOrdersHandler)
			r.Post("/next", app.processNextOrderHandler)
		})

		r.Post("/payments", app.createPaymentHandler)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *Application) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.Mount(),
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error, 1)
	go func() {
		<-ctx.Done()
		app.log.Infow("shutting down server", "addr", addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdown <- srv.Shutdown(shutdownCtx)
	}()

	app.log.Infow("server has started", "addr", addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdown; err != nil {
		return err
	}

	app.log.Infow("server has stopped", "addr", addr)
	return nil
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		app.log.Debugw("request completed",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
