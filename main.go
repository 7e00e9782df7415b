package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Threads/internal/calc/ba"
	"Threads/internal/calc/bsb"
	"Threads/internal/calc/bsc"
	"Threads/internal/calc/engine"
	"Threads/internal/calc/me"
	"Threads/internal/calc/whitworth"
	"Threads/internal/config"
	"Threads/internal/drill"
	"Threads/internal/export"
	"Threads/internal/importer"
	"Threads/internal/logger"
	"Threads/internal/middleware"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, cfg config.Config, log *slog.Logger) {
	d := cfg.Defaults
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Logging(log))
	api.Use(limiter.LimitMiddleware)

	engineH := &engine.Handler{Defaults: d}
	api.HandleFunc("/standards", engineH.Standards).Methods("GET")
	api.HandleFunc("/threads/calc", engineH.Calc).Methods("POST")
	api.HandleFunc("/threads/{standard}/presets", engineH.Presets).Methods("GET")
	api.HandleFunc("/threads/{standard}/table", engineH.Table).Methods("GET")
	api.HandleFunc("/threads/{standard}/batch", engineH.Batch).Methods("POST")

	exportH := &export.Handler{Defaults: d}
	importH := &importer.Handler{Defaults: d}
	api.HandleFunc("/threads/{standard}/export.{format}", exportH.Export).Methods("GET")
	api.HandleFunc("/threads/{standard}/import", importH.Import).Methods("POST")

	whitworthH := &whitworth.Handler{Defaults: d}
	baH := &ba.Handler{Defaults: d}
	meH := &me.Handler{Defaults: d}
	bscH := &bsc.Handler{Defaults: d}
	bsbH := &bsb.Handler{Defaults: d}

	api.HandleFunc("/tools/whitworth/calc", whitworthH.Calc).Methods("POST")
	api.HandleFunc("/tools/ba/calc", baH.Calc).Methods("POST")
	api.HandleFunc("/tools/me/calc", meH.Calc).Methods("POST")
	api.HandleFunc("/tools/bsc/calc", bscH.Calc).Methods("POST")
	api.HandleFunc("/tools/bsb/calc", bsbH.Calc).Methods("POST")

	drillH := &drill.Handler{}
	api.HandleFunc("/drills/nearest", drillH.Nearest).Methods("POST")
	api.HandleFunc("/drills/validate", drillH.Validate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.load", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(logger.Config{Debug: cfg.Debug})

	router := mux.NewRouter()
	HandleList(router, cfg, log)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           middleware.CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("server.start", "addr", cfg.Addr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server.error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("server.shutdown")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server.shutdown_failed", "error", err)
		os.Exit(1)
	}
	wg.Wait()
	log.Info("server.stopped")
}
