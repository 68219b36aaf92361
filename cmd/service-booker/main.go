package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serviceBooker/internal/config"
	"serviceBooker/internal/http-server/handlers/booking/createBooking"
	"serviceBooker/internal/http-server/handlers/service/createService"
	"serviceBooker/internal/http-server/handlers/service/home"
	"serviceBooker/internal/http-server/handlers/service/listServices"
	"serviceBooker/internal/http-server/handlers/service/serviceDetail"
	"serviceBooker/internal/http-server/middleware/mwlogger"
	"serviceBooker/internal/lib/logger/handlers/slogpretty"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/storage/sqlite"
	"serviceBooker/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting service booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Error("failed to init renderer", sl.Err(err))
		os.Exit(1)
	}

	flash := web.NewFlash(cfg.SessionSecret)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", home.New(log, storage, renderer, flash))
	router.Get("/services", listServices.New(log, storage, renderer, flash))
	router.Get("/service/new", createService.Form(log, renderer, flash))
	router.Post("/service/new", createService.New(log, storage, renderer, flash))
	router.Get("/service/{id}", serviceDetail.New(log, storage, renderer, flash))
	router.Get("/book/{id}", createBooking.Form(log, storage, renderer, flash))
	router.Post("/book/{id}", createBooking.New(log, storage, renderer, flash))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
