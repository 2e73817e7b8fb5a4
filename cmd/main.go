package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaillant_bridge/internal/cache"
	"vaillant_bridge/internal/config"
	"vaillant_bridge/internal/handlers"
	"vaillant_bridge/internal/logger"
	"vaillant_bridge/internal/server"
	"vaillant_bridge/internal/service"
	"vaillant_bridge/internal/vaillant"
)

const shutdownTimeout = 10 * time.Second

// @title           Vaillant Heating Bridge
// @description     REST facade over the Vaillant heating cloud: boiler and zone telemetry and control for a single account, with an in-memory TTL cache.
// @version         1.0
// @BasePath        /
func main() {
	// load environment first; the log level comes from it
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error loading configuration", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	// vendor client: session is established lazily on the first request
	client := vaillant.NewClient(vaillant.Config{
		User:     cfg.User,
		Password: cfg.Password,
		Brand:    cfg.Brand,
		Country:  cfg.Country,
	}, log)

	// wire dependencies
	services := service.NewService(client, cache.New(), log)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown: stop the listener, then release the vendor connection
	waitForShutdown(srv, client, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
// In-flight vendor calls are not waited for; the vendor connection is closed
// before the process exits.
func waitForShutdown(srv *server.Server, client *vaillant.Client, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	client.Close()
	log.Infow("vendor session closed")
}
