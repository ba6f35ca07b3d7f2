package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gift-xipu/fitness-calculaor/config"
	"github.com/gift-xipu/fitness-calculaor/metrics"
	"github.com/gift-xipu/fitness-calculaor/routes"
	"github.com/gift-xipu/fitness-calculaor/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

Endpoints:
  POST /api/fitness               evaluate one calculation
  GET  /api/fitness/calculations  list supported calculations
  GET  /api/fitness/ws            websocket, one calculation per frame
  GET  /healthz                   liveness
  GET  /metrics                   prometheus metrics

Examples:
  fitcalc serve
  fitcalc serve --config configs/fitcalc.yaml
  PORT=9000 fitcalc serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("FITCALC_CONFIG")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.Mode)

	if cfg.Metrics.Enabled {
		metrics.Register()
	}

	calc := services.NewCalculatorService()
	hub := services.NewRealtimeHub(metrics.SetWSSessions)
	r := routes.SetupRouter(cfg, calc, hub)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	// hijacked websocket connections are not tracked by Shutdown
	srv.RegisterOnShutdown(hub.CloseAll)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled && cfg.Metrics.Addr != "" {
		go startMetricsServer(ctx, cfg.Metrics.Addr)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("fitcalc listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("fitcalc stopped")
	return nil
}

func startMetricsServer(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("metrics server error: %v", err)
	}
}
