package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"statusio-go/internal/aggregator"
	"statusio-go/internal/cache"
	"statusio-go/internal/config"
	"statusio-go/internal/logging"
	tracing "statusio-go/internal/monitoring/tracing"
	"statusio-go/internal/render"
	srv "statusio-go/internal/server"
	"statusio-go/internal/status"
	"statusio-go/internal/version"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug mode")
	previewQuotes := flag.Bool("preview-quotes", false, "Print sample card renders and exit")
	flag.Parse()

	if *previewQuotes {
		printQuotePreview()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if *debug {
		cfg.Debug = true
	}

	if err := logging.Setup(cfg); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}

	traceShutdown, err := tracing.Init(context.Background())
	if err != nil {
		log.WithError(err).Warn("failed to initialize tracing")
	}
	if traceShutdown != nil {
		defer func() {
			if err := traceShutdown(context.Background()); err != nil {
				log.WithError(err).Warn("failed to shutdown tracing")
			}
		}()
	}

	log.Infof("Starting Statusio %s (config: %s)", version.Version, *configPath)

	store := cache.NewMemory()
	agg := aggregator.New(cfg, store)
	server := srv.New(cfg, agg, render.NewPicker())

	watcher, err := config.NewWatcher(*configPath, func(next *config.Config) {
		if *debug {
			next.Debug = true
		}
		if err := logging.Setup(next); err != nil {
			log.WithError(err).Warn("failed to reconfigure logging")
		}
		server.UpdateConfig(next)
	})
	if err != nil {
		log.WithError(err).Warn("config watcher unavailable; hot reload disabled")
	} else {
		defer watcher.Stop()
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", httpServer.Addr).Info("http server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http server failed")
		}
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("graceful shutdown failed")
		}
	}
}

// printQuotePreview renders one sample card per urgency tier so quote
// pools and layout can be eyeballed without a running client.
func printQuotePreview() {
	picker := render.NewPicker()
	samples := []status.Record{
		{Provider: "Real-Debrid", Premium: status.PremiumYes, DaysLeft: status.Days(17), Username: "preview"},
		{Provider: "AllDebrid", Premium: status.PremiumYes, DaysLeft: status.Days(12), Username: "preview"},
		{Provider: "TorBox", Premium: status.PremiumYes, DaysLeft: status.Days(6), Username: "preview"},
		{Provider: "Premiumize", Premium: status.PremiumYes, DaysLeft: status.Days(2), Username: "preview"},
		{Provider: "Debrid-Link", Premium: status.PremiumYes, DaysLeft: status.Days(-1), Username: "preview"},
	}
	for _, r := range samples {
		fmt.Println(render.Description(r, render.SurfaceRich, true, picker))
		fmt.Println()
	}
	fmt.Println("compact:")
	fmt.Println(render.Description(samples[0], render.SurfaceCompact, true, picker))
}
