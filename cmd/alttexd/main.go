package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
	"github.com/NicholaCharlton/AltTeX-Personal/internal/api"
	"github.com/NicholaCharlton/AltTeX-Personal/internal/config"
)

func main() {
	cfg, err := config.Load()
	log := cfg.Logger(os.Stdout)
	if err != nil {
		log.Error("unable to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	symbols, err := cfg.Symbols()
	if err != nil {
		log.Error("unable to load symbol table", "error", err)
		os.Exit(1)
	}

	renderer := alttex.New(alttex.WithSymbols(symbols))
	srv := api.NewServer(renderer, log, cfg)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  2 * cfg.ReadTimeout,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting alttexd", "addr", cfg.Addr, "symbols", symbols.Len())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
