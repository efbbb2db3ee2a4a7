package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/myballot/catalog"
	"github.com/danielhkuo/myballot/cliparse"
	"github.com/danielhkuo/myballot/db"
	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/logging"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/router"
	"github.com/danielhkuo/myballot/storage"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("Invalid time zone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	store, closeStore, err := openStorage(ctx, cfg, clock)
	if err != nil {
		logger.Error("storage setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()
	logger.Info("Storage ready", "type", cfg.DatabaseType)

	registry := device.NewRegistry(device.Options{
		Storage: store,
		Catalog: catalog.New(clock, loc),
		Clock:   clock,
		Salt:    cfg.DeviceKeySalt,
		FlowTTL: cfg.ReminderFlowTTL,
		Logger:  logger,
	})

	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(registry)),
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	logger.Info("Listening", "addr", cfg.Addr(), "timezone", cfg.Timezone)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server closed", "error", err)
	} else {
		logger.Info("Server closed")
	}
}

// openStorage opens the configured backend. The returned func releases it.
func openStorage(ctx context.Context, cfg cliparse.Config, clock clockwork.Clock) (storage.Opener, func() error, error) {
	switch cfg.DatabaseType {
	case cliparse.DBSQLite, cliparse.DBPostgres:
		conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("schema creation failed: %w", err)
		}
		return storage.NewSQL(conn, cfg.DatabaseType, clock), conn.Close, nil
	case cliparse.DBLevel:
		level, err := storage.OpenLevel(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return level, level.Close, nil
	case cliparse.DBMemory:
		return storage.NewMemory(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}
