package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aedwards3305-source/fans-dashboard/internal/config"
	"github.com/aedwards3305-source/fans-dashboard/internal/dataset"
	"github.com/aedwards3305-source/fans-dashboard/internal/server"
	"github.com/aedwards3305-source/fans-dashboard/internal/store"
	"github.com/aedwards3305-source/fans-dashboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (config.toml wins when it sets one explicitly)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  FANS - Facility Analytics Dashboard")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	logger := newLogger(cfg.Server.DevMode)
	defer logger.Sync()

	if dir, err := config.EnsureDataDir(cfg); err != nil {
		logger.Warn("failed to create data directory", zap.Error(err))
	} else {
		logger.Info("data directory ready", zap.String("dir", dir))
	}

	st := store.NewSessionStore()
	records, summary, err := dataset.Load()
	if err != nil {
		logger.Fatal("failed to load curated dataset", zap.Error(err))
	}
	st.SetBase(records, summary)
	logger.Info("curated dataset loaded", zap.Int("facilities", st.BaseCount()))

	srv := server.NewServer(cfg, st, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Run(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser automatically, visit %s\n", url)
		}
	} else {
		fmt.Printf("Development mode: visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down. Session data is discarded.")
}

func newLogger(devMode bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if devMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
