package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/intercepted16/promptkit/internal/config"
	"github.com/intercepted16/promptkit/internal/httpapi"
	"github.com/intercepted16/promptkit/internal/logger"
	"github.com/intercepted16/promptkit/internal/metrics"
	"github.com/intercepted16/promptkit/internal/mock"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	config.ApplyPresetOverrides(&cfg)

	logger.Init(cfg.Profile)
	defer logger.Sync()

	pool, err := config.LoadPool(cfg.PoolFile)
	if err != nil {
		logger.Log.Fatalw("[promptkit-mock] pool load error", "err", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Log.Infow(
		"starting mock chat-completions server",
		"addr", addr,
		"preset", cfg.Preset,
		"defaultMockType", cfg.DefaultMockType,
		"defaultDelayMs", cfg.DefaultDelayMs,
		"chunkSize", cfg.ChunkSize,
		"poolFile", cfg.PoolFile,
		"poolSize", len(pool.Sentences),
		"seed", cfg.Seed,
	)

	if cfg.FixedContent == "" {
		cfg.FixedContent = pool.Fixed
	}

	engine := mock.NewEngine(mock.NewRand(cfg.Seed), pool.Sentences, mock.Splitter(cfg.ChunkSize))
	sink := metrics.NewRecorder()
	srv := httpapi.NewServer(addr, httpapi.NewHandler(cfg, engine, sink))

	// Handle SIGINT/SIGTERM for a clean shutdown in local dev / CI.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Log.Info("[promptkit-mock] shutting down...")
		srv.GracefulStop()
	}()

	if err := srv.Run(); err != nil {
		logger.Log.Fatalw("[promptkit-mock] server error", "err", err)
	}
}
