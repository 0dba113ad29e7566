package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/and161185/line-insight/internal/buildinfo"
	"github.com/and161185/line-insight/internal/config"
	"github.com/and161185/line-insight/internal/insight"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := config.NewInsightConfig()
	if err != nil {
		return err
	}
	defer func() { _ = cfg.Logger.Sync() }()

	cfg.Logger.Infow("line insight starting", buildinfo.Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep := insight.NewRunner(cfg).Run(ctx)

	cfg.Logger.Infow("line insight finished",
		"bots", rep.Bots,
		"failed_bots", rep.Failed,
		"hits", rep.Hits,
		"payloads", rep.Payloads,
		"chunks", rep.Chunks,
		"failed_chunks", rep.FailedChunks,
	)
	return nil
}
