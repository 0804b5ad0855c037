package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgallion1/finsift/internal/config"
	"github.com/dgallion1/finsift/internal/extract"
	"github.com/dgallion1/finsift/internal/pipeline"
	"github.com/dgallion1/finsift/internal/source"
)

// runExtract is the one-shot pipeline: classify input, fetch text, chunk,
// extract, print the merged record to stdout.
func runExtract(ctx context.Context, input string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	src, kind, err := source.For(input, cfg.FetchTimeout)
	if err != nil {
		return err
	}
	log.Info("detected input", "kind", kind, "input", input)

	text, err := src.Text(ctx, input)
	if err != nil {
		return err
	}
	log.Info("extracted text", "chars", len(text))

	client, err := extract.NewClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	stats := extract.NewStats(time.Hour)
	runner := pipeline.NewRunner(client, stats, log, cfg.ChunkMaxChars, cfg.MaxConcurrentExtract)

	result, err := runner.Run(ctx, text)
	if err != nil {
		return err
	}

	snap := stats.Snapshot()
	log.Info("extraction complete",
		"chunks", result.Chunks,
		"chunk_errors", len(result.Errors),
		"calls", snap.Count,
		"avg_ms", snap.AvgMs,
	)

	out, err := json.MarshalIndent(result.Record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
