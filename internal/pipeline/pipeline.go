package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/finsift/internal/chunker"
	"github.com/dgallion1/finsift/internal/extract"
)

// ChunkError records a chunk whose model response could not be parsed.
// Processing continues past it; the metric fields never absorb diagnostics.
type ChunkError struct {
	Chunk   int    `json:"chunk"`
	Message string `json:"message"`
}

// Result is the terminal artifact of one run.
type Result struct {
	Record extract.Record `json:"record"`
	Errors []ChunkError   `json:"errors,omitempty"`
	Chunks int            `json:"chunks"`
}

// Runner drives chunking, per-chunk extraction and aggregation.
type Runner struct {
	client        extract.Client
	stats         *extract.Stats
	log           *slog.Logger
	maxChars      int
	maxConcurrent int
}

func NewRunner(client extract.Client, stats *extract.Stats, log *slog.Logger, maxChars, maxConcurrent int) *Runner {
	if maxChars <= 0 {
		maxChars = chunker.DefaultMaxChars
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		client:        client,
		stats:         stats,
		log:           log,
		maxChars:      maxChars,
		maxConcurrent: maxConcurrent,
	}
}

// Run chunks text, extracts each chunk and merges the partial results.
// An extraction call failure aborts the run; a malformed response only
// costs its own chunk.
func (r *Runner) Run(ctx context.Context, text string) (*Result, error) {
	chunks := chunker.Split(text, r.maxChars)
	r.log.Info("chunked document", "chunks", len(chunks), "text_chars", len(text))

	raws, err := r.extractAll(ctx, chunks)
	if err != nil {
		return nil, err
	}

	partial := make(map[extract.Field][]string, len(extract.Fields))
	var chunkErrs []ChunkError

	for i, raw := range raws {
		r.log.Debug("raw chunk response", "chunk", i, "response", raw)

		obj, err := extract.ParseRecord(raw)
		if err != nil {
			r.log.Warn("malformed chunk response", "chunk", i, "error", err)
			chunkErrs = append(chunkErrs, ChunkError{
				Chunk:   i,
				Message: fmt.Sprintf("failed to parse JSON in chunk %d", i),
			})
			continue
		}

		for _, f := range extract.Fields {
			v, ok := obj[string(f)]
			if !ok || !extract.HasValue(v) {
				continue
			}
			partial[f] = append(partial[f], extract.NormalizeValue(v))
		}
	}

	res := &Result{Chunks: len(chunks), Errors: chunkErrs}
	for _, f := range extract.Fields {
		res.Record.Set(f, strings.Join(partial[f], "; "))
	}
	return res, nil
}

// extractAll returns the raw responses indexed by chunk position. With a
// concurrency limit of one the calls run strictly in order; above that,
// a semaphore bounds in-flight calls and results land in their slot so
// aggregation still sees original chunk order.
func (r *Runner) extractAll(ctx context.Context, chunks []string) ([]string, error) {
	raws := make([]string, len(chunks))

	if r.maxConcurrent <= 1 {
		for i, chunk := range chunks {
			raw, err := r.extractOne(ctx, chunk)
			if err != nil {
				return nil, fmt.Errorf("chunk %d: %w", i, err)
			}
			raws[i] = raw
		}
		return raws, nil
	}

	type chunkResult struct {
		idx int
		raw string
		err error
	}
	results := make(chan chunkResult, len(chunks))
	sem := make(chan struct{}, r.maxConcurrent)

	for i, chunk := range chunks {
		sem <- struct{}{}
		go func(i int, chunk string) {
			defer func() { <-sem }()
			raw, err := r.extractOne(ctx, chunk)
			results <- chunkResult{idx: i, raw: raw, err: err}
		}(i, chunk)
	}

	var firstErr error
	for range chunks {
		cr := <-results
		if cr.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("chunk %d: %w", cr.idx, cr.err)
			}
			continue
		}
		raws[cr.idx] = cr.raw
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return raws, nil
}

func (r *Runner) extractOne(ctx context.Context, chunk string) (string, error) {
	start := time.Now()
	raw, err := r.client.Extract(ctx, chunk)
	if r.stats != nil {
		r.stats.Observe(time.Since(start))
	}
	return raw, err
}
