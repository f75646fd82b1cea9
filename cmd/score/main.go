// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package main is the EventScout batch scoring entry point.
//
// The command reads one scoring request as JSON from a file or stdin, runs
// the full pipeline (topic validation, trend significance tests, opportunity
// and insight scoring, recommendation ranking) and writes the response as
// JSON to stdout. Logs go to stderr, so output can be piped directly into
// downstream tooling.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (EVENTSCOUT_ prefix, e.g. EVENTSCOUT_WORKERS)
//   - Config file (first of ./eventscout.yaml, ./config/eventscout.yaml, or
//     the path in EVENTSCOUT_CONFIG)
//   - Built-in defaults
//
// # Example Usage
//
//	eventscout-score -input batch.json > response.json
//	cat batch.json | eventscout-score -pretty
//	eventscout-score -input batch.json -metrics 2>metrics.txt >response.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/tomtom215/eventscout/internal/config"
	"github.com/tomtom215/eventscout/internal/logging"
	"github.com/tomtom215/eventscout/internal/pipeline"
)

func main() {
	inputPath := flag.String("input", "-", "path to the batch request JSON, - for stdin")
	pretty := flag.Bool("pretty", false, "indent the response JSON")
	dumpMetrics := flag.Bool("metrics", false, "dump Prometheus metrics to stderr after the batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	logging.Info().
		Int("workers", cfg.Pipeline.Workers).
		Float64("confidence_level", cfg.Pipeline.ConfidenceLevel).
		Msg("Configuration loaded")

	if err := run(cfg, *inputPath, *pretty, *dumpMetrics); err != nil {
		logging.Fatal().Err(err).Msg("Batch scoring failed")
	}
}

func run(cfg *config.Config, inputPath string, pretty, dumpMetrics bool) error {
	req, err := readRequest(inputPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := p.Run(ctx, req)
	if err != nil {
		return err
	}

	if err := writeResponse(os.Stdout, resp, pretty); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}

	if dumpMetrics {
		if err := writeMetrics(os.Stderr); err != nil {
			return fmt.Errorf("dumping metrics: %w", err)
		}
	}
	return nil
}

// readRequest loads the batch request from path, or stdin when path is "-".
func readRequest(path string) (*pipeline.Request, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck // read-only file
		r = f
	}

	var req pipeline.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &req, nil
}

func writeResponse(w io.Writer, resp *pipeline.Response, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}

// writeMetrics renders the default registry in the Prometheus text format.
func writeMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
