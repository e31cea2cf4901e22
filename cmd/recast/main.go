package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pageforge/recast/internal/classify"
	"github.com/pageforge/recast/internal/classify/pattern"
	"github.com/pageforge/recast/internal/classify/patterns"
	"github.com/pageforge/recast/internal/config"
	"github.com/pageforge/recast/internal/dom"
	"github.com/pageforge/recast/internal/logging"
	"github.com/pageforge/recast/internal/monitoring"
)

func main() {
	input := flag.String("in", "-", "HTML capture to classify ('-' for stdin, .gz accepted)")
	pretty := flag.Bool("pretty", true, "Indent JSON output")
	flag.Parse()

	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		log = logging.NewNop()
	}
	defer log.Sync() //nolint:errcheck

	if err := run(*input, *pretty, cfg, log); err != nil {
		log.Error("classification failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(input string, pretty bool, cfg *config.Config, log *logging.Logger) error {
	data, err := readCapture(input)
	if err != nil {
		return err
	}

	if kind := mimetype.Detect(data); !kind.Is("text/html") && !kind.Is("text/plain") {
		return fmt.Errorf("input is %s, expected an HTML capture", kind.String())
	}

	doc, err := dom.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg.Classifier.PatternFile)
	if err != nil {
		return err
	}

	opts := []classify.Option{
		classify.WithConfidenceFloor(cfg.Classifier.ConfidenceFloor),
		classify.WithLimits(cfg.Classifier.MaxDepth, cfg.Classifier.MaxNodes),
		classify.WithLogger(log),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, classify.WithRecorder(monitoring.NewMetrics(prometheus.DefaultRegisterer)))
	}

	classifier := classify.New(reg, opts...)
	tree, diag := classifier.Classify(doc.Root())

	log.Info("classified",
		zap.String("run_id", diag.RunID),
		zap.Int("patterns", reg.Len()),
		zap.Int("diagnostics", len(diag.Entries)))

	out := struct {
		Tree        any `json:"tree"`
		Diagnostics any `json:"diagnostics"`
	}{Tree: tree, Diagnostics: diag}

	var encoded []byte
	if pretty {
		encoded, err = sonic.MarshalIndent(out, "", "  ")
	} else {
		encoded, err = sonic.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = os.Stdout.Write(append(encoded, '\n'))
	return err
}

// buildRegistry returns the built-in pool, extended by an optional external
// YAML pattern file.
func buildRegistry(patternFile string) (*pattern.Registry, error) {
	if patternFile == "" {
		return patterns.Builtin()
	}

	reg := pattern.NewRegistry()
	if err := patterns.Seed(reg); err != nil {
		return nil, err
	}
	f, err := os.Open(patternFile)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer f.Close()

	extra, err := pattern.LoadYAML(f)
	if err != nil {
		return nil, err
	}
	for _, p := range extra {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg.Freeze(), nil
}

// readCapture reads the capture, transparently decompressing gzip.
func readCapture(input string) ([]byte, error) {
	var r io.Reader
	if input == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, dom.MaxHTMLSize+1))
	if err != nil {
		return nil, err
	}

	if len(data) > 2 && data[0] == 0x1f && data[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gunzip capture: %w", err)
		}
		defer gz.Close()
		return io.ReadAll(io.LimitReader(gz, dom.MaxHTMLSize+1))
	}
	return data, nil
}
