// Command resume-parser parses a single resume document and writes the
// structured result to stdout as JSON. No database is involved.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/haroldmt/resume-parser/internal/common"
	"github.com/haroldmt/resume-parser/internal/core"
	"github.com/haroldmt/resume-parser/internal/extract"
)

func main() {
	var (
		pretty  = flag.Bool("pretty", false, "indent the JSON output")
		diag    = flag.Bool("diag", false, "include extraction diagnostics in the output")
		rawText = flag.Bool("text", false, "print extracted text instead of the parsed record")
		quiet   = flag.Bool("quiet", false, "suppress progress output")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall parse deadline")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: resume-parser [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if !*quiet {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	pipeline := core.BuildPipeline(cfg, logger)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var progress extract.ProgressFunc
	if !*quiet {
		progress = func(done, total int, label string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, label)
		}
	}

	start := time.Now()
	out, err := pipeline.Process(ctx, extract.Document{
		Filename: filepath.Base(path),
		Data:     data,
	}, progress)
	if err != nil {
		var ee *extract.Error
		if errors.As(err, &ee) && ee.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "error: %s\nhint: %s\n", ee.Message, ee.Suggestion)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	if *rawText {
		fmt.Println(out.Data.RawText)
		return
	}

	payload := any(out.Data)
	if *diag {
		payload = struct {
			Data        any `json:"data"`
			Diagnostics any `json:"diagnostics"`
		}{out.Data, out.Diagnostics}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	logger.Info("parse complete", "file", path, "elapsed_ms", time.Since(start).Milliseconds())
}
