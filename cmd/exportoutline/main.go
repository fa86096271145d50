// Command exportoutline writes the course catalog outline to XLSX or CSV
// for authoring review.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/edukit/coursed/internal/catalog"
	"github.com/edukit/coursed/internal/export"
)

func main() {
	var (
		source = flag.String("content", "data/content.json", "content document path or URL")
		format = flag.String("format", "xlsx", "output format: xlsx or csv")
		out    = flag.String("out", "", "output path (default outline.<format>)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*source, *format, *out); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(source, format, out string) error {
	if out == "" {
		out = "outline." + format
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loader := catalog.NewLoader(source)
	if err := loader.Load(ctx); err != nil {
		return err
	}
	c, _ := loader.Catalog()

	rows := export.OutlineRows(c)

	switch format {
	case "xlsx":
		if err := export.WriteXLSX(out, rows); err != nil {
			return err
		}
	case "csv":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, rows); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q, want xlsx or csv", format)
	}

	slog.Info("outline exported", "path", out, "rows", len(rows))
	return nil
}
