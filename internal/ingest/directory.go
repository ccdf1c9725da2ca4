package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
	"github.com/vittoria-bank/uber-trip-report/internal/extract"
	"github.com/vittoria-bank/uber-trip-report/internal/parser"
)

// FileResult is the per-file outcome of a directory load.
type FileResult struct {
	Path string
	Err  string
}

// DirStats aggregates the outcome of one directory load.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Parsed  uint32
	Failed  uint32
}

// Loader reads every receipt PDF in a folder and parses each one
// independently. A file whose text cannot be extracted contributes no record
// and never aborts the batch.
type Loader struct {
	extractor extract.TextExtractor
	log       *slog.Logger
}

func NewLoader(tx extract.TextExtractor, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{extractor: tx, log: log}
}

// LoadDirectory lists the immediate children of dir, keeps those with a
// case-insensitive ".pdf" extension, and parses each. A missing or
// non-directory path yields an empty result, not an error.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]entity.ReceiptRecord, []FileResult, DirStats) {
	var (
		records []entity.ReceiptRecord
		results []FileResult
		stats   DirStats
	)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		l.log.Warn("ingest.skip", "dir", dir, "reason", "not a directory")
		return records, results, stats
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		l.log.Warn("ingest.skip", "dir", dir, "error", err)
		return records, results, stats
	}

	for _, e := range entries {
		stats.Scanned++
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		stats.Matched++
		path := filepath.Join(dir, e.Name())

		start := time.Now()
		res, err := l.extractor.Extract(ctx, path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			l.log.Warn("ingest.file.failed", "path", path, "error", err)
			continue
		}

		rec := parser.ParseReceipt(e.Name(), res.Text)
		records = append(records, rec)
		results = append(results, FileResult{Path: path})
		stats.Parsed++
		l.log.Info("ingest.file.ok",
			"path", path,
			"record_id", rec.ID,
			"pages", res.Pages,
			"date_key", rec.DateKey,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
	return records, results, stats
}
