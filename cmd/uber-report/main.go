// Command uber-report reads a folder of Uber receipt PDFs and writes a
// reimbursement summary PDF. Running it with no arguments scans the fixed
// "uber" folder next to the binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/vittoria-bank/uber-trip-report/internal/common"
	"github.com/vittoria-bank/uber-trip-report/internal/export"
	"github.com/vittoria-bank/uber-trip-report/internal/extract"
	"github.com/vittoria-bank/uber-trip-report/internal/ingest"
	"github.com/vittoria-bank/uber-trip-report/internal/report"
)

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	var (
		dir  = flag.String("dir", cfg.ReceiptsDir, "folder containing receipt PDFs")
		out  = flag.String("out", cfg.OutputPath, "output PDF path (default: dated name in the working directory)")
		logo = flag.String("logo", cfg.LogoPath, "optional SVG logo for the report header")
		xlsx = flag.String("xlsx", cfg.XLSXPath, "optional XLSX trip table path")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger = logger.With("run_id", runID)
	ctx := context.Background()

	banner()
	fmt.Println("Relatorio UBER - Banco Vittoria")
	banner()

	loader := ingest.NewLoader(extract.NewPDFExtractor(), logger)
	records, _, stats := loader.LoadDirectory(ctx, *dir)
	logger.Info("ingest.done",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"parsed", stats.Parsed,
		"failed", stats.Failed,
	)
	if len(records) == 0 {
		fmt.Printf("Nenhum recibo encontrado em %s\n", *dir)
		return
	}

	if *out == "" {
		*out = fmt.Sprintf("Relatorio UBER - %s.pdf", time.Now().Format("20060102"))
	}
	renderer := report.NewRenderer(*logo, logger)
	if err := renderer.Render(records, *out); err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(1)
	}

	if *xlsx != "" {
		b, err := export.TripsXLSX(records, logger)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, b, 0644); err != nil {
			logger.Error("xlsx write failed", "path", *xlsx, "error", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	banner()
	fmt.Printf("OK PDF gerado: %s\n", *out)
	fmt.Printf("- Recibos lidos: %d\n", stats.Parsed)
	if stats.Failed > 0 {
		fmt.Printf("- Arquivos ignorados: %d\n", stats.Failed)
	}
	if *xlsx != "" {
		fmt.Printf("- Planilha: %s\n", *xlsx)
	}
	banner()
}

func banner() {
	fmt.Println(strings.Repeat("=", 50))
}
