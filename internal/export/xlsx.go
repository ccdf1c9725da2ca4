// Package export produces the optional flat XLSX view of parsed trips.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
	"github.com/vittoria-bank/uber-trip-report/internal/report"
)

// TripsXLSX returns an XLSX workbook (as bytes) with one row per trip, in
// report order.
func TripsXLSX(records []entity.ReceiptRecord, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	sorted := report.SortRecords(records)

	f := excelize.NewFile()
	const sheet = "Viagens"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultIndex, _ := f.GetSheetIndex("Sheet1")
	if defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Arquivo",
		"Data",
		"Hora",
		"Categoria",
		"Distância (km)",
		"Duração (min)",
		"Preço da viagem",
		"Taxa de intermediação",
		"Custo fixo",
		"Promoção",
		"Total",
		"Pagamento",
		"Origem",
		"Destino",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range sorted {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		writeAmount := func(col int, v *float64) {
			if v == nil {
				return
			}
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, *v)
		}

		write(1, r.FileName)
		write(2, r.DateText)
		write(3, r.TimeText)
		write(4, r.Category)
		write(5, r.DistanceKM)
		write(6, r.DurationMin)
		writeAmount(7, r.TripPrice)
		writeAmount(8, r.IntermediationFee)
		writeAmount(9, r.FixedCost)
		writeAmount(10, r.Promotion)
		writeAmount(11, r.Total)
		write(12, r.PaymentLine)
		if r.Origin != nil {
			write(13, fmt.Sprintf("(%s) %s", r.Origin.Time, r.Origin.Address))
		}
		if r.Destination != nil {
			write(14, fmt.Sprintf("(%s) %s", r.Destination.Time, r.Destination.Address))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // file
	_ = f.SetColWidth(sheet, "B", "B", 22) // date
	_ = f.SetColWidth(sheet, "D", "D", 14) // category
	_ = f.SetColWidth(sheet, "G", "K", 14) // amounts
	_ = f.SetColWidth(sheet, "L", "L", 28) // payment
	_ = f.SetColWidth(sheet, "M", "N", 48) // origin/destination

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	logger.Info("export.xlsx.ok",
		"rows", len(sorted),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
