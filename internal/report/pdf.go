// Package report sorts and aggregates parsed receipts and lays out the
// summary PDF.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
)

const (
	pageWidth   = 210.0 // A4 portrait, mm
	marginSide  = 10.0
	contentWide = pageWidth - 2*marginSide
	logoHeight  = 20.0
)

// Renderer writes the reimbursement report PDF: a general summary, period
// subtotal tables and one detail block per trip.
type Renderer struct {
	LogoPath string
	log      *slog.Logger
}

func NewRenderer(logoPath string, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{LogoPath: logoPath, log: log}
}

// Render sorts the records, aggregates totals and writes the document to
// outputPath in one blocking pass.
func (r *Renderer) Render(records []entity.ReceiptRecord, outputPath string) error {
	start := time.Now()
	sorted := SortRecords(records)
	sum := Aggregate(sorted)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório de Reembolso - Uber", true)
	pdf.SetAuthor("Banco Vittoria", true)
	pdf.SetMargins(marginSide, 12, marginSide)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawLogo(pdf)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 42, 55)
	pdf.CellFormat(0, 8, tr("Relatório de Reembolso - Uber"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	r.drawSummary(pdf, tr, sum, FormatDateRange(sorted))
	r.drawPeriodTable(pdf, tr, "Totais por mês", sum.MonthTotals, 40, 45)
	r.drawPeriodTable(pdf, tr, "Totais por semana (do mês)", sum.WeekTotals, 62, 23)
	pdf.Ln(4)

	for _, rec := range sorted {
		r.drawTrip(pdf, tr, rec)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write report %s: %w", outputPath, err)
	}
	r.log.Info("report.pdf.ok",
		"path", outputPath,
		"trips", sum.Trips,
		"grand_total", sum.GrandTotal,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// drawLogo places the optional vector logo centered at the top. A missing or
// unreadable logo degrades to blank spacing.
func (r *Renderer) drawLogo(pdf *fpdf.Fpdf) {
	sig, err := fpdf.SVGBasicFileParse(r.LogoPath)
	if err != nil || sig.Ht <= 0 {
		pdf.Ln(5)
		return
	}
	scale := logoHeight / sig.Ht
	pdf.SetX((pageWidth - sig.Wd*scale) / 2)
	pdf.SetLineWidth(0.25)
	pdf.SetDrawColor(31, 42, 55)
	pdf.SVGBasicWrite(&sig, scale)
	pdf.Ln(3)
}

func (r *Renderer) drawSummary(pdf *fpdf.Fpdf, tr func(string) string, sum Summary, period string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 6, "Resumo geral", "", 1, "C", false, 0, "")
	pdf.Ln(1)

	grand := sum.GrandTotal
	cells := []struct {
		w    float64
		text string
	}{
		{55, fmt.Sprintf("%d viagens", sum.Trips)},
		{70, "Total " + FormatCurrency(&grand)},
	}
	pdf.SetFillColor(238, 242, 247)
	pdf.SetDrawColor(209, 213, 219)
	pdf.SetX((pageWidth - 125) / 2)
	for _, c := range cells {
		pdf.CellFormat(c.w, 9, tr(c.text), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetTextColor(75, 85, 99)
	pdf.CellFormat(0, 5, tr("Período: "+period), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// drawPeriodTable emits one subtotal table (month or week-of-month). An empty
// total set emits nothing, like the original report.
func (r *Renderer) drawPeriodTable(pdf *fpdf.Fpdf, tr func(string) string, caption string, totals []PeriodTotal, keyW, valW float64) {
	if len(totals) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetTextColor(75, 85, 99)
	pdf.CellFormat(0, 5, tr(caption), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8.8)
	pdf.SetTextColor(17, 24, 39)
	pdf.SetFillColor(243, 244, 246)
	pdf.SetDrawColor(229, 231, 235)
	pdf.CellFormat(keyW, 6, tr("Mês"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(valW, 6, "Total", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 8.8)
	for _, t := range totals {
		total := t.Total
		pdf.CellFormat(keyW, 6, tr(t.Key), "1", 0, "L", false, 0, "")
		pdf.CellFormat(valW, 6, tr(FormatCurrency(&total)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

// drawTrip emits one per-trip detail block followed by a separator rule.
func (r *Renderer) drawTrip(pdf *fpdf.Fpdf, tr func(string) string, rec entity.ReceiptRecord) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(17, 24, 39)
	header := fmt.Sprintf("%s %s • Total %s", orDash(rec.DateText), orDash(rec.TimeText), FormatCurrency(rec.Total))
	pdf.CellFormat(0, 5, tr(header), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetTextColor(75, 85, 99)
	costs := fmt.Sprintf("Preço: %s • Taxa: %s • Custo: %s",
		FormatCurrency(rec.TripPrice), FormatCurrency(rec.IntermediationFee), FormatCurrency(rec.FixedCost))
	pdf.CellFormat(0, 4.5, tr(costs), "", 1, "L", false, 0, "")
	payment := fmt.Sprintf("Promoção: %s • Pagamento: %s", FormatPromotion(rec.Promotion), orDash(rec.PaymentLine))
	pdf.CellFormat(0, 4.5, tr(payment), "", 1, "L", false, 0, "")

	stats := fmt.Sprintf("%s • %s km • %s minutos",
		orDash(rec.Category), orDash(rec.DistanceKM), orDash(rec.DurationMin))
	pdf.CellFormat(0, 4.5, tr(stats), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 4.5, tr("Origem "+tripPoint(rec.Origin)), "", "L", false)
	pdf.MultiCell(0, 4.5, tr("Destino "+tripPoint(rec.Destination)), "", "L", false)
	pdf.Ln(1.5)

	pdf.SetDrawColor(209, 213, 219)
	pdf.SetLineWidth(0.2)
	y := pdf.GetY()
	pdf.Line(marginSide, y, marginSide+contentWide, y)
	pdf.Ln(3)
}

func tripPoint(p *entity.TripPoint) string {
	if p == nil {
		return "(-): -"
	}
	return fmt.Sprintf("(%s): %s", orDash(p.Time), orDash(p.Address))
}
