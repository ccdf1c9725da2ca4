package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the text content of a PDF receipt. Fragments are grouped
// into visual rows by their Y coordinate so the output preserves the line
// structure the parser scans.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// rowTolerance is how far apart (in points) two fragments may sit vertically
// and still belong to the same printed line.
const rowTolerance = 2.0

func (e *PDFExtractor) Extract(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	pages := r.NumPage()
	for n := 1; n <= pages; n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			continue
		}
		for _, row := range groupRows(page.Content().Text) {
			sb.WriteString(row)
			sb.WriteByte('\n')
		}
	}
	return Result{Text: sb.String(), Pages: pages}, nil
}

type textRow struct {
	y     float64
	frags []pdf.Text
}

// groupRows buckets fragments into rows by Y, orders rows top-down and each
// row's fragments left-to-right, and joins fragments into one string per row.
func groupRows(texts []pdf.Text) []string {
	var rows []textRow
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].frags = append(rows[i].frags, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, frags: []pdf.Text{t}})
		}
	}

	// PDF user space has Y growing upward, so top of the page first.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row.frags, func(i, j int) bool { return row.frags[i].X < row.frags[j].X })
		parts := make([]string, 0, len(row.frags))
		for _, t := range row.frags {
			parts = append(parts, t.S)
		}
		out = append(out, strings.Join(parts, ""))
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
