package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
	"github.com/vittoria-bank/uber-trip-report/internal/report"
)

func TestRenderWritesDocument(t *testing.T) {
	records := []entity.ReceiptRecord{
		{
			FileName: "a.pdf",
			DateText: "5 de março de 2024", TimeText: "08:10", DateKey: "20240305",
			Total: f(24.9), TripPrice: f(22.4), IntermediationFee: f(2.5),
			FixedCost: f(0.75), Promotion: f(0.75),
			PaymentLine: "Cartão Visa 1234", Category: "UberX",
			DistanceKM: "7.5", DurationMin: "18",
			Origin:      &entity.TripPoint{Time: "08:00", Address: "Rua A, 1"},
			Destination: &entity.TripPoint{Time: "08:18", Address: "Rua B, 2"},
		},
		{FileName: "b.pdf"}, // all-absent record still renders with dashes
	}

	out := filepath.Join(t.TempDir(), "relatorio.pdf")
	r := report.NewRenderer("no-such-logo.svg", nil)
	require.NoError(t, r.Render(records, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
