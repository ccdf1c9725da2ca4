package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
)

// PeriodTotal is one row of a period subtotal table.
type PeriodTotal struct {
	Key   string
	Total float64
}

// Summary holds the aggregate figures of one report run.
type Summary struct {
	Trips       int
	GrandTotal  float64
	MonthTotals []PeriodTotal
	WeekTotals  []PeriodTotal
}

// Aggregate computes the trip count, the grand total (absent totals count as
// zero) and the per-month and per-week-of-month subtotals. Records whose date
// key does not parse are counted in the grand total but excluded from period
// subtotals. Sums run on decimals so long batches do not drift.
func Aggregate(records []entity.ReceiptRecord) Summary {
	grand := decimal.Zero
	months := map[string]decimal.Decimal{}
	weeks := map[string]decimal.Decimal{}

	for _, r := range records {
		total := decimal.Zero
		if r.Total != nil {
			total = decimal.NewFromFloat(*r.Total)
		}
		grand = grand.Add(total)

		d, err := time.Parse("20060102", r.DateKey)
		if err != nil {
			continue
		}
		monthKey := d.Format("01/2006")
		months[monthKey] = months[monthKey].Add(total)
		weekKey := fmt.Sprintf("%s • Semana %d", monthKey, WeekOfMonth(d.Day()))
		weeks[weekKey] = weeks[weekKey].Add(total)
	}

	return Summary{
		Trips:       len(records),
		GrandTotal:  grand.InexactFloat64(),
		MonthTotals: sortedTotals(months),
		WeekTotals:  sortedTotals(weeks),
	}
}

// WeekOfMonth buckets a day of month into seven-day weeks: days 1-7 are week
// 1, 8-14 week 2, and so on.
func WeekOfMonth(day int) int {
	return (day-1)/7 + 1
}

func sortedTotals(m map[string]decimal.Decimal) []PeriodTotal {
	out := make([]PeriodTotal, 0, len(m))
	for k, v := range m {
		out = append(out, PeriodTotal{Key: k, Total: v.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
