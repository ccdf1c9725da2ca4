package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
)

// ptBR localizes number formatting: "." for thousands, "," for decimals.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders an amount as "R$ 1.234,56". Absent values render
// as "-".
func FormatCurrency(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatAmount(*v)
}

// FormatPromotion renders a discount with a single forced leading minus:
// both 10.0 and -10.0 come out as "-R$ 10,00". Absent renders as "-".
func FormatPromotion(v *float64) string {
	if v == nil {
		return "-"
	}
	amt := *v
	if amt < 0 {
		amt = -amt
	}
	return "-" + formatAmount(amt)
}

// FormatDateRange renders the span of the records' date keys as
// "DD/MM/YYYY–DD/MM/YYYY", or "-" when no record has a date.
func FormatDateRange(records []entity.ReceiptRecord) string {
	var lo, hi string
	for _, r := range records {
		if r.DateKey == "" {
			continue
		}
		if lo == "" || r.DateKey < lo {
			lo = r.DateKey
		}
		if r.DateKey > hi {
			hi = r.DateKey
		}
	}
	if lo == "" {
		return "-"
	}
	return brDate(lo) + "–" + brDate(hi)
}

func formatAmount(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

func brDate(key string) string {
	if len(key) != 8 {
		return key
	}
	return key[6:8] + "/" + key[4:6] + "/" + key[0:4]
}

// orDash substitutes "-" for empty display values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
