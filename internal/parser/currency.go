package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyTagRe   = regexp.MustCompile(`-?R\$\s*([0-9.,]+)`)
	currencyStripRe = regexp.MustCompile(`[^0-9,.\-]`)
)

// ParseCurrency interprets a Brazilian-format amount ("1.234,56", "1234,56",
// "12.50"). When both separators appear, the period is a thousands separator
// and the comma the decimal mark; a lone comma is the decimal mark. Returns
// nil when nothing numeric remains.
func ParseCurrency(text string) *float64 {
	s := currencyStripRe.ReplaceAllString(text, "")
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractCurrency pulls an amount out of a receipt line. An explicit
// "R$ <amount>" tag wins; otherwise the whole line is tried as an amount.
func ExtractCurrency(line string) *float64 {
	if m := currencyTagRe.FindStringSubmatch(line); m != nil {
		return ParseCurrency(m[1])
	}
	return ParseCurrency(line)
}
