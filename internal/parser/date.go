package parser

import (
	"regexp"
	"strings"

	"github.com/vittoria-bank/uber-trip-report/constants"
)

// longDateRe matches the normalized form of the printed date header, e.g.
// "5 de marco de 2024" or "12 de fev. de 2024".
var longDateRe = regexp.MustCompile(`^(\d{1,2}) de ([a-zA-Z.]+) de (\d{4})`)

// ParseDateKey turns a normalized Portuguese long date into a sortable
// YYYYMMDD key. The month is resolved by its first three letters. Returns ""
// when the line is not a long date or the month is unrecognized.
func ParseDateKey(normalized string) string {
	m := longDateRe.FindStringSubmatch(normalized)
	if m == nil {
		return ""
	}
	day := m[1]
	if len(day) == 1 {
		day = "0" + day
	}
	mon := strings.Trim(m[2], ".")
	if len(mon) < 3 {
		return ""
	}
	num, ok := constants.PTMonths[strings.ToLower(mon[:3])]
	if !ok {
		return ""
	}
	return m[3] + num + day
}
