// Package parser turns the raw text of one Uber receipt into a
// entity.ReceiptRecord. Every rule is a single pass over the cleaned lines
// and degrades to an absent field on mismatch; given text, a record is
// always produced.
package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/vittoria-bank/uber-trip-report/constants"
	"github.com/vittoria-bank/uber-trip-report/internal/entity"
	"github.com/vittoria-bank/uber-trip-report/internal/textutil"
)

var (
	// timeRe matches a whole line holding a clock time, "8:10" or "14:05".
	timeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	// dateHeaderRe matches the start of the printed date header.
	dateHeaderRe = regexp.MustCompile(`^\d{1,2} de `)
	// tripStatsRe matches the distance/duration line inside the trip-info
	// block. Uber's pt-BR receipts print the literal "quilometros, N minutes".
	tripStatsRe = regexp.MustCompile(`([0-9.]+)\s*quilometros,\s*(\d+)\s*minutes`)
)

// SplitLines breaks raw extracted text into cleaned, non-empty lines.
func SplitLines(raw string) []string {
	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if c := textutil.Clean(l); c != "" {
			lines = append(lines, c)
		}
	}
	return lines
}

// ParseReceipt extracts every trip field it can from the raw text of one
// receipt. Missing fields never block the others.
func ParseReceipt(fileName, raw string) entity.ReceiptRecord {
	lines := SplitLines(raw)
	rec := entity.ReceiptRecord{ID: uuid.New(), FileName: fileName}

	rec.DateText, rec.TimeText = findDateHeader(lines)
	rec.DateKey = ParseDateKey(textutil.Normalize(rec.DateText))

	rec.Total = findKeywordValue(lines, constants.KeywordTotal)
	rec.TripPrice = findKeywordValue(lines, constants.KeywordTripPrice)
	rec.IntermediationFee = findKeywordValue(lines, constants.KeywordIntermediationFee)
	rec.FixedCost = findKeywordValue(lines, constants.KeywordFixedCost)
	rec.Promotion = findKeywordValue(lines, constants.KeywordPromotion)

	rec.PaymentLine = findPaymentLine(lines)
	rec.Category, rec.DistanceKM, rec.DurationMin = findTripInfo(lines)

	points := collectTripPoints(lines, tripInfoStart(lines))
	if len(points) > 0 {
		rec.Origin = &points[0]
	}
	if len(points) > 1 {
		rec.Destination = &points[1]
	}
	return rec
}

// findDateHeader scans top-down for the first printed long date; the line
// right after it, when it is a bare clock time, is the trip time.
func findDateHeader(lines []string) (dateText, timeText string) {
	for i, line := range lines {
		norm := textutil.Normalize(line)
		if !dateHeaderRe.MatchString(norm) || !strings.Contains(norm, " de ") {
			continue
		}
		dateText = line
		if i+1 < len(lines) && timeRe.MatchString(lines[i+1]) {
			timeText = lines[i+1]
		}
		return dateText, timeText
	}
	return "", ""
}

// findKeywordValue returns the first amount found on a line whose normalized
// form contains key, trying that line and then the one after it. Occurrences
// that yield no amount do not stop the scan.
func findKeywordValue(lines []string, key string) *float64 {
	for i, line := range lines {
		if !strings.Contains(textutil.Normalize(line), key) {
			continue
		}
		if v := ExtractCurrency(line); v != nil {
			return v
		}
		if i+1 < len(lines) {
			if v := ExtractCurrency(lines[i+1]); v != nil {
				return v
			}
		}
	}
	return nil
}

// findPaymentLine returns the line after the "Pagamentos" section header,
// verbatim.
func findPaymentLine(lines []string) string {
	for i, line := range lines {
		if textutil.Normalize(line) != constants.SectionPayments {
			continue
		}
		if i+1 < len(lines) {
			return lines[i+1]
		}
		return ""
	}
	return ""
}

// findTripInfo reads the two lines after "Informações da viagem": the service
// category, then the distance/duration stats. Distance and duration stay raw
// strings as printed.
func findTripInfo(lines []string) (category, distanceKM, durationMin string) {
	for i, line := range lines {
		if textutil.Normalize(line) != constants.SectionTripInfo {
			continue
		}
		if i+1 < len(lines) {
			category = lines[i+1]
		}
		if i+2 < len(lines) {
			if m := tripStatsRe.FindStringSubmatch(textutil.Normalize(lines[i+2])); m != nil {
				distanceKM, durationMin = m[1], m[2]
			}
		}
		return category, distanceKM, durationMin
	}
	return "", "", ""
}

// tripInfoStart returns the index of the line after the trip-info header, or
// 0 so the point scan covers the whole document when the header is missing.
func tripInfoStart(lines []string) int {
	for i, line := range lines {
		if textutil.Normalize(line) == constants.SectionTripInfo {
			return i + 1
		}
	}
	return 0
}

// collectTripPoints gathers up to two time-marked address groups starting at
// start. Each group is a clock-time line followed by address fragments, ended
// by the next clock time or by the "você viajou" trip-summary boilerplate.
// The boilerplate line itself is never part of an address, but the scan
// resumes on it, so a later clock time can still open the second group. Any
// third time-marked group is dropped.
func collectTripPoints(lines []string, start int) []entity.TripPoint {
	var points []entity.TripPoint
	i := start
	for i < len(lines) {
		if !timeRe.MatchString(lines[i]) {
			i++
			continue
		}
		at := lines[i]
		var frags []string
		j := i + 1
		for j < len(lines) && !timeRe.MatchString(lines[j]) {
			if strings.HasPrefix(textutil.Normalize(lines[j]), constants.TripSummaryPrefix) {
				break
			}
			frags = append(frags, lines[j])
			j++
		}
		points = append(points, entity.TripPoint{Time: at, Address: strings.Join(frags, " ")})
		if len(points) >= 2 {
			break
		}
		i = j
	}
	return points
}
