package report

import (
	"sort"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
)

// SortKey is the composite ordering key for a record: date then time,
// lexicographic. Records missing the date or time sort first.
func SortKey(r entity.ReceiptRecord) string {
	date := r.DateKey
	if date == "" {
		date = "00000000"
	}
	at := r.TimeText
	if at == "" {
		at = "00:00"
	}
	return date + "_" + at
}

// SortRecords returns a copy of records ordered ascending by SortKey.
func SortRecords(records []entity.ReceiptRecord) []entity.ReceiptRecord {
	out := make([]entity.ReceiptRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return SortKey(out[i]) < SortKey(out[j]) })
	return out
}
