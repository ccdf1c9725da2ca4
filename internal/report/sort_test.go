package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittoria-bank/uber-trip-report/internal/entity"
	"github.com/vittoria-bank/uber-trip-report/internal/report"
)

func TestSortKeyDefaults(t *testing.T) {
	assert.Equal(t, "00000000_00:00", report.SortKey(entity.ReceiptRecord{}))
	assert.Equal(t, "20240101_09:00", report.SortKey(entity.ReceiptRecord{DateKey: "20240101", TimeText: "09:00"}))
	assert.Equal(t, "20240101_00:00", report.SortKey(entity.ReceiptRecord{DateKey: "20240101"}))
}

func TestSortRecordsUnparsableDatesFirst(t *testing.T) {
	records := []entity.ReceiptRecord{
		{FileName: "b.pdf", DateKey: "20240101", TimeText: "09:00"},
		{FileName: "a.pdf", DateKey: "20240101", TimeText: "08:00"},
		{FileName: "x.pdf"}, // no date, no time
	}
	sorted := report.SortRecords(records)

	require.Len(t, sorted, 3)
	assert.Equal(t, "x.pdf", sorted[0].FileName)
	assert.Equal(t, "a.pdf", sorted[1].FileName)
	assert.Equal(t, "b.pdf", sorted[2].FileName)
	// input untouched
	assert.Equal(t, "b.pdf", records[0].FileName)
}
