package entity

import "github.com/google/uuid"

// TripPoint is a pickup or dropoff: the time printed on the receipt and the
// address fragments that follow it, joined with single spaces.
type TripPoint struct {
	Time    string `json:"time"`
	Address string `json:"address"`
}

// ReceiptRecord holds the fields extracted from one Uber receipt PDF.
// Every field besides ID and FileName is best-effort: a nil pointer or empty
// string means the receipt did not yield that field, never that the parse
// failed. Records are immutable after the parser returns them.
type ReceiptRecord struct {
	ID       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`

	DateText string `json:"date_text,omitempty"`
	TimeText string `json:"time_text,omitempty"`
	// DateKey is the YYYYMMDD sort key derived from DateText, or "" when the
	// printed date could not be normalized.
	DateKey string `json:"date_key,omitempty"`

	Total             *float64 `json:"total,omitempty"`
	TripPrice         *float64 `json:"trip_price,omitempty"`
	IntermediationFee *float64 `json:"intermediation_fee,omitempty"`
	FixedCost         *float64 `json:"fixed_cost,omitempty"`
	Promotion         *float64 `json:"promotion,omitempty"`

	PaymentLine string `json:"payment_line,omitempty"`
	Category    string `json:"category,omitempty"`
	DistanceKM  string `json:"distance_km,omitempty"`
	DurationMin string `json:"duration_min,omitempty"`

	Origin      *TripPoint `json:"origin,omitempty"`
	Destination *TripPoint `json:"destination,omitempty"`
}
