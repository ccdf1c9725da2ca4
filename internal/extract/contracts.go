package extract

import "context"

// TextExtractor is stage 1: receipt file -> raw text, one call per file.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Result carries the extracted text plus bookkeeping for logs.
type Result struct {
	Text  string
	Pages int
}
