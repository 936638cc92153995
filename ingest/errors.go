package ingest

import (
	"errors"
)

// Structural errors abort a pipeline stage. Row-level problems never map to
// these; malformed rows are dropped and counted instead.
var (
	// ErrMissingColumn means a required input column is absent entirely.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidDate means an anchor or cutoff date could not be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
