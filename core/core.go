// Package core implements the automation-potential and technology-impact
// forecasting engine. Every operation is pure, synchronous computation over
// plain records: no network, file, or environment access happens here, and
// identical inputs always produce identical outputs.
package core

import "errors"

// Sentinel errors surfaced by engine operations. Insufficient historical
// data is NOT an error: correlation analysis degrades to a fixed
// low-confidence result instead.
var (
	// ErrMissingIndustryData means the requested industry is absent from a
	// technology's impact list.
	ErrMissingIndustryData = errors.New("core: industry not present in technology impact data")

	// ErrInvalidInput means a caller supplied a record the engine cannot
	// score: a nil technology, a non-positive projection horizon, or an
	// empty list where a metric requires at least one entry.
	ErrInvalidInput = errors.New("core: invalid input")
)
