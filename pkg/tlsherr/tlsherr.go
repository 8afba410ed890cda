// Package tlsherr defines the three error kinds shared across the TLSH
// packages, so callers can classify a failure with errors.Is regardless
// of which package raised it.
package tlsherr

import "errors"

var (
	// ErrInvalidParameter is returned when a digester or Pearson table is
	// constructed with an out-of-range or otherwise invalid parameter.
	ErrInvalidParameter = errors.New("tlsh: invalid parameter")

	// ErrBadFormat is returned when a packed digest buffer or hex string
	// has an unexpected length or encoding.
	ErrBadFormat = errors.New("tlsh: bad format")

	// ErrMismatched is returned by the scorer when two digests have
	// differing checksum or body lengths and cannot be compared.
	ErrMismatched = errors.New("tlsh: mismatched digest")
)
