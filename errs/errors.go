// Package errs defines sentinel errors shared across logfs packages.
package errs

import "errors"

var (
	// ErrInvalidState indicates an operation was attempted in the wrong
	// lifecycle state, e.g. EndRow without an open row.
	ErrInvalidState = errors.New("invalid state")

	// ErrLogFull indicates the data region is exhausted. Once reported,
	// further appends are refused until the log is cleared.
	ErrLogFull = errors.New("log full")

	// ErrNotPresent indicates no valid log store was found on the medium.
	ErrNotPresent = errors.New("log not present")

	// ErrInvalidMetadata indicates the on-flash metadata record failed
	// validation.
	ErrInvalidMetadata = errors.New("invalid metadata")

	// ErrHeadingOverflow indicates the column header line no longer fits
	// in the metadata page, so schema growth was not persisted to the
	// heading slot.
	ErrHeadingOverflow = errors.New("heading region overflow")

	// ErrOutOfRange indicates an address outside the flash geometry.
	ErrOutOfRange = errors.New("address out of range")

	// ErrUnalignedErase indicates an erase address that is not
	// page-aligned.
	ErrUnalignedErase = errors.New("erase address not page aligned")

	// ErrImageTooShort indicates a captured log image that ends before
	// the region being parsed.
	ErrImageTooShort = errors.New("image too short")
)
