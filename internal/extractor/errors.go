package extractor

import "errors"

var (
	// ErrUnsupportedFormat is returned when no parser claims a file.
	ErrUnsupportedFormat = errors.New("no extractor found")

	// ErrAmbiguousFormat is returned when several parsers claim a file
	// in auto-detect mode.
	ErrAmbiguousFormat = errors.New("file format is ambiguous")

	// ErrNoSource is returned when a file needs a source of a given
	// institution type and none exists.
	ErrNoSource = errors.New("source missing")

	// ErrAmbiguousSource is returned when several sources qualify and
	// the file carries nothing to tell them apart.
	ErrAmbiguousSource = errors.New("source is ambiguous")

	// ErrInvalidFile is returned when a file's structure is broken
	// beyond single-row recovery. Extraction of the file aborts.
	ErrInvalidFile = errors.New("file structure is invalid")
)
