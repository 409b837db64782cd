package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a scan root that does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrNotDirectory reports a directory-scan root that is a regular file
	// or other non-directory.
	ErrNotDirectory = errors.New("path is not a directory")
)

// ParseError wraps a per-file read or parse failure. Directory scans
// record it out-of-band and keep going; it never aborts the scan.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
