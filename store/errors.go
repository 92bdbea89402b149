package store

import (
	"fmt"
)

// ReadError is returned when the store file cannot be read or a record in
// it cannot be parsed. Loading degrades to an empty ledger alongside this
// error; refusing to start would be worse for a personal tool.
type ReadError struct {
	Path       string
	Line       int // 1-based record line, 0 when the whole file failed
	Underlying error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: failed to read ledger: %v", e.Path, e.Line, e.Underlying)
	}
	return fmt.Sprintf("%s: failed to read ledger: %v", e.Path, e.Underlying)
}

func (e *ReadError) Unwrap() error {
	return e.Underlying
}

// WriteError is returned when rewriting the store file fails. The
// in-memory mutation that triggered the save is kept; memory and disk can
// diverge after this error.
type WriteError struct {
	Path       string
	Underlying error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: failed to write ledger: %v", e.Path, e.Underlying)
}

func (e *WriteError) Unwrap() error {
	return e.Underlying
}

// NewReadError creates an error for a failed or unparseable load.
func NewReadError(path string, line int, err error) *ReadError {
	return &ReadError{Path: path, Line: line, Underlying: err}
}

// NewWriteError creates an error for a failed save.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Underlying: err}
}
