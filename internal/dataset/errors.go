// Package dataset loads the passenger manifest from a delimited text file.
package dataset

import "fmt"

// LoadError represents an error reading or decoding the passenger file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// TypeCoercionError represents a field that could not be converted to its column type
type TypeCoercionError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Cause  error
}

func (e *TypeCoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("row %d, column %s: cannot coerce %q: %v", e.Row, e.Column, e.Value, e.Cause)
	}
	return fmt.Sprintf("row %d, column %s: cannot coerce %q", e.Row, e.Column, e.Value)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Cause
}
