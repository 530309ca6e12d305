// Package importerror defines the error types surfaced by the import and
// schedule engines. Unparseable cell values never become errors (they
// default); these types cover the cases that are reported to callers.
package importerror

import "fmt"

// ValidationError represents an input-validation failure that is surfaced
// to the caller immediately, such as an invalid term length. It is never
// silently coerced.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// LayoutError represents a malformed positional column layout. Layouts are
// validated once at the normalizer boundary.
type LayoutError struct {
	Column string
	Msg    string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid column layout: %s: %s", e.Column, e.Msg)
}

// StoreError wraps a collaborator persistence failure for one record
// during bulk import. It is tallied per record, never aborts the batch.
type StoreError struct {
	Op     string
	Record string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s failed for record '%s': %v", e.Op, e.Record, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
