package payslip

import (
	"errors"
	"fmt"
)

var errNoABN = errors.New("no ABN on second head line")

// StructureMismatchError indicates a structural assumption the extractor
// depends on for correctness does not hold: a required anchor label is
// missing or duplicated, a table's column headers cannot be located, or the
// page layout is not the supported family's. No partial record is returned
// past this point; downstream offsets would be meaningless.
type StructureMismatchError struct {
	Detail string
}

func (e *StructureMismatchError) Error() string {
	return "structure mismatch: " + e.Detail
}

// FieldParseError indicates a mandatory field or table cell did not match its
// strict format. A single unparseable mandatory value corrupts trust in the
// whole extraction, so this is fatal rather than a warning.
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

func structureErrorf(format string, args ...any) error {
	return &StructureMismatchError{Detail: fmt.Sprintf(format, args...)}
}
