package pdf

import "fmt"

// MalformedDocumentError indicates the byte stream could not be decoded as a
// PDF container at all. Nothing downstream can proceed, so callers treat this
// as fatal.
type MalformedDocumentError struct {
	Op  string
	Err error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed document: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("malformed document: %s", e.Op)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}
