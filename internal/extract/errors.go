package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned when extraction succeeds but yields no usable
// text after trimming whitespace.
var ErrEmptyText = errors.New("extracted text is empty")

// UnsupportedTypeError reports a content type outside the allow-list.
type UnsupportedTypeError struct {
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q", e.MIME)
}

// SizeError reports an upload rejected before any extractor ran.
type SizeError struct {
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("upload of %d bytes exceeds the %d byte limit", e.Size, e.Limit)
}

// ExtractionError wraps an underlying extractor failure, naming the
// offending content type. No partial text accompanies it.
type ExtractionError struct {
	MIME string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.MIME, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
