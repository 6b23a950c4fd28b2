package parser

import "fmt"

// MissingHeaderError reports a file with no hypocenter line. The parse
// produces no Event at all in this case.
type MissingHeaderError struct {
	Lines int // number of lines inspected
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("no hypocenter line found in %d lines", e.Lines)
}

// FieldFormatError reports a field whose column range holds something
// that cannot be coerced to its semantic type. Start and End are
// 0-based half-open column offsets; Line is 1-based.
type FieldFormatError struct {
	Line  int
	Field string
	Start int
	End   int
	Raw   string
	Cause error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("line %d: field %q (cols %d-%d): cannot parse %q: %v",
		e.Line, e.Field, e.Start+1, e.End, e.Raw, e.Cause)
}

// Unwrap returns the underlying conversion error.
func (e *FieldFormatError) Unwrap() error {
	return e.Cause
}
