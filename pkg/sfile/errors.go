package sfile

import "github.com/seisio/sfile-go/internal/parser"

// MissingHeaderError reports a file with no hypocenter line. The parse
// fails as a whole; no partial Event is returned.
type MissingHeaderError = parser.MissingHeaderError

// FieldFormatError reports a field whose column range cannot be
// coerced to its semantic type. It carries the 1-based line number,
// the column range and the offending raw substring, precise enough to
// locate the malformed input.
type FieldFormatError = parser.FieldFormatError
