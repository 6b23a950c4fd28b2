package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// value is one extracted field. A blank column range yields a value
// with present=false; the literal blank string never escapes the
// extractor.
type value struct {
	kind    kind
	raw     string // untrimmed substring, for error reporting
	str     string
	f       float64
	i       int
	present bool
}

// fields maps field names to extracted values for one line.
type fields map[string]value

// slice returns the half-open column range [start,end) of line,
// treating short lines as right-padded with blanks.
func slice(line string, start, end int) string {
	if start >= len(line) {
		return strings.Repeat(" ", end-start)
	}
	if end > len(line) {
		return line[start:] + strings.Repeat(" ", end-len(line))
	}
	return line[start:end]
}

var errBlankRequired = errors.New("required field is blank")

// extract decodes one line against a span table. It is a pure function
// of its inputs. lineNo is 1-based and only used for error reporting.
func extract(line string, lineNo int, spans []span) (fields, error) {
	out := make(fields, len(spans))
	for _, sp := range spans {
		raw := slice(line, sp.start, sp.end)
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			if sp.required {
				return nil, &FieldFormatError{
					Line:  lineNo,
					Field: sp.name,
					Start: sp.start,
					End:   sp.end,
					Raw:   raw,
					Cause: errBlankRequired,
				}
			}
			out[sp.name] = value{kind: sp.kind, raw: raw}
			continue
		}

		v := value{kind: sp.kind, raw: raw, present: true}
		switch sp.kind {
		case kindString, kindChar:
			v.str = trimmed
		case kindInt:
			n, err := strconv.Atoi(trimmed)
			if err != nil {
				return nil, &FieldFormatError{
					Line:  lineNo,
					Field: sp.name,
					Start: sp.start,
					End:   sp.end,
					Raw:   raw,
					Cause: err,
				}
			}
			v.i = n
		case kindFloat:
			f, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return nil, &FieldFormatError{
					Line:  lineNo,
					Field: sp.name,
					Start: sp.start,
					End:   sp.end,
					Raw:   raw,
					Cause: err,
				}
			}
			v.f = f
		}
		out[sp.name] = v
	}
	return out, nil
}

// Float returns the named field as an optional float.
func (f fields) Float(name string) event.Float {
	v := f[name]
	if !v.present {
		return event.Float{}
	}
	return event.FloatOf(v.f)
}

// Int returns the named field as an optional int.
func (f fields) Int(name string) event.Int {
	v := f[name]
	if !v.present {
		return event.Int{}
	}
	return event.IntOf(v.i)
}

// Str returns the named field trimmed, "" when absent.
func (f fields) Str(name string) string {
	return f[name].str
}

// resolveYear applies the century-inference rule to two-digit years.
// Four-digit years pass through unchanged.
func resolveYear(yy, cutoff int) int {
	if yy >= 100 {
		return yy
	}
	if yy >= cutoff {
		return 1900 + yy
	}
	return 2000 + yy
}
