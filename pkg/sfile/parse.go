package sfile

import (
	"github.com/seisio/sfile-go/internal/parser"
	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// Parse converts the full text of one S-file into an Event.
//
// Return values:
//   - (*Event, nil): fully parsed event
//   - (nil, *MissingHeaderError): no hypocenter line in the file
//   - (nil, *FieldFormatError): a column range holds a value that
//     cannot be coerced to its semantic type
//
// Parse is a pure function of its input: no filesystem access, no
// shared state. It is safe to call from multiple goroutines.
//
// Example:
//
//	ev, err := sfile.Parse(text)
//	var ffe *sfile.FieldFormatError
//	if errors.As(err, &ffe) {
//	    log.Printf("bad input at line %d cols %d-%d: %q",
//	        ffe.Line, ffe.Start+1, ffe.End, ffe.Raw)
//	}
func Parse(raw string, opts ...Option) (*event.Event, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return parser.Parse(raw, cfg)
}

// LineType classifies one 80-column line; see ClassifyLine.
type LineType = parser.LineType

// Line-type tags returned by ClassifyLine.
const (
	TypeUnknown      = parser.TypeUnknown
	TypeBlank        = parser.TypeBlank
	TypeHypocenter   = parser.TypeHypocenter
	TypePhase        = parser.TypePhase
	TypeMacroseismic = parser.TypeMacroseismic
	TypeComment      = parser.TypeComment
	TypeWaveform     = parser.TypeWaveform
	TypeErrorEst     = parser.TypeErrorEst
	TypeFaultPlane   = parser.TypeFaultPlane
	TypeHighAccuracy = parser.TypeHighAccuracy
	TypeID           = parser.TypeID
	TypeMomentTensor = parser.TypeMomentTensor
	TypePicture      = parser.TypePicture
	TypeSpectral     = parser.TypeSpectral
	TypeExplosion    = parser.TypeExplosion
	TypeMacroMap     = parser.TypeMacroMap
)

// ClassifyLine determines the type of a single line without parsing a
// whole file. Useful when following a file that is still being
// written (see the watch command).
func ClassifyLine(line string, opts ...Option) (LineType, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return TypeUnknown, err
	}
	return parser.Classify(line, cfg.Format), nil
}
