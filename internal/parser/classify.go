// Package parser implements the Nordic S-file line-dispatch parser.
//
// A Nordic file is a sequence of 80-column lines; the character in
// column 80 carries the line type. Classification inspects that
// terminal character plus a few structural cues, extraction slices
// typed fields out of fixed column spans, and the record parser routes
// each line's fields into one event.Event.
package parser

import "strings"

// LineType classifies one 80-column line. The set is closed: anything
// the classifier does not recognize is TypeUnknown, never an error.
type LineType int

const (
	TypeUnknown LineType = iota
	TypeBlank
	TypeHypocenter   // '1'
	TypePhase        // ' ' with station and phase present
	TypeMacroseismic // '2'
	TypeComment      // '3'
	TypeWaveform     // '6'
	TypeErrorEst     // 'E' with GAP= marker
	TypeFaultPlane   // 'F'
	TypeHighAccuracy // 'H'
	TypeID           // 'I'
	TypeMomentTensor // 'M'
	TypePicture      // 'P'
	TypeSpectral     // 'S'
	TypeExplosion    // "EC3" suffix
	TypeMacroMap     // "MACRO3" suffix
)

var lineTypeNames = map[LineType]string{
	TypeUnknown:      "unknown",
	TypeBlank:        "blank",
	TypeHypocenter:   "hypocenter",
	TypePhase:        "phase",
	TypeMacroseismic: "macroseismic",
	TypeComment:      "comment",
	TypeWaveform:     "waveform",
	TypeErrorEst:     "error_estimate",
	TypeFaultPlane:   "fault_plane",
	TypeHighAccuracy: "high_accuracy",
	TypeID:           "id",
	TypeMomentTensor: "moment_tensor",
	TypePicture:      "picture",
	TypeSpectral:     "spectral",
	TypeExplosion:    "explosion",
	TypeMacroMap:     "macro_map",
}

// String implements fmt.Stringer.
func (t LineType) String() string {
	if s, ok := lineTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// terminalCol is the 0-based index of the line-type character.
const terminalCol = 79

// Classify determines the type of one raw line. Lines shorter than 80
// columns are treated as right-padded with blanks. format selects the
// phase-line layout generation (FormatNordic or FormatNordic2), which
// affects where the structural phase cues live.
func Classify(line string, format Format) LineType {
	if strings.TrimSpace(line) == "" {
		return TypeBlank
	}

	// Suffix cues outrank the terminal character: EC3 and MACRO3 lines
	// reuse '3' as their terminal code.
	trimmed := strings.TrimRight(line, " ")
	if strings.HasSuffix(trimmed, "EC3") {
		return TypeExplosion
	}
	if strings.HasSuffix(trimmed, "MACRO3") {
		return TypeMacroMap
	}

	switch terminal(line) {
	case '1':
		return TypeHypocenter
	case '2':
		return TypeMacroseismic
	case '3':
		return TypeComment
	case '6':
		return TypeWaveform
	case 'E':
		// The GAP= marker separates error-estimate lines from vendor
		// lines that happen to end in E.
		if slice(line, 1, 5) == "GAP=" {
			return TypeErrorEst
		}
		return TypeUnknown
	case 'F':
		return TypeFaultPlane
	case 'H':
		return TypeHighAccuracy
	case 'I':
		return TypeID
	case 'M':
		return TypeMomentTensor
	case 'P':
		return TypePicture
	case 'S':
		return TypeSpectral
	case ' ':
		// A blank terminal marks a phase line, but only when a station
		// code and phase name actually occupy their columns. Anything
		// else is retained raw.
		if hasPhaseCues(line, format) {
			return TypePhase
		}
		return TypeUnknown
	default:
		return TypeUnknown
	}
}

// terminal returns the line-type character, blank-padding short lines.
func terminal(line string) byte {
	if len(line) <= terminalCol {
		return ' '
	}
	return line[terminalCol]
}

// hasPhaseCues reports whether the station and phase columns are
// non-blank for the given format generation.
func hasPhaseCues(line string, format Format) bool {
	sta := strings.TrimSpace(slice(line, 1, 6))
	var phase string
	if format == FormatNordic2 {
		phase = strings.TrimSpace(slice(line, 16, 24))
	} else {
		phase = strings.TrimSpace(slice(line, 10, 14))
	}
	return sta != "" && phase != ""
}
