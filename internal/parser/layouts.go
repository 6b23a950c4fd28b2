package parser

// Format selects the phase-line layout generation.
type Format int

const (
	// FormatNordic is the classic layout used by Seisan before v12.
	FormatNordic Format = 1
	// FormatNordic2 is the layout introduced with Seisan v12.
	FormatNordic2 Format = 2
)

// DefaultCenturyCutoff resolves two-digit years: values at or above the
// cutoff belong to the 1900s, values below it to the 2000s. The cutoff
// is a legacy-format ambiguity, kept configurable rather than buried.
const DefaultCenturyCutoff = 50

// kind is the semantic type of one extracted field.
type kind int

const (
	kindString kind = iota
	kindInt
	kindFloat
	kindChar // single column, kept as a string
)

// span declares one field of a line type: a fixed half-open column
// range (0-based), its semantic kind, and whether a blank is fatal.
type span struct {
	name     string
	start    int
	end      int
	kind     kind
	required bool
}

// Column tables per line type. Offsets follow the Nordic format
// description shipped with Seisan; they are constants of the format,
// never derived at runtime.

var hypocenterSpans = []span{
	{"year", 1, 5, kindInt, true},
	{"month", 6, 8, kindInt, true},
	{"day", 8, 10, kindInt, true},
	{"hour", 11, 13, kindInt, false},
	{"minute", 13, 15, kindInt, false},
	{"second", 16, 20, kindFloat, false},
	{"dist_indicator", 21, 22, kindChar, false},
	{"event_type", 22, 23, kindChar, false},
	{"latitude", 23, 30, kindFloat, false},
	{"longitude", 30, 38, kindFloat, false},
	{"depth", 38, 43, kindFloat, false},
	{"depth_indicator", 43, 44, kindChar, false},
	{"agency", 45, 48, kindString, false},
	{"n_stations", 48, 51, kindInt, false},
	{"rms", 51, 55, kindFloat, false},
	{"mag1", 55, 59, kindFloat, false},
	{"mag1_type", 59, 60, kindChar, false},
	{"mag1_agency", 60, 63, kindString, false},
	{"mag2", 63, 67, kindFloat, false},
	{"mag2_type", 67, 68, kindChar, false},
	{"mag2_agency", 68, 71, kindString, false},
	{"mag3", 71, 75, kindFloat, false},
	{"mag3_type", 75, 76, kindChar, false},
	{"mag3_agency", 76, 79, kindString, false},
}

// High-accuracy hypocenter lines mirror type 1 with wider columns.
var highAccuracySpans = []span{
	{"year", 1, 5, kindInt, true},
	{"month", 6, 8, kindInt, true},
	{"day", 8, 10, kindInt, true},
	{"hour", 11, 13, kindInt, false},
	{"minute", 13, 15, kindInt, false},
	{"second", 16, 22, kindFloat, false},
	{"latitude", 23, 32, kindFloat, false},
	{"longitude", 33, 43, kindFloat, false},
	{"depth", 44, 52, kindFloat, false},
	{"rms", 53, 59, kindFloat, false},
}

var phaseSpans = []span{
	{"station", 1, 6, kindString, true},
	{"instrument", 6, 7, kindChar, false},
	{"component", 7, 8, kindChar, false},
	{"quality", 9, 10, kindChar, false},
	{"phase", 10, 14, kindString, true},
	{"weight", 14, 15, kindChar, false},
	{"polarity", 16, 17, kindChar, false},
	{"hour", 18, 20, kindInt, true},
	{"minute", 20, 22, kindInt, true},
	{"second", 22, 28, kindFloat, false},
	{"amplitude", 33, 40, kindFloat, false},
	{"period", 41, 45, kindFloat, false},
	{"ain", 56, 60, kindFloat, false},
	{"tres", 63, 68, kindFloat, false},
	{"distance", 70, 75, kindFloat, false},
	{"azimuth", 75, 79, kindFloat, false},
}

var phaseNordic2Spans = []span{
	{"station", 1, 6, kindString, true},
	{"component", 6, 9, kindString, false},
	{"network", 10, 12, kindString, false},
	{"location", 12, 14, kindString, false},
	{"quality", 15, 16, kindChar, false},
	{"phase", 16, 24, kindString, true},
	{"weight", 24, 25, kindChar, false},
	{"hour", 26, 28, kindInt, true},
	{"minute", 28, 30, kindInt, true},
	{"second", 31, 37, kindFloat, false},
	{"amplitude", 37, 44, kindFloat, false},
	{"period", 44, 50, kindFloat, false},
	{"agency", 51, 54, kindString, false},
	{"operator", 55, 58, kindString, false},
	{"ain", 59, 63, kindFloat, false},
	{"tres", 63, 68, kindFloat, false},
	{"distance", 70, 75, kindFloat, false},
	{"azimuth", 76, 79, kindFloat, false},
}

var errorEstSpans = []span{
	{"gap", 5, 8, kindFloat, false},
	{"otime_err", 14, 20, kindFloat, false},
	{"lat_err", 23, 30, kindFloat, false},
	{"lon_err", 31, 38, kindFloat, false},
	{"depth_err", 38, 43, kindFloat, false},
}

var faultPlaneSpans = []span{
	{"strike", 0, 10, kindFloat, false},
	{"dip", 10, 20, kindFloat, false},
	{"rake", 20, 30, kindFloat, false},
	{"strike_err", 30, 35, kindFloat, false},
	{"dip_err", 35, 40, kindFloat, false},
	{"rake_err", 40, 45, kindFloat, false},
	{"fit_err", 45, 50, kindFloat, false},
	{"sta_dist_ratio", 50, 55, kindFloat, false},
	{"amp_ratio", 55, 60, kindFloat, false},
	{"n_bad_pol", 60, 62, kindInt, false},
	{"n_bad_amp", 63, 65, kindInt, false},
	{"agency", 66, 69, kindString, false},
	{"program", 70, 77, kindString, false},
	{"quality", 77, 78, kindChar, false},
}

var explosionSpans = []span{
	{"info", 1, 11, kindString, false},
	{"charge", 12, 22, kindFloat, false},
	{"extra", 23, 77, kindString, false},
}

var idSpans = []span{
	{"action", 8, 11, kindString, false},
	{"operator", 30, 35, kindString, false},
	{"id", 60, 74, kindString, false},
}

// Text body of comment-style lines (types 2, 3, 6 and P).
var bodySpans = []span{
	{"text", 1, 79, kindString, false},
}
