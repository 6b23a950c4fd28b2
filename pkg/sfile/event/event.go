// Package event defines the structured representation of one seismic
// event parsed from a Nordic S-file.
//
// An Event is immutable after construction. Parsers assemble it through
// a Builder; consumers read it through accessors. Derived quantities
// (travel times) are computed lazily and cached without touching the
// originally parsed fields.
package event

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Magnitude is one magnitude reading from a hypocenter line.
// A Nordic type 1 line carries up to three of these.
type Magnitude struct {
	Value  Float  `json:"value"`
	Type   string `json:"type,omitempty"`   // single-char tag: L, b, B, s, S, W, C
	Agency string `json:"agency,omitempty"` // reporting agency, e.g. HRV, PDE
}

// Hypocenter is the event summary carried by a type 1 (or type H) line.
type Hypocenter struct {
	OriginTime        time.Time `json:"origin_time"`
	DistanceIndicator string    `json:"distance_indicator,omitempty"` // L local, R regional, D distant
	EventType         string    `json:"event_type,omitempty"`         // E explosion, P probable explosion, ...
	Latitude          Float     `json:"latitude"`
	Longitude         Float     `json:"longitude"`
	Depth             Float     `json:"depth"` // km
	FixedDepth        bool      `json:"fixed_depth,omitempty"`
	Agency            string    `json:"agency,omitempty"`
	StationCount      Int       `json:"station_count"`
	RMS               Float     `json:"rms"`
	Magnitudes        []Magnitude `json:"magnitudes,omitempty"`
}

// Mag returns the first (preferred) magnitude, if any.
func (h Hypocenter) Mag() (Magnitude, bool) {
	if len(h.Magnitudes) == 0 {
		return Magnitude{}, false
	}
	return h.Magnitudes[0], true
}

// Phase is one station's arrival reading from a phase line.
// Order of phases follows file order.
type Phase struct {
	Station    string `json:"station"`
	Instrument string `json:"instrument,omitempty"`
	Component  string `json:"component,omitempty"`
	Network    string `json:"network,omitempty"`  // nordic2 only
	Location   string `json:"location,omitempty"` // nordic2 only
	Quality    string `json:"quality,omitempty"`  // onset quality: I or E
	Name       string `json:"phase"`              // P, Pg, Sn, IAML, ...
	Weight     string `json:"weight,omitempty"`   // weighting indicator
	Polarity   string `json:"polarity,omitempty"` // first motion: C or D
	Agency     string `json:"agency,omitempty"`   // nordic2 only
	Operator   string `json:"operator,omitempty"` // nordic2 only

	ArrivalTime time.Time `json:"arrival_time"`

	Amplitude        Float `json:"amplitude"` // nm, when the row carries one
	Period           Float `json:"period"`    // s
	AngleOfIncidence Float `json:"angle_of_incidence"`
	TimeResidual     Float `json:"time_residual"`
	Distance         Float `json:"distance"` // epicentral, km
	Azimuth          Float `json:"azimuth"`  // degrees
}

// IsAmplitude reports whether this row is an amplitude reading rather
// than a timed onset pick.
func (p Phase) IsAmplitude() bool {
	return p.Amplitude.Valid
}

// FaultPlaneSolution is one focal mechanism from a type F line.
// Zero or more per event; agencies may contribute competing solutions.
type FaultPlaneSolution struct {
	Strike Float `json:"strike"`
	Dip    Float `json:"dip"`
	Rake   Float `json:"rake"`

	StrikeErr Float `json:"strike_err"`
	DipErr    Float `json:"dip_err"`
	RakeErr   Float `json:"rake_err"`

	FitErr          Float  `json:"fit_err"`
	StaDistRatio    Float  `json:"station_distribution_ratio"`
	AmplitudeRatio  Float  `json:"amplitude_ratio"`
	BadPolarities   Int    `json:"bad_polarities"`
	BadAmplitudes   Int    `json:"bad_amplitudes"`
	Agency          string `json:"agency,omitempty"`
	Program         string `json:"program,omitempty"`
	Quality         string `json:"quality,omitempty"`
}

// Uncertainty holds the hypocenter error estimates from a type E line.
type Uncertainty struct {
	Gap           Float `json:"gap"`            // azimuthal gap, degrees
	OriginTimeErr Float `json:"origin_time_err"` // s
	LatitudeErr   Float `json:"latitude_err"`    // km
	LongitudeErr  Float `json:"longitude_err"`   // km
	DepthErr      Float `json:"depth_err"`       // km
}

// Explosion holds charge information from an EC3 line.
type Explosion struct {
	Info   string `json:"info,omitempty"`
	Charge Float  `json:"charge"` // tons
	Extra  string `json:"extra,omitempty"`
}

// TravelTime is a derived arrival-minus-origin time for one pick.
type TravelTime struct {
	Station  string  `json:"station"`
	Phase    string  `json:"phase"`
	Distance float64 `json:"distance"` // km
	Seconds  float64 `json:"seconds"`
}

// Extension is a vendor-extension line decoded through a user-supplied
// layout (see the layout package). Fields hold the extracted values as
// trimmed strings; numeric fields have been validated against their
// declared kind before being stored.
type Extension struct {
	Name   string            `json:"name"`
	Line   int               `json:"line"` // 1-based line number in the file
	Fields map[string]string `json:"fields"`
}

// RawLine is a line that was retained verbatim because its type code is
// not recognized (or a phase line too incomplete to route).
type RawLine struct {
	Num  int    `json:"num"` // 1-based
	Text string `json:"text"`
}

// Event is the complete parsed representation of one seismic event.
//
// Exactly one primary hypocenter is guaranteed by construction. All
// slice accessors return copies; mutating the returned slices does not
// affect the Event.
type Event struct {
	header       Hypocenter
	alternates   []Hypocenter
	highAccuracy *Hypocenter
	uncertainty  *Uncertainty
	phases       []Phase
	faultPlanes  []FaultPlaneSolution
	comments     []string
	macroseismic []string
	waveforms    []string
	pictures     []string
	macroMaps    []string
	explosions   []Explosion
	id           string
	extensions   []Extension
	unknown      []RawLine
	rawText      string
	rawLines     []string

	ttOnce sync.Once
	ttimes []TravelTime
}

// Header returns the primary hypocenter summary.
func (e *Event) Header() Hypocenter { return e.header }

// OriginTime is shorthand for Header().OriginTime.
func (e *Event) OriginTime() time.Time { return e.header.OriginTime }

// Alternates returns revised or alternate hypocenter solutions: type 1
// lines after the first one, in file order. Never the primary header.
func (e *Event) Alternates() []Hypocenter {
	return append([]Hypocenter(nil), e.alternates...)
}

// HighAccuracy returns the high-accuracy hypocenter from a type H line.
func (e *Event) HighAccuracy() (Hypocenter, bool) {
	if e.highAccuracy == nil {
		return Hypocenter{}, false
	}
	return *e.highAccuracy, true
}

// Uncertainty returns the type E error estimates.
func (e *Event) Uncertainty() (Uncertainty, bool) {
	if e.uncertainty == nil {
		return Uncertainty{}, false
	}
	return *e.uncertainty, true
}

// Phases returns all arrival rows in file order, amplitude rows included.
func (e *Event) Phases() []Phase {
	return append([]Phase(nil), e.phases...)
}

// Picks returns the timed onset picks (rows without an amplitude).
func (e *Event) Picks() []Phase {
	var out []Phase
	for _, p := range e.phases {
		if !p.IsAmplitude() {
			out = append(out, p)
		}
	}
	return out
}

// Amplitudes returns the amplitude-bearing rows (e.g. IAML readings).
func (e *Event) Amplitudes() []Phase {
	var out []Phase
	for _, p := range e.phases {
		if p.IsAmplitude() {
			out = append(out, p)
		}
	}
	return out
}

// FaultPlaneSolutions returns the type F solutions in file order.
func (e *Event) FaultPlaneSolutions() []FaultPlaneSolution {
	return append([]FaultPlaneSolution(nil), e.faultPlanes...)
}

// Comments returns the type 3 comment texts in file order.
func (e *Event) Comments() []string {
	return append([]string(nil), e.comments...)
}

// Macroseismic returns the type 2 macroseismic texts in file order.
func (e *Event) Macroseismic() []string {
	return append([]string(nil), e.macroseismic...)
}

// Waveforms returns the type 6 waveform file references.
func (e *Event) Waveforms() []string {
	return append([]string(nil), e.waveforms...)
}

// Pictures returns the type P picture file references.
func (e *Event) Pictures() []string {
	return append([]string(nil), e.pictures...)
}

// MacroMaps returns the MACRO3 macroseismic map file references.
func (e *Event) MacroMaps() []string {
	return append([]string(nil), e.macroMaps...)
}

// Explosions returns the EC3 explosion records.
func (e *Event) Explosions() []Explosion {
	return append([]Explosion(nil), e.explosions...)
}

// ID returns the event ID from the type I line, or "".
func (e *Event) ID() string { return e.id }

// Extensions returns decoded vendor-extension lines.
func (e *Event) Extensions() []Extension {
	return append([]Extension(nil), e.extensions...)
}

// UnknownLines returns lines whose type code was not recognized,
// retained verbatim with their 1-based line numbers.
func (e *Event) UnknownLines() []RawLine {
	return append([]RawLine(nil), e.unknown...)
}

// RawLines returns every input line in original order.
func (e *Event) RawLines() []string {
	return append([]string(nil), e.rawLines...)
}

// Raw returns the original input text verbatim. Parsing is lossless:
// Raw always equals the string the Event was parsed from.
func (e *Event) Raw() string { return e.rawText }

// TravelTimes computes arrival-minus-origin times for every pick that
// carries a distance. Picks without a distance were not used in the
// location and are skipped, matching Seisan behaviour. The result is
// cached; repeated calls are cheap and parsed fields are never altered.
func (e *Event) TravelTimes() []TravelTime {
	e.ttOnce.Do(func() {
		for _, p := range e.phases {
			if p.IsAmplitude() || !p.Distance.Valid {
				continue
			}
			e.ttimes = append(e.ttimes, TravelTime{
				Station:  p.Station,
				Phase:    p.Name,
				Distance: p.Distance.Value,
				Seconds:  p.ArrivalTime.Sub(e.header.OriginTime).Seconds(),
			})
		}
	})
	return append([]TravelTime(nil), e.ttimes...)
}

// String implements fmt.Stringer.
func (e *Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.header.OriginTime.Format("2006-01-02 15:04:05"))
	sb.WriteString(" event")
	if m, ok := e.header.Mag(); ok && m.Value.Valid {
		sb.WriteString(" M")
		sb.WriteString(m.Type)
		sb.WriteString(" ")
		sb.WriteString(trimFloat(m.Value.Value))
	}
	return sb.String()
}

// one decimal is the catalog convention for magnitudes
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
