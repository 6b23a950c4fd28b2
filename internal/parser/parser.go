package parser

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// ExtField declares one field of a vendor-extension layout.
// Kind is "string", "int" or "float"; numeric kinds are validated
// during extraction even though extension values are stored as strings.
type ExtField struct {
	Name     string
	Start    int
	End      int
	Kind     string
	Required bool
}

// ExtLayout declares a vendor-extension line type. Code is either a
// single terminal character or a multi-character suffix (like "EC3").
type ExtLayout struct {
	Code   string
	Name   string
	Fields []ExtField
}

// Config carries parse-time settings. The zero value is not usable
// directly; withDefaults fills it in.
type Config struct {
	Format        Format
	CenturyCutoff int
	ReadArrivals  bool
	Extensions    []ExtLayout
	Logger        *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultConfig returns the settings used by sfile.Parse when no
// options are given.
func DefaultConfig() Config {
	return Config{
		Format:        FormatNordic,
		CenturyCutoff: DefaultCenturyCutoff,
		ReadArrivals:  true,
		Logger:        discardLogger,
	}
}

func (c Config) withDefaults() Config {
	if c.Format == 0 {
		c.Format = FormatNordic
	}
	if c.CenturyCutoff == 0 {
		c.CenturyCutoff = DefaultCenturyCutoff
	}
	if c.Logger == nil {
		c.Logger = discardLogger
	}
	return c
}

// Parse converts the full text of one S-file into an Event.
//
// Lines are classified and routed in file order. The first hypocenter
// line populates the header; later ones are kept as alternate
// solutions, never overwriting the primary and never dropped. A file
// with no hypocenter line fails with *MissingHeaderError. A required
// field that cannot be coerced fails with *FieldFormatError. Lines of
// unrecognized type are retained raw and parsing continues.
func Parse(raw string, cfg Config) (*event.Event, error) {
	cfg = cfg.withDefaults()

	lines := strings.Split(raw, "\n")
	b := event.NewBuilder()
	b.SetRaw(raw, lines)

	headerSet := false
	var originDate time.Time

	for idx, ln := range lines {
		n := idx + 1
		line := strings.TrimRight(ln, "\r")
		t := Classify(line, cfg.Format)

		switch t {
		case TypeBlank:
			continue

		case TypeHypocenter:
			h, err := parseHypocenter(line, n, hypocenterSpans, cfg.CenturyCutoff)
			if err != nil {
				return nil, err
			}
			if !headerSet {
				b.SetHeader(h)
				headerSet = true
				originDate = h.OriginTime
			} else {
				// The format reuses type 1 for revised solutions; the
				// first line wins and the rest become alternates.
				b.AddAlternate(h)
			}

		case TypePhase:
			if !cfg.ReadArrivals {
				continue
			}
			p, err := parsePhase(line, n, originDate, headerSet, cfg.Format)
			if err != nil {
				return nil, err
			}
			b.AddPhase(p)

		case TypeMacroseismic:
			b.AddMacroseismic(bodyText(line))

		case TypeComment:
			b.AddComment(bodyText(line))

		case TypeWaveform:
			b.AddWaveform(bodyText(line))

		case TypeErrorEst:
			u, err := parseErrorEst(line, n)
			if err != nil {
				return nil, err
			}
			b.SetUncertainty(u)

		case TypeFaultPlane:
			fp, err := parseFaultPlane(line, n)
			if err != nil {
				return nil, err
			}
			b.AddFaultPlaneSolution(fp)

		case TypeHighAccuracy:
			h, err := parseHypocenter(line, n, highAccuracySpans, cfg.CenturyCutoff)
			if err != nil {
				return nil, err
			}
			b.SetHighAccuracy(h)

		case TypeID:
			f, err := extract(line, n, idSpans)
			if err != nil {
				return nil, err
			}
			b.SetID(f.Str("id"))

		case TypePicture:
			b.AddPicture(bodyText(line))

		case TypeExplosion:
			x, err := parseExplosion(line, n)
			if err != nil {
				return nil, err
			}
			b.AddExplosion(x)

		case TypeMacroMap:
			if tok := strings.Fields(line); len(tok) > 0 {
				b.AddMacroMap(tok[0])
			}

		case TypeMomentTensor, TypeSpectral:
			// Recognized codes without a structured slot yet; keep raw
			// so nothing is lost.
			b.AddUnknown(n, line)

		default: // TypeUnknown
			if x, ok, err := matchExtension(line, n, cfg.Extensions); err != nil {
				return nil, err
			} else if ok {
				b.AddExtension(x)
			} else {
				cfg.Logger.Debug("unrecognized line retained raw", "line", n)
				b.AddUnknown(n, line)
			}
		}
	}

	if !headerSet {
		return nil, &MissingHeaderError{Lines: len(lines)}
	}
	return b.Build(), nil
}

func bodyText(line string) string {
	return strings.TrimSpace(slice(line, 1, 79))
}

// parseHypocenter decodes a type 1 or type H line. The same assembly
// serves both; only the span table differs.
func parseHypocenter(line string, n int, spans []span, cutoff int) (event.Hypocenter, error) {
	f, err := extract(line, n, spans)
	if err != nil {
		return event.Hypocenter{}, err
	}

	year := resolveYear(f.Int("year").Value, cutoff)
	sec := f.Float("second").Or(0)
	whole, frac := math.Modf(sec)

	h := event.Hypocenter{
		OriginTime: time.Date(
			year, time.Month(f.Int("month").Value), f.Int("day").Value,
			f.Int("hour").Or(0), f.Int("minute").Or(0),
			int(whole), int(frac*float64(time.Second)), time.UTC),
		DistanceIndicator: f.Str("dist_indicator"),
		EventType:         f.Str("event_type"),
		Latitude:          f.Float("latitude"),
		Longitude:         f.Float("longitude"),
		Depth:             f.Float("depth"),
		FixedDepth:        f.Str("depth_indicator") == "F",
		Agency:            f.Str("agency"),
		StationCount:      f.Int("n_stations"),
		RMS:               f.Float("rms"),
	}

	for _, slot := range []string{"mag1", "mag2", "mag3"} {
		v := f.Float(slot)
		if !v.Valid {
			continue
		}
		h.Magnitudes = append(h.Magnitudes, event.Magnitude{
			Value:  v,
			Type:   f.Str(slot + "_type"),
			Agency: f.Str(slot + "_agency"),
		})
	}
	return h, nil
}

// parsePhase decodes a phase-arrival line. The arrival date comes from
// the header's origin time when one has been seen; hour values 24-47
// denote an arrival on the following day.
func parsePhase(line string, n int, originDate time.Time, haveDate bool, format Format) (event.Phase, error) {
	spans := phaseSpans
	if format == FormatNordic2 {
		spans = phaseNordic2Spans
	}
	f, err := extract(line, n, spans)
	if err != nil {
		return event.Phase{}, err
	}

	hour := f.Int("hour").Value
	dayAdd := 0
	if hour >= 24 {
		hour -= 24
		dayAdd = 1
	}
	sec := f.Float("second").Or(0)
	whole, frac := math.Modf(sec)

	base := originDate
	if !haveDate {
		base = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	arr := time.Date(base.Year(), base.Month(), base.Day()+dayAdd,
		hour, f.Int("minute").Value, int(whole), int(frac*float64(time.Second)), time.UTC)

	return event.Phase{
		Station:          f.Str("station"),
		Instrument:       f.Str("instrument"),
		Component:        f.Str("component"),
		Network:          f.Str("network"),
		Location:         f.Str("location"),
		Quality:          f.Str("quality"),
		Name:             f.Str("phase"),
		Weight:           f.Str("weight"),
		Polarity:         f.Str("polarity"),
		Agency:           f.Str("agency"),
		Operator:         f.Str("operator"),
		ArrivalTime:      arr,
		Amplitude:        f.Float("amplitude"),
		Period:           f.Float("period"),
		AngleOfIncidence: f.Float("ain"),
		TimeResidual:     f.Float("tres"),
		Distance:         f.Float("distance"),
		Azimuth:          f.Float("azimuth"),
	}, nil
}

func parseErrorEst(line string, n int) (event.Uncertainty, error) {
	f, err := extract(line, n, errorEstSpans)
	if err != nil {
		return event.Uncertainty{}, err
	}
	return event.Uncertainty{
		Gap:           f.Float("gap"),
		OriginTimeErr: f.Float("otime_err"),
		LatitudeErr:   f.Float("lat_err"),
		LongitudeErr:  f.Float("lon_err"),
		DepthErr:      f.Float("depth_err"),
	}, nil
}

func parseFaultPlane(line string, n int) (event.FaultPlaneSolution, error) {
	f, err := extract(line, n, faultPlaneSpans)
	if err != nil {
		return event.FaultPlaneSolution{}, err
	}
	return event.FaultPlaneSolution{
		Strike:         f.Float("strike"),
		Dip:            f.Float("dip"),
		Rake:           f.Float("rake"),
		StrikeErr:      f.Float("strike_err"),
		DipErr:         f.Float("dip_err"),
		RakeErr:        f.Float("rake_err"),
		FitErr:         f.Float("fit_err"),
		StaDistRatio:   f.Float("sta_dist_ratio"),
		AmplitudeRatio: f.Float("amp_ratio"),
		BadPolarities:  f.Int("n_bad_pol"),
		BadAmplitudes:  f.Int("n_bad_amp"),
		Agency:         f.Str("agency"),
		Program:        f.Str("program"),
		Quality:        f.Str("quality"),
	}, nil
}

func parseExplosion(line string, n int) (event.Explosion, error) {
	f, err := extract(line, n, explosionSpans)
	if err != nil {
		return event.Explosion{}, err
	}
	return event.Explosion{
		Info:   f.Str("info"),
		Charge: f.Float("charge"),
		Extra:  f.Str("extra"),
	}, nil
}

// matchExtension tries user-supplied layouts against an otherwise
// unrecognized line. Single-character codes match the terminal column;
// longer codes match as a trailing suffix.
func matchExtension(line string, n int, exts []ExtLayout) (event.Extension, bool, error) {
	trimmed := strings.TrimRight(line, " ")
	for _, ext := range exts {
		if len(ext.Code) == 1 {
			if terminal(line) != ext.Code[0] {
				continue
			}
		} else if !strings.HasSuffix(trimmed, ext.Code) {
			continue
		}

		spans := make([]span, len(ext.Fields))
		for i, fd := range ext.Fields {
			k := kindString
			switch fd.Kind {
			case "int":
				k = kindInt
			case "float":
				k = kindFloat
			}
			spans[i] = span{name: fd.Name, start: fd.Start, end: fd.End, kind: k, required: fd.Required}
		}
		f, err := extract(line, n, spans)
		if err != nil {
			return event.Extension{}, false, err
		}

		out := event.Extension{Name: ext.Name, Line: n, Fields: make(map[string]string, len(f))}
		for name, v := range f {
			if !v.present {
				continue
			}
			out.Fields[name] = strings.TrimSpace(v.raw)
		}
		return out, true, nil
	}
	return event.Extension{}, false, nil
}
