package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// Fixture lines are exactly 80 columns wide; the final character is
// the line-type code.
const (
	lineHypo    = " 1996  6 3 1955 35.5 D  47.760 153.227  0.0  TES 12 1.1         5.6WHRV 5.6bPDE1"
	lineAlt     = " 1996  6 3 1955 36.1 D  47.800 153.300 10.0  NEI 15 0.9 5.7WNEI                1"
	lineHigh    = " 1996  6 3 1955 35.512  47.7604   153.2281    0.012   1.123                    H"
	lineID      = "        UPD                   bob                           19960603190055     I"
	lineErrEst  = " GAP=348        2.88     999.9   999.9999.9 -0.1404E+08 -0.3810E+08  0.1205E+09E"
	lineFault   = "      93.2      74.8     -48.2     2                                           F"
	lineHeader7 = " STAT SP IPHASW D HRMM SECON CODA AMPLIT PERI AZIMU VELO AIN AR TRES W  DIS CAZ7"
	linePhase   = " TRO  SZ EP       20 5 32.5                               21    1.7510 6471 343 "
	lineAmp     = " IUPA HN  IAML    20 6 30.78       169.4  0.8                                   "
	lineComment = " This is a comment line                                                        3"
	lineMacro   = " Felt in the entire valley                                                     2"
	lineWave    = " 1996-06-03-2002-18S.TEST__012                                                 6"
	lineExpl    = " QUARRY           2.5  ROUTINE BLAST                                         EC3"
	lineMacMap  = " 1996-06-03-1955-00.MACRO                                                 MACRO3"
	lineVendor  = " VENDOR SPECIFIC PAYLOAD                                                       Z"

	lineNextDay = " ZEL1 SZ EP   0   2515 10.00                                            120  10 "
	linePhase2  = " BER  HHZ NS00 IPg      0 2006  10.55              BER jh   45. 0.10   88.1 123 "
	lineBadLat  = " 1996  6 3 1955 35.5   47.7.60                                                 1"
	lineBare    = " 1996  6 3 1955 35.5                                                           1"
	lineNoSta   = "                  20 5 32.5                                                     "
)

func fullFile() string {
	return strings.Join([]string{
		lineHypo, lineID, lineErrEst, lineFault, lineHeader7,
		linePhase, lineAmp, lineComment, lineMacro, lineWave,
		lineExpl, lineMacMap, lineVendor,
	}, "\n")
}

func mustParse(t *testing.T, raw string) *event.Event {
	t.Helper()
	ev, err := Parse(raw, DefaultConfig())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return ev
}

func TestParse_Header(t *testing.T) {
	ev := mustParse(t, fullFile())
	h := ev.Header()

	wantOrigin := time.Date(1996, time.June, 3, 19, 55, 35, 500000000, time.UTC)
	if !h.OriginTime.Equal(wantOrigin) {
		t.Errorf("OriginTime = %v, want %v", h.OriginTime, wantOrigin)
	}
	if h.DistanceIndicator != "D" {
		t.Errorf("DistanceIndicator = %q, want %q", h.DistanceIndicator, "D")
	}
	if h.EventType != "" {
		t.Errorf("EventType = %q, want empty", h.EventType)
	}
	if !h.Latitude.Valid || h.Latitude.Value != 47.760 {
		t.Errorf("Latitude = %+v, want valid 47.760", h.Latitude)
	}
	if !h.Longitude.Valid || h.Longitude.Value != 153.227 {
		t.Errorf("Longitude = %+v, want valid 153.227", h.Longitude)
	}
	if !h.Depth.Valid || h.Depth.Value != 0.0 {
		t.Errorf("Depth = %+v, want valid 0.0", h.Depth)
	}
	if h.FixedDepth {
		t.Error("FixedDepth = true, want false")
	}
	if h.Agency != "TES" {
		t.Errorf("Agency = %q, want %q", h.Agency, "TES")
	}
	if !h.StationCount.Valid || h.StationCount.Value != 12 {
		t.Errorf("StationCount = %+v, want valid 12", h.StationCount)
	}
	if !h.RMS.Valid || h.RMS.Value != 1.1 {
		t.Errorf("RMS = %+v, want valid 1.1", h.RMS)
	}

	// The first magnitude slot is blank on this line; the two filled
	// slots keep their slot order.
	want := []event.Magnitude{
		{Value: event.FloatOf(5.6), Type: "W", Agency: "HRV"},
		{Value: event.FloatOf(5.6), Type: "b", Agency: "PDE"},
	}
	if len(h.Magnitudes) != len(want) {
		t.Fatalf("got %d magnitudes, want %d", len(h.Magnitudes), len(want))
	}
	for i, m := range want {
		if h.Magnitudes[i] != m {
			t.Errorf("Magnitudes[%d] = %+v, want %+v", i, h.Magnitudes[i], m)
		}
	}
}

func TestParse_Phases(t *testing.T) {
	ev := mustParse(t, fullFile())

	phases := ev.Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}

	p := phases[0]
	if p.Station != "TRO" || p.Name != "P" {
		t.Errorf("pick = %s %s, want TRO P", p.Station, p.Name)
	}
	if p.Instrument != "S" || p.Component != "Z" || p.Quality != "E" {
		t.Errorf("pick instrument/component/quality = %q %q %q", p.Instrument, p.Component, p.Quality)
	}
	wantArr := time.Date(1996, time.June, 3, 20, 5, 32, 500000000, time.UTC)
	if !p.ArrivalTime.Equal(wantArr) {
		t.Errorf("ArrivalTime = %v, want %v", p.ArrivalTime, wantArr)
	}
	if p.AngleOfIncidence.Or(0) != 21 || p.TimeResidual.Or(0) != 1.75 {
		t.Errorf("ain/tres = %v/%v, want 21/1.75", p.AngleOfIncidence, p.TimeResidual)
	}
	if p.Distance.Or(0) != 6471 || p.Azimuth.Or(0) != 343 {
		t.Errorf("distance/azimuth = %v/%v, want 6471/343", p.Distance, p.Azimuth)
	}
	if p.IsAmplitude() {
		t.Error("timed pick reported as amplitude")
	}

	a := phases[1]
	if a.Station != "IUPA" || a.Name != "IAML" {
		t.Errorf("amplitude row = %s %s, want IUPA IAML", a.Station, a.Name)
	}
	if !a.IsAmplitude() {
		t.Error("IAML row not reported as amplitude")
	}
	if a.Amplitude.Or(0) != 169.4 || a.Period.Or(0) != 0.8 {
		t.Errorf("amplitude/period = %v/%v, want 169.4/0.8", a.Amplitude, a.Period)
	}

	if picks := ev.Picks(); len(picks) != 1 || picks[0].Station != "TRO" {
		t.Errorf("Picks() = %+v, want just TRO", picks)
	}
	if amps := ev.Amplitudes(); len(amps) != 1 || amps[0].Station != "IUPA" {
		t.Errorf("Amplitudes() = %+v, want just IUPA", amps)
	}
}

func TestParse_AuxiliaryLines(t *testing.T) {
	ev := mustParse(t, fullFile())

	if got := ev.ID(); got != "19960603190055" {
		t.Errorf("ID = %q, want %q", got, "19960603190055")
	}

	u, ok := ev.Uncertainty()
	if !ok {
		t.Fatal("no uncertainty parsed")
	}
	if u.Gap.Or(0) != 348 || u.OriginTimeErr.Or(0) != 2.88 {
		t.Errorf("gap/otime err = %v/%v, want 348/2.88", u.Gap, u.OriginTimeErr)
	}
	if u.LatitudeErr.Or(0) != 999.9 || u.LongitudeErr.Or(0) != 999.9 || u.DepthErr.Or(0) != 999.9 {
		t.Errorf("lat/lon/depth err = %v/%v/%v, want 999.9 each", u.LatitudeErr, u.LongitudeErr, u.DepthErr)
	}

	fps := ev.FaultPlaneSolutions()
	if len(fps) != 1 {
		t.Fatalf("got %d fault plane solutions, want 1", len(fps))
	}
	fp := fps[0]
	if fp.Strike.Or(0) != 93.2 || fp.Dip.Or(0) != 74.8 || fp.Rake.Or(0) != -48.2 {
		t.Errorf("strike/dip/rake = %v/%v/%v, want 93.2/74.8/-48.2", fp.Strike, fp.Dip, fp.Rake)
	}

	if got := ev.Comments(); len(got) != 1 || got[0] != "This is a comment line" {
		t.Errorf("Comments() = %q", got)
	}
	if got := ev.Macroseismic(); len(got) != 1 || got[0] != "Felt in the entire valley" {
		t.Errorf("Macroseismic() = %q", got)
	}
	if got := ev.Waveforms(); len(got) != 1 || got[0] != "1996-06-03-2002-18S.TEST__012" {
		t.Errorf("Waveforms() = %q", got)
	}
	if got := ev.MacroMaps(); len(got) != 1 || got[0] != "1996-06-03-1955-00.MACRO" {
		t.Errorf("MacroMaps() = %q", got)
	}

	xs := ev.Explosions()
	if len(xs) != 1 {
		t.Fatalf("got %d explosion records, want 1", len(xs))
	}
	if xs[0].Info != "QUARRY" || xs[0].Charge.Or(0) != 2.5 || xs[0].Extra != "ROUTINE BLAST" {
		t.Errorf("explosion = %+v", xs[0])
	}
}

func TestParse_UnknownLinesRetained(t *testing.T) {
	ev := mustParse(t, fullFile())

	unknown := ev.UnknownLines()
	if len(unknown) != 2 {
		t.Fatalf("got %d unknown lines, want 2", len(unknown))
	}
	if unknown[0].Num != 5 || unknown[0].Text != lineHeader7 {
		t.Errorf("unknown[0] = %+v, want line 5 column header", unknown[0])
	}
	if unknown[1].Num != 13 || unknown[1].Text != lineVendor {
		t.Errorf("unknown[1] = %+v, want line 13 vendor line", unknown[1])
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		fullFile(),
		fullFile() + "\n",
		lineHypo + "\r\n" + linePhase + "\r\n",
	}
	for _, in := range inputs {
		ev := mustParse(t, in)
		if ev.Raw() != in {
			t.Errorf("Raw() does not reproduce the input verbatim")
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	first := mustParse(t, fullFile())
	second := mustParse(t, first.Raw())

	if !first.Header().OriginTime.Equal(second.Header().OriginTime) {
		t.Error("reparse changed the origin time")
	}
	if len(first.Phases()) != len(second.Phases()) {
		t.Error("reparse changed the phase count")
	}
	if first.Raw() != second.Raw() {
		t.Error("reparse changed the raw text")
	}
}

func TestParse_MissingHeader(t *testing.T) {
	raw := strings.Join([]string{lineComment, linePhase, lineWave}, "\n")
	_, err := Parse(raw, DefaultConfig())

	var mhe *MissingHeaderError
	if !errors.As(err, &mhe) {
		t.Fatalf("Parse() error = %v, want *MissingHeaderError", err)
	}
	if mhe.Lines != 3 {
		t.Errorf("Lines = %d, want 3", mhe.Lines)
	}
}

func TestParse_AlternateHypocenters(t *testing.T) {
	ev := mustParse(t, lineHypo+"\n"+lineAlt)

	if got := ev.Header().Agency; got != "TES" {
		t.Errorf("header agency = %q, want TES (first line wins)", got)
	}
	alts := ev.Alternates()
	if len(alts) != 1 {
		t.Fatalf("got %d alternates, want 1", len(alts))
	}
	if alts[0].Agency != "NEI" {
		t.Errorf("alternate agency = %q, want NEI", alts[0].Agency)
	}
	if len(alts[0].Magnitudes) != 1 || alts[0].Magnitudes[0].Agency != "NEI" {
		t.Errorf("alternate magnitudes = %+v", alts[0].Magnitudes)
	}
	if alts[0].OriginTime.Second() != 36 {
		t.Errorf("alternate origin second = %d, want 36", alts[0].OriginTime.Second())
	}
}

func TestParse_HighAccuracy(t *testing.T) {
	ev := mustParse(t, lineHypo+"\n"+lineHigh)

	h, ok := ev.HighAccuracy()
	if !ok {
		t.Fatal("no high-accuracy hypocenter parsed")
	}
	if h.Latitude.Or(0) != 47.7604 || h.Longitude.Or(0) != 153.2281 {
		t.Errorf("lat/lon = %v/%v, want 47.7604/153.2281", h.Latitude, h.Longitude)
	}
	if h.Depth.Or(-1) != 0.012 || h.RMS.Or(0) != 1.123 {
		t.Errorf("depth/rms = %v/%v, want 0.012/1.123", h.Depth, h.RMS)
	}
	// The primary header stays untouched.
	if ev.Header().Latitude.Or(0) != 47.760 {
		t.Error("type H line overwrote the primary header")
	}
}

func TestParse_CenturyCutoff(t *testing.T) {
	mkLine := func(yy string) string {
		return strings.Replace(lineBare, " 1996", "   "+yy, 1)
	}
	tests := []struct {
		name   string
		yy     string
		cutoff int
		want   int
	}{
		{"96 is 1996", "96", DefaultCenturyCutoff, 1996},
		{"25 is 2025", "25", DefaultCenturyCutoff, 2025},
		{"at cutoff is 1900s", "50", DefaultCenturyCutoff, 1950},
		{"custom cutoff", "35", 30, 1935},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CenturyCutoff = tt.cutoff
			ev, err := Parse(mkLine(tt.yy), cfg)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := ev.OriginTime().Year(); got != tt.want {
				t.Errorf("year = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParse_BlankOptionalFields(t *testing.T) {
	ev := mustParse(t, lineBare)
	h := ev.Header()

	if h.Latitude.Valid || h.Longitude.Valid || h.Depth.Valid || h.RMS.Valid {
		t.Error("blank numeric fields must be absent, not zero")
	}
	if h.StationCount.Valid {
		t.Error("blank station count must be absent")
	}
	if h.Agency != "" || h.DistanceIndicator != "" {
		t.Error("blank text fields must be empty")
	}
	if len(h.Magnitudes) != 0 {
		t.Errorf("got %d magnitudes from blank slots, want 0", len(h.Magnitudes))
	}
}

func TestParse_FieldFormatError(t *testing.T) {
	_, err := Parse(lineBadLat, DefaultConfig())

	var ffe *FieldFormatError
	if !errors.As(err, &ffe) {
		t.Fatalf("Parse() error = %v, want *FieldFormatError", err)
	}
	if ffe.Field != "latitude" || ffe.Line != 1 || ffe.Start != 23 || ffe.End != 30 {
		t.Errorf("error = %+v, want latitude at line 1 cols 23-30", ffe)
	}
	if !strings.Contains(ffe.Error(), "latitude") {
		t.Errorf("message %q should name the field", ffe.Error())
	}
}

func TestParse_RequiredFieldBlank(t *testing.T) {
	noYear := strings.Replace(lineBare, " 1996", "     ", 1)
	_, err := Parse(noYear, DefaultConfig())

	var ffe *FieldFormatError
	if !errors.As(err, &ffe) {
		t.Fatalf("Parse() error = %v, want *FieldFormatError", err)
	}
	if ffe.Field != "year" {
		t.Errorf("field = %q, want %q", ffe.Field, "year")
	}
}

func TestParse_PhaseNextDay(t *testing.T) {
	ev := mustParse(t, lineHypo+"\n"+lineNextDay)

	phases := ev.Phases()
	if len(phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(phases))
	}
	arr := phases[0].ArrivalTime
	if arr.Day() != 4 || arr.Hour() != 1 || arr.Minute() != 15 {
		t.Errorf("arrival = %v, want June 4 01:15 (hour 25 rolls to the next day)", arr)
	}
}

func TestParse_PhaseBeforeHeader(t *testing.T) {
	ev := mustParse(t, linePhase+"\n"+lineHypo)

	phases := ev.Phases()
	if len(phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(phases))
	}
	if got := phases[0].ArrivalTime.Year(); got != 1 {
		t.Errorf("arrival year = %d, want 1 (no date context before the header)", got)
	}
}

func TestParse_IncompletePhaseRetained(t *testing.T) {
	ev := mustParse(t, lineHypo+"\n"+lineNoSta)

	if got := len(ev.Phases()); got != 0 {
		t.Errorf("got %d phases from a station-less line, want 0", got)
	}
	unknown := ev.UnknownLines()
	if len(unknown) != 1 || unknown[0].Text != lineNoSta {
		t.Errorf("incomplete phase line not retained: %+v", unknown)
	}
}

func TestParse_Nordic2(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = FormatNordic2
	ev, err := Parse(lineHypo+"\n"+linePhase2, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	phases := ev.Phases()
	if len(phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(phases))
	}
	p := phases[0]
	if p.Station != "BER" || p.Name != "Pg" {
		t.Errorf("phase = %s %s, want BER Pg", p.Station, p.Name)
	}
	if p.Component != "HHZ" || p.Network != "NS" || p.Location != "00" {
		t.Errorf("component/network/location = %q/%q/%q", p.Component, p.Network, p.Location)
	}
	if p.Agency != "BER" || p.Operator != "jh" {
		t.Errorf("agency/operator = %q/%q, want BER/jh", p.Agency, p.Operator)
	}
	if p.ArrivalTime.Hour() != 20 || p.ArrivalTime.Minute() != 6 || p.ArrivalTime.Second() != 10 {
		t.Errorf("arrival = %v, want 20:06:10", p.ArrivalTime)
	}
	if p.Distance.Or(0) != 88.1 || p.Azimuth.Or(0) != 123 {
		t.Errorf("distance/azimuth = %v/%v, want 88.1/123", p.Distance, p.Azimuth)
	}
}

func TestParse_WithoutArrivals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReadArrivals = false
	ev, err := Parse(fullFile(), cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := len(ev.Phases()); got != 0 {
		t.Errorf("got %d phases with arrivals disabled, want 0", got)
	}
	// Skipped lines still survive in the raw text.
	if !strings.Contains(ev.Raw(), linePhase) {
		t.Error("skipped phase line missing from raw text")
	}
}

func TestParse_Extensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []ExtLayout{{
		Code: "Z",
		Name: "vendor_payload",
		Fields: []ExtField{
			{Name: "payload", Start: 1, End: 24, Kind: "string"},
		},
	}}
	ev, err := Parse(lineHypo+"\n"+lineVendor, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	exts := ev.Extensions()
	if len(exts) != 1 {
		t.Fatalf("got %d extensions, want 1", len(exts))
	}
	if exts[0].Name != "vendor_payload" || exts[0].Line != 2 {
		t.Errorf("extension = %+v, want vendor_payload at line 2", exts[0])
	}
	if got := exts[0].Fields["payload"]; got != "VENDOR SPECIFIC PAYLOAD" {
		t.Errorf("payload = %q", got)
	}
	if got := len(ev.UnknownLines()); got != 0 {
		t.Errorf("matched line also retained as unknown (%d)", got)
	}
}

func TestParse_ExtensionSuffixCode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []ExtLayout{{
		Code: "YZ",
		Name: "suffix_match",
		Fields: []ExtField{
			{Name: "body", Start: 1, End: 24, Kind: "string"},
		},
	}}
	vendorSuffix := " SUFFIX CODED LINE" + strings.Repeat(" ", 60) + "YZ"
	ev, err := Parse(lineHypo+"\n"+vendorSuffix, cfg)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	exts := ev.Extensions()
	if len(exts) != 1 || exts[0].Name != "suffix_match" {
		t.Fatalf("extensions = %+v, want one suffix_match", exts)
	}
}

func TestParse_TravelTimes(t *testing.T) {
	ev := mustParse(t, fullFile())

	tts := ev.TravelTimes()
	if len(tts) != 1 {
		t.Fatalf("got %d travel times, want 1", len(tts))
	}
	tt := tts[0]
	if tt.Station != "TRO" || tt.Phase != "P" {
		t.Errorf("travel time for %s %s, want TRO P", tt.Station, tt.Phase)
	}
	if tt.Distance != 6471 {
		t.Errorf("distance = %v, want 6471", tt.Distance)
	}
	if tt.Seconds != 597.0 {
		t.Errorf("seconds = %v, want 597.0", tt.Seconds)
	}
}
