package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/seisio/sfile-go/pkg/sfile/event"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputEvent writes an event in the specified format to the writer.
func OutputEvent(format string, ev *event.Event, includeRaw bool, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, includeRaw, out)
	case "pretty":
		return OutputPretty(ev, includeRaw, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes an event as one JSON Lines record. With includeRaw
// the record is wrapped so the original lines ride along.
func OutputJSON(ev *event.Event, includeRaw bool, out io.Writer) error {
	var payload any = ev
	if includeRaw {
		payload = struct {
			Event    *event.Event `json:"event"`
			RawLines []string     `json:"raw_lines"`
		}{ev, ev.RawLines()}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes an event in human-readable form.
func OutputPretty(ev *event.Event, includeRaw bool, out io.Writer) error {
	h := ev.Header()

	var sb strings.Builder
	sb.WriteString(h.OriginTime.Format("2006-01-02 15:04:05.0"))
	if h.DistanceIndicator != "" {
		sb.WriteString(" " + h.DistanceIndicator)
	}
	sb.WriteString(formatOpt(" lat=", h.Latitude, 3))
	sb.WriteString(formatOpt(" lon=", h.Longitude, 3))
	sb.WriteString(formatOpt(" depth=", h.Depth, 1))
	for _, m := range h.Magnitudes {
		if !m.Value.Valid {
			continue
		}
		fmt.Fprintf(&sb, " mag=%.1f%s", m.Value.Value, m.Type)
		if m.Agency != "" {
			fmt.Fprintf(&sb, "(%s)", m.Agency)
		}
	}
	if h.Agency != "" {
		sb.WriteString(" agency=" + h.Agency)
	}
	if h.StationCount.Valid {
		fmt.Fprintf(&sb, " nsta=%d", h.StationCount.Value)
	}
	sb.WriteString(formatOpt(" rms=", h.RMS, 2))
	if _, err := fmt.Fprintln(out, sb.String()); err != nil {
		return err
	}

	for _, p := range ev.Phases() {
		line := fmt.Sprintf("  %-5s %-4s %s", p.Station, p.Name,
			p.ArrivalTime.Format("15:04:05.00"))
		if p.Amplitude.Valid {
			line += fmt.Sprintf(" amp=%.1f", p.Amplitude.Value)
			if p.Period.Valid {
				line += fmt.Sprintf(" per=%.2f", p.Period.Value)
			}
		}
		line += formatOpt(" dist=", p.Distance, 0)
		line += formatOpt(" az=", p.Azimuth, 0)
		line += formatOpt(" tres=", p.TimeResidual, 2)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	for _, fp := range ev.FaultPlaneSolutions() {
		line := "  fps" +
			formatOpt(" strike=", fp.Strike, 1) +
			formatOpt(" dip=", fp.Dip, 1) +
			formatOpt(" rake=", fp.Rake, 1)
		if fp.Agency != "" {
			line += " agency=" + fp.Agency
		}
		if fp.Quality != "" {
			line += " quality=" + fp.Quality
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	for _, c := range ev.Comments() {
		if _, err := fmt.Fprintf(out, "  # %s\n", c); err != nil {
			return err
		}
	}

	if includeRaw {
		for _, l := range ev.RawLines() {
			if _, err := fmt.Fprintf(out, "  | %s\n", l); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatOpt renders an optional float as " key=value", or "" if absent.
func formatOpt(key string, v event.Float, prec int) string {
	if !v.Valid {
		return ""
	}
	return fmt.Sprintf("%s%.*f", key, prec, v.Value)
}
