// Package station reads station-coordinate listings and provides the
// distance helper used when an S-file's phase rows lack epicentral
// distances.
package station

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Coord is a station position in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// KmPerDegree converts angular distance in degrees to kilometers.
const KmPerDegree = 111.11

// Dist returns the euclidean distance between two coordinates in km.
// Flat-earth in degrees, matching the convention of the catalog tools
// this format comes from; good enough at local distances.
func Dist(a, b Coord) float64 {
	return math.Sqrt((a.Lat-b.Lat)*(a.Lat-b.Lat)+(a.Lon-b.Lon)*(a.Lon-b.Lon)) * KmPerDegree
}

// ReadOption configures ReadCoords.
type ReadOption func(*readConfig)

type readConfig struct {
	delim   string // "" means any whitespace
	staCol  int    // 1-based
	latCol  int
	lonCol  int
}

// WithDelimiter sets the column delimiter. Default: any whitespace.
func WithDelimiter(d string) ReadOption {
	return func(c *readConfig) { c.delim = d }
}

// WithColumns sets the 1-based station, latitude and longitude columns.
// Default: 1, 2, 3.
func WithColumns(sta, lat, lon int) ReadOption {
	return func(c *readConfig) {
		c.staCol, c.latCol, c.lonCol = sta, lat, lon
	}
}

// ReadCoords parses a station-coordinate listing, one station per line:
//
//	ALLY  41.6492  -80.1448
//	KSPA  41.557   -75.7682
//
// Blank lines are skipped. Returns station names mapped to coordinates.
func ReadCoords(r io.Reader, opts ...ReadOption) (map[string]Coord, error) {
	cfg := readConfig{staCol: 1, latCol: 2, lonCol: 3}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	maxCol := max(cfg.staCol, max(cfg.latCol, cfg.lonCol))

	out := make(map[string]Coord)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var cols []string
		if cfg.delim != "" {
			cols = strings.Split(line, cfg.delim)
		} else {
			cols = strings.Fields(line)
		}
		if len(cols) < maxCol {
			return nil, fmt.Errorf("line %d: want at least %d columns, got %d", lineNo, maxCol, len(cols))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(cols[cfg.latCol-1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", lineNo, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(cols[cfg.lonCol-1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", lineNo, err)
		}
		name := strings.TrimSpace(cols[cfg.staCol-1])
		out[name] = Coord{Lat: lat, Lon: lon}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
