package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seisio/sfile-go/internal/safefile"
	"github.com/seisio/sfile-go/pkg/sfile"
	"github.com/seisio/sfile-go/pkg/sfile/event"
	"github.com/seisio/sfile-go/pkg/sfile/station"
)

var (
	ttimesPhases  []string
	ttimesStaFile string
	ttimesOptions parseFlags
)

var ttimesCmd = &cobra.Command{
	Use:   "ttimes <sfile>",
	Short: "Print the travel-time table for one event",
	Long: `Print per-station travel times (arrival minus origin) for one event.

Picks without an epicentral distance were not used in the location and
are skipped unless a station-coordinate file supplies their distance.

Examples:
  # All picked phases
  sfile ttimes 13-0031-00L.S201906

  # P-type phases only
  sfile ttimes --phases P,Pg,Pn 13-0031-00L.S201906

  # Fill in distances from a station list
  sfile ttimes --sta-coords staCoords.txt 13-0031-00L.S201906`,
	Args: cobra.ExactArgs(1),
	RunE: runTTimes,
}

func init() {
	ttimesCmd.Flags().StringSliceVarP(&ttimesPhases, "phases", "p", nil,
		"Phase names to include (comma-separated, default all)")
	ttimesCmd.Flags().StringVar(&ttimesStaFile, "sta-coords", "",
		"Station-coordinate file (station lat lon per line)")
	ttimesOptions.register(ttimesCmd)
	rootCmd.AddCommand(ttimesCmd)
}

func runTTimes(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	opts, err := ttimesOptions.options(logger)
	if err != nil {
		return err
	}

	data, err := safefile.ReadFile(args[0], maxSFileSize)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	ev, err := sfile.Parse(string(data), opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	var coords map[string]station.Coord
	if ttimesStaFile != "" {
		sf, _, err := safefile.OpenRegular(ttimesStaFile)
		if err != nil {
			return fmt.Errorf("sta-coords: %w", err)
		}
		coords, err = station.ReadCoords(sf)
		sf.Close()
		if err != nil {
			return fmt.Errorf("sta-coords: %w", err)
		}
	}

	include := func(string) bool { return true }
	if len(ttimesPhases) > 0 {
		set := make(map[string]bool, len(ttimesPhases))
		for _, p := range ttimesPhases {
			set[strings.TrimSpace(p)] = true
		}
		include = func(name string) bool { return set[name] }
	}

	rows := travelTimeRows(ev, coords, include)
	if len(rows) == 0 {
		return fmt.Errorf("no travel times for %s", args[0])
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATION\tPHASE\tDIST(KM)\tTIME(S)")
	for _, tt := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\n", tt.Station, tt.Phase, tt.Distance, tt.Seconds)
	}
	return w.Flush()
}

// travelTimeRows merges the event's cached travel times with distances
// recovered from a station list for picks the locator did not use.
func travelTimeRows(ev *event.Event, coords map[string]station.Coord, include func(string) bool) []event.TravelTime {
	var rows []event.TravelTime
	for _, tt := range ev.TravelTimes() {
		if include(tt.Phase) {
			rows = append(rows, tt)
		}
	}
	if coords == nil {
		return rows
	}

	h := ev.Header()
	if !h.Latitude.Valid || !h.Longitude.Valid {
		return rows
	}
	epi := station.Coord{Lat: h.Latitude.Value, Lon: h.Longitude.Value}
	for _, p := range ev.Picks() {
		if p.Distance.Valid || !include(p.Name) {
			continue
		}
		sc, ok := coords[p.Station]
		if !ok {
			continue
		}
		rows = append(rows, event.TravelTime{
			Station:  p.Station,
			Phase:    p.Name,
			Distance: station.Dist(epi, sc),
			Seconds:  p.ArrivalTime.Sub(h.OriginTime).Seconds(),
		})
	}
	return rows
}
