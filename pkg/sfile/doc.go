// Package sfile parses Nordic-format seismic S-files into structured
// events and aggregates them into catalogs.
//
// This package allows you to:
//   - Parse one S-file's text into an [event.Event]
//   - Batch-parse many files into a [Catalog] with per-file outcomes
//   - Define vendor-extension line layouts via YAML configuration
//   - Classify single lines, e.g. while following a growing file
//
// # Basic Usage
//
// The core never touches the filesystem; callers load the text and
// hand it to Parse:
//
//	data, err := os.ReadFile("01-1300-32L.S202204")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ev, err := sfile.Parse(string(data))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := ev.Header()
//	fmt.Println(h.OriginTime, h.Latitude, h.Longitude)
//	for _, p := range ev.Picks() {
//	    fmt.Println(p.Station, p.Name, p.ArrivalTime)
//	}
//
// Parse either returns a fully valid Event or a typed error; it never
// returns a partially valid Event. A file without a hypocenter line
// fails with [MissingHeaderError]; a malformed numeric column fails
// with [FieldFormatError] carrying the line number and column range.
// Lines with unrecognized type codes do not abort the parse: they are
// retained verbatim and reachable through Event.UnknownLines.
//
// # Catalogs
//
// FromPaths resolves paths through a caller-supplied [Loader] and
// isolates per-file failures:
//
//	cat, outcomes := sfile.FromPaths(loader, paths)
//	for _, o := range outcomes {
//	    if o.Err != nil {
//	        log.Printf("%s: %v", o.Path, o.Err)
//	    }
//	}
//
// # Options
//
// Parsing is configured with functional options:
//
//	ev, err := sfile.Parse(text,
//	    sfile.WithFormat(sfile.FormatNordic2),
//	    sfile.WithCenturyCutoff(60),
//	)
//
// # Vendor Extensions
//
// Agencies extend the format with non-standard line types. The
// [layout] subpackage loads per-type column layouts from YAML so such
// lines can be decoded without code changes; see that package for the
// file format.
package sfile
