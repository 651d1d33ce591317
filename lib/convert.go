package lib

/* convert.go contains the core loops of the "convert" and "stats" modes. */

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/phil-mansfield/hepevt/lib/compress"
	"github.com/phil-mansfield/hepevt/lib/event"
	"github.com/phil-mansfield/hepevt/lib/evtio"
	"github.com/phil-mansfield/hepevt/lib/hepevt"
	"github.com/phil-mansfield/hepevt/lib/stats"
)

// RecordWriter is anything filled records can be written to.
type RecordWriter interface {
	Write(rec *hepevt.Record) error
}

// NewRecordWriter returns a RecordWriter for the configured output format.
// settings are stored in the file header if the format has one.
func NewRecordWriter(
	args *Args, wr io.Writer, settings []string,
) (RecordWriter, error) {
	switch args.Format {
	case ASCIIFormat:
		return evtio.NewASCIIWriter(wr), nil
	case HepzFormat:
		w, err := compress.NewWriter(wr, settings, args.CompressionLevel)
		if err != nil { return nil, err }
		return w, nil
	}
	return nil, fmt.Errorf("Unrecognized output format %s.", args.Format)
}

// forEachEvent fills rec with every selected event in the Input listing and
// calls f on it. The event number in rec is the one given in the listing.
func forEachEvent(
	args *Args, rec *hepevt.Record, f func(nev int) error,
) error {
	in, err := os.Open(args.Input)
	if err != nil { return err }
	defer in.Close()

	rd, err := evtio.NewTextReader(bufio.NewReader(in))
	if err != nil { return err }

	evt := event.New()
	for {
		nev, err := rd.Next(evt)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("Could not read '%s': %w", args.Input, err)
		}

		if !args.UseEvent(nev) {
			// Listings are written in order, so nothing after Events.Max()
			// can be selected.
			if args.Events != nil && nev > args.Events.Max() { return nil }
			continue
		}

		rec.Fill(evt)
		rec.SetNevhep(nev)
		if err = f(nev); err != nil { return err }
	}
}

// Convert converts the Input listing into Output and returns the number of
// events written.
func Convert(args *Args, logger *log.Logger) (int, error) {
	if args.Output == "" {
		return 0, fmt.Errorf("No Output file was given.")
	}

	set, bad := LoadSettings(args, logger, true)
	if bad > 0 { logger.Warn("dropped malformed settings", "n", bad) }

	out, err := os.Create(args.Output)
	if err != nil { return 0, err }
	defer out.Close()
	bw := bufio.NewWriter(out)

	wr, err := NewRecordWriter(args, bw, set.Lines())
	if err != nil { return 0, err }

	rec := hepevt.New(args.Capacity)
	n := 0
	err = forEachEvent(args, rec, func(nev int) error {
		if err := wr.Write(rec); err != nil { return err }
		logger.Debug("converted event", "nevhep", nev, "nhep", rec.Nhep(),
			"cap", rec.Cap())
		n++
		return nil
	})
	if err != nil { return n, err }

	if err = bw.Flush(); err != nil { return n, err }
	logger.Info("conversion finished", "events", n, "output", args.Output,
		"format", args.Format)
	return n, out.Close()
}

// Stats summarises the selected events of the Input listing.
func Stats(args *Args, logger *log.Logger) (*stats.Summary, error) {
	tab, err := LoadTable(args)
	if err != nil { return nil, err }
	sel, err := LoadSelection(args)
	if err != nil { return nil, err }

	rec := hepevt.New(args.Capacity)
	summary := &stats.Summary{}
	err = forEachEvent(args, rec, func(nev int) error {
		es, err := stats.Accumulate(rec, tab, sel)
		if err != nil { return err }
		if es.Unknown > 0 {
			logger.Warn("particles missing from table", "nevhep", nev,
				"n", es.Unknown)
		}
		summary.Add(es)
		return nil
	})
	if err != nil { return nil, err }
	return summary, nil
}
