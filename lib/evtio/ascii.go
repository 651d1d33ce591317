package evtio

import (
	"io"

	gohep "go-hep.org/x/hep/hepevt"

	"github.com/phil-mansfield/hepevt/lib/hepevt"
)

// ASCIIWriter writes filled records as HEPEVT ASCII through go-hep's encoder.
type ASCIIWriter struct {
	enc *gohep.Encoder
}

func NewASCIIWriter(wr io.Writer) *ASCIIWriter {
	return &ASCIIWriter{gohep.NewEncoder(wr)}
}

// Write writes the valid slots of rec.
func (w *ASCIIWriter) Write(rec *hepevt.Record) error {
	return w.enc.Encode(rec.Event())
}

// ASCIIReader reads HEPEVT ASCII events.
type ASCIIReader struct {
	dec *gohep.Decoder
}

func NewASCIIReader(rd io.Reader) *ASCIIReader {
	return &ASCIIReader{gohep.NewDecoder(rd)}
}

// Read returns the next event, or io.EOF when there are none left.
func (r *ASCIIReader) Read() (*gohep.Event, error) {
	evt := &gohep.Event{}
	if err := r.dec.Decode(evt); err != nil { return nil, err }
	return evt, nil
}
