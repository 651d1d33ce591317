/*package evtio reads and writes event records. Generator output comes in as
text listings, one block per event:

    event 0
    hiinfo 2 14 1.37                        (optional: nPartProj nPartTarg b)
    sigma 75.3 19.0 5.1 5.1 1.2 0.5 45.4 0.1 (optional: tot el xb ax xx axb nd rho)
    diffractive 0 0 0 1                     (optional: A B C non-diffractive)
    0 90 -11 0 0 1 2 0 0 0 0 0 14000 14000 0 0 0 0
    1 2212 -12 0 0 3 0 0 0 0 0 7000 7000 0.938 0 0 0 0
    ...
    end

Particle lines hold, by default, the columns
    no id status mother1 mother2 daughter1 daughter2 col acol px py pz e m x y z t
and "no" must count up from 0. Converted records go out either as HEPEVT
ASCII (ascii.go) or through lib/compress.
*/
package evtio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phil-mansfield/hepevt/lib/event"
)

// ErrFormat is returned (wrapped) when a listing can't be parsed.
var ErrFormat = errors.New("malformed event listing")

// TextConfig contains the information needed to parse event listings.
type TextConfig struct {
	Comment     byte           // Character used to start comments.
	Columns     map[string]int // Map from particle fields to columns.
	MaxLineSize int            // Largest possible line size.
}

// ColumnNames lists every particle field a listing can contain, in the order
// of the default layout.
var ColumnNames = []string{
	"no", "id", "status", "mother1", "mother2", "daughter1", "daughter2",
	"col", "acol", "px", "py", "pz", "e", "m", "x", "y", "z", "t",
}

// DefaultConfig reads listings written by WriteText.
var DefaultConfig = TextConfig{
	Comment:     '#',
	Columns:     defaultColumns(),
	MaxLineSize: 1 << 20,
}

func defaultColumns() map[string]int {
	m := map[string]int{}
	for i, name := range ColumnNames { m[name] = i }
	return m
}

// TextReader reads event listings one event at a time.
type TextReader struct {
	sc     *bufio.Scanner
	config TextConfig
	line   int
	nCols  int
	ints   map[string]int
	floats map[string]float64
}

// NewTextReader creates a TextReader for rd. An optional config can be
// provided, otherwise DefaultConfig will be used.
func NewTextReader(rd io.Reader, config ...TextConfig) (*TextReader, error) {
	r := &TextReader{
		config: DefaultConfig,
		ints:   map[string]int{}, floats: map[string]float64{},
	}
	if len(config) > 0 { r.config = config[0] }

	for _, name := range ColumnNames {
		col, ok := r.config.Columns[name]
		if !ok {
			return nil, fmt.Errorf("The listing config has no column for '%s'.", name)
		} else if col < 0 {
			return nil, fmt.Errorf("Column '%s' has the negative index %d.", name, col)
		}
		if col+1 > r.nCols { r.nCols = col + 1 }
	}

	r.sc = bufio.NewScanner(rd)
	r.sc.Buffer(make([]byte, 0, 1<<12), r.config.MaxLineSize)
	return r, nil
}

func (r *TextReader) errorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrFormat, r.line, fmt.Sprintf(format, a...))
}

// nextLine returns the fields of the next non-blank, non-comment line.
func (r *TextReader) nextLine() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		if i := strings.IndexByte(text, r.config.Comment); i >= 0 {
			text = text[:i]
		}
		if tok := strings.Fields(text); len(tok) > 0 { return tok, nil }
	}
	if err := r.sc.Err(); err != nil { return nil, err }
	return nil, io.EOF
}

// Next reads the next event into evt, replacing its contents, and returns the
// event number from the "event" line. It returns io.EOF when there are no
// more events.
func (r *TextReader) Next(evt *event.Event) (int, error) {
	tok, err := r.nextLine()
	if err != nil { return 0, err }
	if tok[0] != "event" || len(tok) != 2 {
		return 0, r.errorf("expected 'event <number>', got '%s'", strings.Join(tok, " "))
	}
	nev, err := strconv.Atoi(tok[1])
	if err != nil { return 0, r.errorf("'%s' is not an event number", tok[1]) }

	evt.Clear()
	for {
		tok, err = r.nextLine()
		if err == io.EOF {
			return 0, r.errorf("event %d has no 'end' line", nev)
		} else if err != nil {
			return 0, err
		}

		switch tok[0] {
		case "end":
			return nev, nil
		case "hiinfo":
			evt.Info.HI, err = r.parseHIInfo(tok[1:])
		case "sigma":
			evt.Info.Sigma, err = r.parseSigma(tok[1:])
		case "diffractive":
			err = r.parseDiffractive(tok[1:], &evt.Info)
		default:
			var p event.Particle
			p, err = r.parseParticle(tok)
			if err == nil {
				if no := r.ints["no"]; no != evt.Size() {
					return 0, r.errorf("particle number %d should be %d", no, evt.Size())
				}
				evt.AppendParticle(p)
			}
		}
		if err != nil { return 0, err }
	}
}

func (r *TextReader) parseParticle(tok []string) (event.Particle, error) {
	if len(tok) < r.nCols {
		return event.Particle{}, r.errorf("particle line has %d columns, "+
			"but at least %d are needed", len(tok), r.nCols)
	}

	for _, name := range ColumnNames[:9] {
		s := tok[r.config.Columns[name]]
		x, err := strconv.Atoi(s)
		if err != nil {
			return event.Particle{}, r.errorf("%s = '%s' is not an integer", name, s)
		}
		r.ints[name] = x
	}
	for _, name := range ColumnNames[9:] {
		s := tok[r.config.Columns[name]]
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return event.Particle{}, r.errorf("%s = '%s' is not a number", name, s)
		}
		r.floats[name] = x
	}

	i, f := r.ints, r.floats
	return event.Particle{
		ID: i["id"], Status: i["status"],
		Mother1: i["mother1"], Mother2: i["mother2"],
		Daughter1: i["daughter1"], Daughter2: i["daughter2"],
		Col: i["col"], Acol: i["acol"],
		Px: f["px"], Py: f["py"], Pz: f["pz"], E: f["e"], M: f["m"],
		XProd: f["x"], YProd: f["y"], ZProd: f["z"], TProd: f["t"],
		Pol: 9,
	}, nil
}

func (r *TextReader) parseFloats(name string, tok []string, n int) ([]float64, error) {
	if len(tok) != n {
		return nil, r.errorf("'%s' needs %d values, got %d", name, n, len(tok))
	}
	out := make([]float64, n)
	for i := range tok {
		x, err := strconv.ParseFloat(tok[i], 64)
		if err != nil {
			return nil, r.errorf("'%s' value '%s' is not a number", name, tok[i])
		}
		out[i] = x
	}
	return out, nil
}

func (r *TextReader) parseHIInfo(tok []string) (*event.HIInfo, error) {
	x, err := r.parseFloats("hiinfo", tok, 3)
	if err != nil { return nil, err }
	if x[0] != float64(int(x[0])) || x[1] != float64(int(x[1])) {
		return nil, r.errorf("participant numbers must be integers")
	}
	return &event.HIInfo{NPartProj: int(x[0]), NPartTarg: int(x[1]), B: x[2]}, nil
}

func (r *TextReader) parseSigma(tok []string) (*event.SigmaTotal, error) {
	x, err := r.parseFloats("sigma", tok, 8)
	if err != nil { return nil, err }
	return &event.SigmaTotal{
		SigmaTot: x[0], SigmaEl: x[1], SigmaXB: x[2], SigmaAX: x[3],
		SigmaXX: x[4], SigmaAXB: x[5], SigmaND: x[6], Rho: x[7],
	}, nil
}

func (r *TextReader) parseDiffractive(tok []string, info *event.Info) error {
	if len(tok) != 4 {
		return r.errorf("'diffractive' needs 4 flags, got %d", len(tok))
	}
	flags := make([]bool, 4)
	for i := range tok {
		switch tok[i] {
		case "0": flags[i] = false
		case "1": flags[i] = true
		default:
			return r.errorf("diffractive flag '%s' must be 0 or 1", tok[i])
		}
	}
	info.IsDiffractiveA, info.IsDiffractiveB = flags[0], flags[1]
	info.IsDiffractiveC, info.IsNonDiffractive = flags[2], flags[3]
	return nil
}

// WriteText writes evt as a listing block in the default column layout.
func WriteText(wr io.Writer, evt *event.Event, nev int) error {
	bw := bufio.NewWriter(wr)
	fmt.Fprintf(bw, "event %d\n", nev)

	info := &evt.Info
	if hi := info.HI; hi != nil {
		fmt.Fprintf(bw, "hiinfo %d %d %v\n", hi.NPartProj, hi.NPartTarg, hi.B)
	}
	if s := info.Sigma; s != nil {
		fmt.Fprintf(bw, "sigma %v %v %v %v %v %v %v %v\n", s.SigmaTot,
			s.SigmaEl, s.SigmaXB, s.SigmaAX, s.SigmaXX, s.SigmaAXB,
			s.SigmaND, s.Rho)
	}
	if info.IsDiffractiveA || info.IsDiffractiveB || info.IsDiffractiveC ||
		info.IsNonDiffractive {
		fmt.Fprintf(bw, "diffractive %d %d %d %d\n", b2i(info.IsDiffractiveA),
			b2i(info.IsDiffractiveB), b2i(info.IsDiffractiveC),
			b2i(info.IsNonDiffractive))
	}

	for i, p := range evt.Particles() {
		fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d %d %v %v %v %v %v %v %v %v %v\n",
			i, p.ID, p.Status, p.Mother1, p.Mother2, p.Daughter1,
			p.Daughter2, p.Col, p.Acol, p.Px, p.Py, p.Pz, p.E, p.M,
			p.XProd, p.YProd, p.ZProd, p.TProd)
	}
	fmt.Fprintln(bw, "end")
	return bw.Flush()
}

func b2i(b bool) int {
	if b { return 1 }
	return 0
}
