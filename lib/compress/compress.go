/*package compress reads and writes .hepz files: streams of HEPEVT records where
each event is a single zstd block. The uncompressed block is the /HEPEVT/
common block truncated to the valid slots, so it can be handed to Fortran code
as-is after decompression.

File layout (little-endian):

    uint32 MagicNumber
    uint32 Version
    uint32 nSettings, then for each setting: uint32 length, bytes
    repeated: int64 compressed length, zstd block

Block layout:

    int64 nevhep, int64 nhep
    int32 idhep[nhep], int32 isthep[nhep]
    float64 phep[5*nhep], float64 vhep[4*nhep]
    int32 jmohep[2*nhep], int32 jdahep[2*nhep]
*/
package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/DataDog/zstd"
	gohep "go-hep.org/x/hep/hepevt"

	"github.com/phil-mansfield/hepevt/lib/hepevt"
)

const (
	// MagicNumber is an arbirary number at the start of all .hepz files
	// which should help identify when the code is run on something else by
	// accident.
	MagicNumber = 0xbadf00d1
	// ReverseMagicNumber is the magic number if read on a machine with
	// flipped endianness.
	ReverseMagicNumber = 0xd100dfba
	Version            = 1

	// maxSettingSize bounds the length of a single setting line, so a
	// corrupted header can't trigger a huge allocation.
	maxSettingSize = 1 << 16
	// maxBlockSize bounds the compressed size of a single event for the same
	// reason.
	maxBlockSize = 1 << 31
)

// ErrMagic is returned when a file doesn't start with MagicNumber.
var ErrMagic = errors.New("not a .hepz file")

var order = binary.LittleEndian

// Writer writes records to a .hepz stream.
type Writer struct {
	wr    io.Writer
	level int
	raw   *bytes.Buffer
	b     []byte
}

// NewWriter writes a file header containing settings to wr and returns a
// Writer which appends events to it. level is the zstd compression level.
func NewWriter(wr io.Writer, settings []string, level int) (*Writer, error) {
	hd := []uint32{MagicNumber, Version, uint32(len(settings))}
	if err := binary.Write(wr, order, hd); err != nil { return nil, err }

	for _, s := range settings {
		if len(s) > maxSettingSize {
			return nil, fmt.Errorf("The setting '%.20s...' is %d bytes long, "+
				"but the limit is %d.", s, len(s), maxSettingSize)
		}
		if err := binary.Write(wr, order, uint32(len(s))); err != nil {
			return nil, err
		}
		if _, err := io.WriteString(wr, s); err != nil { return nil, err }
	}

	return &Writer{wr: wr, level: level, raw: &bytes.Buffer{}}, nil
}

// Write compresses the valid slots of rec and writes them as one block.
func (w *Writer) Write(rec *hepevt.Record) error {
	n := rec.Nhep()
	w.raw.Reset()

	// bytes.Buffer writes can't fail, so the errors are dropped.
	binary.Write(w.raw, order, [2]int64{int64(rec.Nevhep()), int64(n)})
	binary.Write(w.raw, order, rec.IdhepRaw()[:n])
	binary.Write(w.raw, order, rec.IsthepRaw()[:n])
	binary.Write(w.raw, order, rec.PhepRaw()[:hepevt.PhepComponents*n])
	binary.Write(w.raw, order, rec.VhepRaw()[:hepevt.VhepComponents*n])
	binary.Write(w.raw, order, rec.JmohepRaw()[:2*n])
	binary.Write(w.raw, order, rec.JdahepRaw()[:2*n])

	var err error
	w.b, err = zstd.CompressLevel(w.b[:cap(w.b)], w.raw.Bytes(), w.level)
	if err != nil { return err }

	if err = binary.Write(w.wr, order, int64(len(w.b))); err != nil {
		return err
	}
	_, err = w.wr.Write(w.b)
	return err
}

// Reader reads events from a .hepz stream.
type Reader struct {
	rd       io.Reader
	settings []string
	b, raw   []byte
}

// NewReader reads the file header from rd.
func NewReader(rd io.Reader) (*Reader, error) {
	hd := [3]uint32{}
	if err := binary.Read(rd, order, &hd); err != nil { return nil, err }

	switch {
	case hd[0] == ReverseMagicNumber:
		return nil, fmt.Errorf("%w: the file was written with the opposite "+
			"byte order", ErrMagic)
	case hd[0] != MagicNumber:
		return nil, fmt.Errorf("%w: magic number is 0x%x", ErrMagic, hd[0])
	case hd[1] != Version:
		return nil, fmt.Errorf("The file has version %d, but only version %d "+
			"is supported.", hd[1], Version)
	}

	r := &Reader{rd: rd, settings: make([]string, hd[2])}
	for i := range r.settings {
		var n uint32
		if err := binary.Read(rd, order, &n); err != nil { return nil, err }
		if n > maxSettingSize {
			return nil, fmt.Errorf("Setting %d claims to be %d bytes long. "+
				"The file is probably corrupted.", i, n)
		}
		b := make([]byte, n)
		if _, err := io.ReadFull(rd, b); err != nil { return nil, err }
		r.settings[i] = string(b)
	}
	return r, nil
}

// Settings returns the settings stored in the file header.
func (r *Reader) Settings() []string { return r.settings }

// Next returns the next event in the stream, or io.EOF if there are none.
func (r *Reader) Next() (*gohep.Event, error) {
	var nb int64
	if err := binary.Read(r.rd, order, &nb); err != nil { return nil, err }
	if nb < 0 {
		return nil, fmt.Errorf("Block has negative length %d.", nb)
	} else if nb > maxBlockSize {
		return nil, fmt.Errorf("Block claims to be %d bytes long, but the "+
			"limit is %d. The file is probably corrupted.", nb, maxBlockSize)
	}

	r.b = resizeBytes(r.b, int(nb))
	if _, err := io.ReadFull(r.rd, r.b); err != nil {
		if err == io.EOF { err = io.ErrUnexpectedEOF }
		return nil, err
	}

	var err error
	r.raw, err = zstd.Decompress(r.raw[:cap(r.raw)], r.b)
	if err != nil { return nil, err }

	return decodeBlock(r.raw)
}

func decodeBlock(b []byte) (*gohep.Event, error) {
	rd := bytes.NewReader(b)
	hd := [2]int64{}
	if err := binary.Read(rd, order, &hd); err != nil { return nil, err }

	n := int(hd[1])
	// 4+4+40+32+8+8 bytes per particle.
	if n < 0 || int64(rd.Len()) != int64(n)*96 {
		return nil, fmt.Errorf("Block claims to contain %d particles, but "+
			"has %d bytes of particle data.", n, rd.Len())
	}

	id, st := make([]int32, n), make([]int32, n)
	p, v := make([]float64, 5*n), make([]float64, 4*n)
	mo, da := make([]int32, 2*n), make([]int32, 2*n)
	for _, x := range []interface{}{id, st, p, v, mo, da} {
		if err := binary.Read(rd, order, x); err != nil { return nil, err }
	}

	evt := &gohep.Event{
		Nevhep: int(hd[0]), Nhep: n,
		Isthep: make([]int, n), Idhep: make([]int, n),
		Jmohep: make([][2]int, n), Jdahep: make([][2]int, n),
		Phep: make([][5]float64, n), Vhep: make([][4]float64, n),
	}
	for k := 0; k < n; k++ {
		evt.Idhep[k], evt.Isthep[k] = int(id[k]), int(st[k])
		copy(evt.Phep[k][:], p[5*k:])
		copy(evt.Vhep[k][:], v[4*k:])
		evt.Jmohep[k] = [2]int{int(mo[2*k]), int(mo[2*k+1])}
		evt.Jdahep[k] = [2]int{int(da[2*k]), int(da[2*k+1])}
	}
	return evt, nil
}

// resizeBytes resizes b to have length n, reusing its capacity if possible.
func resizeBytes(b []byte, n int) []byte {
	if cap(b) >= n { return b[:n] }
	b = b[:cap(b)]
	return append(b, make([]byte, n-len(b))...)
}
