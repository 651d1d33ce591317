/*package hepevt converts generator event records into the HEPEVT layout: six
pre-allocated, Fortran-ordered arrays plus an event counter and a particle
count. A single Record is meant to be reused for every event in a run, so
allocation only happens when an event is larger than anything seen before.

Indices inside the arrays are 0-based Go indices, but the mother and daughter
values stored in them are copied verbatim from the generator: they're 1-based
positions, with 0 meaning "none". Skipping the generator's system entry is what
makes those values line up with Fortran-style slot numbers.
*/
package hepevt

import (
	gohep "go-hep.org/x/hep/hepevt"
)

const (
	// DefaultCapacity is the number of particles a Record can hold before
	// it has to grow.
	DefaultCapacity = 10000
	// SystemID is the type code of the bookkeeping entry generators put at
	// the start of an event record. It's dropped when it's the first entry.
	SystemID = 90

	PhepComponents = 5 // px, py, pz, e, m
	VhepComponents = 4 // x, y, z, t
)

// Source is a read-only view of a generator event record. Positions run from
// 0 to Size() - 1 in generator order.
type Source interface {
	Size() int
	ID(i int) int
	// StatusHepMC returns the status in the HEPEVT convention, not the
	// generator's native status code.
	StatusHepMC(i int) int
	Momentum(i int) (px, py, pz, e, m float64)
	Vertex(i int) (x, y, z, t float64)
	Mothers(i int) (m1, m2 int)
	Daughters(i int) (d1, d2 int)
}

// Record is a HEPEVT event record. It is not safe for concurrent use: Fill can
// replace every array in the record.
type Record struct {
	nevhep, nhep int
	buf          *buffers
}

// New creates a Record which can hold capacity particles before growing.
// Capacities below 1 are raised to 1.
func New(capacity int) *Record {
	if capacity < 1 { capacity = 1 }
	return &Record{nevhep: -1, nhep: 0, buf: newBuffers(capacity)}
}

// Reset reallocates every array with the given capacity (raised to 1 if
// needed) and sets the particle count to zero. Unlike Fill, Reset can shrink
// the record. The event counter is left alone.
func (rec *Record) Reset(capacity int) {
	if capacity < 1 { capacity = 1 }
	rec.resize(capacity)
	rec.nhep = 0
}

// resize swaps in a new set of arrays. Old contents are not copied: the next
// Fill overwrites every slot it reports.
func (rec *Record) resize(n int) {
	rec.buf = newBuffers(n)
}

// Fill overwrites the record with the event in src and advances the event
// counter. If the first entry of src is the generator's system entry, it is
// skipped, so slot 0 holds the first beam particle. Only the first entry is
// ever skipped.
func (rec *Record) Fill(src Source) {
	rec.nevhep++
	n := src.Size()
	rec.nhep = n
	if n > rec.buf.size { rec.resize(n) }

	buf := rec.buf
	phep, vhep := buf.raw()
	mo, da := buf.jmohep.data, buf.jdahep.data

	k := 0
	for i := 0; i < n; i++ {
		id := src.ID(i)
		if k == 0 && id == SystemID {
			rec.nhep--
			continue
		}

		buf.idhep[k] = int32(id)
		buf.isthep[k] = int32(src.StatusHepMC(i))

		p := phep[k*PhepComponents : (k+1)*PhepComponents]
		p[0], p[1], p[2], p[3], p[4] = src.Momentum(i)

		v := vhep[k*VhepComponents : (k+1)*VhepComponents]
		v[0], v[1], v[2], v[3] = src.Vertex(i)

		m1, m2 := src.Mothers(i)
		mo[2*k], mo[2*k+1] = int32(m1), int32(m2)
		d1, d2 := src.Daughters(i)
		da[2*k], da[2*k+1] = int32(d1), int32(d2)

		k++
	}
}

// Nevhep returns the event counter. It is -1 before the first Fill.
func (rec *Record) Nevhep() int { return rec.nevhep }

// SetNevhep sets the event counter. The next Fill will record n + 1.
func (rec *Record) SetNevhep(n int) { rec.nevhep = n }

// Nhep returns the number of valid slots. Only slots [0, Nhep()) hold data
// from the most recent Fill.
func (rec *Record) Nhep() int { return rec.nhep }

// Cap returns the number of particles the record can hold without growing.
func (rec *Record) Cap() int { return rec.buf.size }

// Idhep returns the PDG id in slot k.
func (rec *Record) Idhep(k int) int { return int(rec.buf.idhep[k]) }

// Isthep returns the HEPEVT status code in slot k.
func (rec *Record) Isthep(k int) int { return int(rec.buf.isthep[k]) }

// Phep returns momentum component c (px, py, pz, e, m) of slot k.
func (rec *Record) Phep(c, k int) float64 { return rec.buf.phep.At(k, c) }

// Vhep returns vertex component c (x, y, z, t) of slot k.
func (rec *Record) Vhep(c, k int) float64 { return rec.buf.vhep.At(k, c) }

// Jmohep returns mother c (0 or 1) of slot k.
func (rec *Record) Jmohep(c, k int) int { return int(rec.buf.jmohep.At(c, k)) }

// Jdahep returns daughter c (0 or 1) of slot k.
func (rec *Record) Jdahep(c, k int) int { return int(rec.buf.jdahep.At(c, k)) }

// The *Raw methods return the full-capacity arrays behind the record in
// Fortran order. They are the arrays Fill writes into and are replaced when
// the record grows, so don't hold on to them across calls to Fill.

func (rec *Record) IdhepRaw() []int32  { return rec.buf.idhep }
func (rec *Record) IsthepRaw() []int32 { return rec.buf.isthep }
func (rec *Record) JmohepRaw() []int32 { return rec.buf.jmohep.data }
func (rec *Record) JdahepRaw() []int32 { return rec.buf.jdahep.data }

func (rec *Record) PhepRaw() []float64 {
	phep, _ := rec.buf.raw()
	return phep
}

func (rec *Record) VhepRaw() []float64 {
	_, vhep := rec.buf.raw()
	return vhep
}

// Entry is a copy of one slot of a Record.
type Entry struct {
	ID, Status         int
	P                  [PhepComponents]float64
	V                  [VhepComponents]float64
	Mothers, Daughters [2]int
}

// Entry returns a copy of slot k.
func (rec *Record) Entry(k int) Entry {
	buf := rec.buf
	phep, vhep := buf.raw()
	e := Entry{ID: int(buf.idhep[k]), Status: int(buf.isthep[k])}
	copy(e.P[:], phep[k*PhepComponents:])
	copy(e.V[:], vhep[k*VhepComponents:])
	e.Mothers = [2]int{rec.Jmohep(0, k), rec.Jmohep(1, k)}
	e.Daughters = [2]int{rec.Jdahep(0, k), rec.Jdahep(1, k)}
	return e
}

// Event copies the valid slots of the record into a go-hep HEPEVT event,
// which stores one row per particle.
func (rec *Record) Event() *gohep.Event {
	n := rec.nhep
	evt := &gohep.Event{
		Nevhep: rec.nevhep,
		Nhep:   n,
		Isthep: make([]int, n),
		Idhep:  make([]int, n),
		Jmohep: make([][2]int, n),
		Jdahep: make([][2]int, n),
		Phep:   make([][5]float64, n),
		Vhep:   make([][4]float64, n),
	}
	for k := 0; k < n; k++ {
		e := rec.Entry(k)
		evt.Isthep[k], evt.Idhep[k] = e.Status, e.ID
		evt.Jmohep[k], evt.Jdahep[k] = e.Mothers, e.Daughters
		evt.Phep[k], evt.Vhep[k] = e.P, e.V
	}
	return evt
}
