package hepevt

/* buffer.go contains the storage behind a Record. Every array is laid out the
way the Fortran /HEPEVT/ common block lays it out, i.e. PHEP(5,NMXHEP) puts the
five momentum components of a particle next to each other in memory. A
row-major gonum matrix with one row per particle has exactly that layout, so
that's what the floating point arrays are. */

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ints is a column-major (Fortran-ordered) matrix of 32-bit integers. Element
// (i, k) is stored at k*rows + i. gonum has no integer matrices, hence this.
type Ints struct {
	rows, cols int
	data       []int32
}

// NewInts creates a zeroed rows x cols matrix.
func NewInts(rows, cols int) *Ints {
	return &Ints{rows, cols, make([]int32, rows*cols)}
}

// Dims returns the number of rows and columns in the matrix.
func (m *Ints) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns element (i, k).
func (m *Ints) At(i, k int) int32 {
	if i < 0 || i >= m.rows || k < 0 || k >= m.cols {
		panic(fmt.Sprintf("Index (%d, %d) is outside a %d x %d matrix.",
			i, k, m.rows, m.cols))
	}
	return m.data[k*m.rows+i]
}

// Set sets element (i, k) to v.
func (m *Ints) Set(i, k int, v int32) {
	if i < 0 || i >= m.rows || k < 0 || k >= m.cols {
		panic(fmt.Sprintf("Index (%d, %d) is outside a %d x %d matrix.",
			i, k, m.rows, m.cols))
	}
	m.data[k*m.rows+i] = v
}

// RawData returns the underlying array in column-major order.
func (m *Ints) RawData() []int32 { return m.data }

// buffers is the full set of arrays with a shared capacity. A Record never
// modifies the capacity of a buffers object: it allocates a new one and swaps
// the pointer, so there's no point in time where only some arrays have been
// resized.
type buffers struct {
	size int

	idhep, isthep []int32
	// phep is size x 5 and vhep is size x 4. See the note at the top of the
	// file.
	phep, vhep     *mat.Dense
	jmohep, jdahep *Ints
}

// newBuffers allocates a set of buffers which can hold size particles. size
// must be positive.
func newBuffers(size int) *buffers {
	if size < 1 {
		panic(fmt.Sprintf("Internal error: buffers must have a positive "+
			"capacity, not %d.", size))
	}
	return &buffers{
		size:   size,
		idhep:  make([]int32, size),
		isthep: make([]int32, size),
		phep:   mat.NewDense(size, PhepComponents, nil),
		vhep:   mat.NewDense(size, VhepComponents, nil),
		jmohep: NewInts(2, size),
		jdahep: NewInts(2, size),
	}
}

// raw returns the flat arrays behind phep and vhep.
func (buf *buffers) raw() (phep, vhep []float64) {
	return buf.phep.RawMatrix().Data, buf.vhep.RawMatrix().Data
}
