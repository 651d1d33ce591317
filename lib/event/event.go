/*package event contains an in-memory generator event record: the ordered list
of particles a physics generator produces for a single collision, with
ancestry stored as 1-based positions in that list. Position 0 is always the
"system" entry which represents the event as a whole.
*/
package event

import (
	"fmt"

	"go-hep.org/x/hep/fmom"
)

const (
	// SystemID is the type code of the bookkeeping entry at the start of
	// every event record.
	SystemID = 90
	// SystemStatus is the native status code of the system entry.
	SystemStatus = -11
	// BeamStatus is the native status code of incoming beam particles.
	BeamStatus = -12
)

// Particle is a single entry in an event record. Status codes follow the
// generator's native convention: positive codes are particles which still
// exist at the end of the event, negative codes are decayed or documentation
// entries. Mothers and daughters are positions in the parent Event.
type Particle struct {
	ID, Status           int
	Mother1, Mother2     int
	Daughter1, Daughter2 int
	Col, Acol            int

	Px, Py, Pz, E, M float64
	Scale, Pol       float64

	XProd, YProd, ZProd, TProd float64
	Tau                        float64
}

// IsFinal returns true if the particle exists at the end of the event.
func (p *Particle) IsFinal() bool { return p.Status > 0 }

// StatusAbs returns the absolute value of the native status code.
func (p *Particle) StatusAbs() int {
	if p.Status < 0 { return -p.Status }
	return p.Status
}

// P4 returns the particle's four-momentum.
func (p *Particle) P4() fmom.PxPyPzE {
	return fmom.NewPxPyPzE(p.Px, p.Py, p.Pz, p.E)
}

// Event is an ordered record of particles. Create one with New or reuse one
// with Reset.
type Event struct {
	particles []Particle
	Info      Info
}

// New returns an Event containing only the system entry.
func New() *Event {
	evt := &Event{}
	evt.Reset()
	return evt
}

// Reset clears the event and its Info, keeping allocated space, and appends
// the system entry.
func (evt *Event) Reset() {
	evt.particles = evt.particles[:0]
	evt.Info = Info{}
	evt.Append(SystemID, SystemStatus, 0, 0, 0, 0, 0, 0, 0)
}

// Clear removes every entry, including the system entry. Events read from
// files which already contain their own system line start from here.
func (evt *Event) Clear() {
	evt.particles = evt.particles[:0]
	evt.Info = Info{}
}

// Append adds a particle with the given type code, status, colour tags,
// four-momentum and mass to the end of the event and returns its position.
func (evt *Event) Append(
	id, status, col, acol int, px, py, pz, e, m float64,
) int {
	return evt.AppendParticle(Particle{
		ID: id, Status: status, Col: col, Acol: acol,
		Px: px, Py: py, Pz: pz, E: e, M: m, Pol: 9,
	})
}

// AppendParticle adds p to the end of the event and returns its position.
func (evt *Event) AppendParticle(p Particle) int {
	evt.particles = append(evt.particles, p)
	return len(evt.particles) - 1
}

// Size returns the number of entries, including the system entry.
func (evt *Event) Size() int { return len(evt.particles) }

// At returns a pointer to the entry at position i. The pointer is invalidated
// by the next Append.
func (evt *Event) At(i int) *Particle {
	if i < 0 || i >= len(evt.particles) {
		panic(fmt.Sprintf("Event position %d is out of range [0, %d).",
			i, len(evt.particles)))
	}
	return &evt.particles[i]
}

// Particles returns the underlying entries. Modifying them modifies the
// event.
func (evt *Event) Particles() []Particle { return evt.particles }

// The methods below let an Event be passed directly to hepevt.Record.Fill.

func (evt *Event) ID(i int) int { return evt.particles[i].ID }

func (evt *Event) Momentum(i int) (px, py, pz, e, m float64) {
	p := &evt.particles[i]
	return p.Px, p.Py, p.Pz, p.E, p.M
}

func (evt *Event) Vertex(i int) (x, y, z, t float64) {
	p := &evt.particles[i]
	return p.XProd, p.YProd, p.ZProd, p.TProd
}

func (evt *Event) Mothers(i int) (m1, m2 int) {
	return evt.particles[i].Mother1, evt.particles[i].Mother2
}

func (evt *Event) Daughters(i int) (d1, d2 int) {
	return evt.particles[i].Daughter1, evt.particles[i].Daughter2
}
