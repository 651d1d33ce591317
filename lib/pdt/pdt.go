/*package pdt contains a minimal particle-data table: the type code -> property
lookups that the HEPEVT converter and its users need, along with the charge
helper. It is not a replacement for a generator's own particle data, it only
has to agree with it on the quantities stored here.
*/
package pdt

import (
	"fmt"
	"sort"
)

// Table is anything which can look up particle properties by PDG id. Negative
// ids refer to antiparticles. A Table may return the entry of the particle
// when asked for its antiparticle, which is what ChargeFromPID expects.
type Table interface {
	FindParticle(id int) (*Entry, bool)
}

// Entry holds the properties of a single particle species and its
// antiparticle.
type Entry struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	AntiName string  `yaml:"antiName"`
	// SpinType is 2s + 1, or 0 if undefined.
	SpinType int `yaml:"spinType"`
	// ChargeType is three times the electric charge.
	ChargeType int     `yaml:"chargeType"`
	ColType    int     `yaml:"colType"`
	M0         float64 `yaml:"m0"`
	MWidth     float64 `yaml:"mWidth"`
	MMin       float64 `yaml:"mMin"`
	MMax       float64 `yaml:"mMax"`
	// Tau0 is the nominal proper lifetime in mm/c.
	Tau0     float64 `yaml:"tau0"`
	VarWidth bool    `yaml:"varWidth"`
	MayDecay bool    `yaml:"mayDecay"`
}

// HasAnti returns true if the particle has a distinct antiparticle.
func (e *Entry) HasAnti() bool {
	return e.AntiName != "" && e.AntiName != "void"
}

// AntiID returns the id of the antiparticle, or the particle's own id if it is
// its own antiparticle.
func (e *Entry) AntiID() int {
	if e.HasAnti() { return -e.ID }
	return e.ID
}

// Charge returns the electric charge of the particle (not the antiparticle).
func (e *Entry) Charge() float64 { return float64(e.ChargeType) / 3 }

func (e *Entry) IsLepton() bool  { return IsLepton(e.ID) }
func (e *Entry) IsQuark() bool   { return IsQuark(e.ID) }
func (e *Entry) IsGluon() bool   { return IsGluon(e.ID) }
func (e *Entry) IsDiquark() bool { return IsDiquark(e.ID) }
func (e *Entry) IsParton() bool  { return IsParton(e.ID) }
func (e *Entry) IsHadron() bool  { return IsHadron(e.ID) }
func (e *Entry) IsMeson() bool   { return IsMeson(e.ID) }
func (e *Entry) IsBaryon() bool  { return IsBaryon(e.ID) }

// ParticleData is an in-memory Table. The zero value is not usable, create
// one with New.
type ParticleData struct {
	entries map[int]*Entry
}

var _ Table = &ParticleData{}

// New creates an empty ParticleData table.
func New() *ParticleData {
	return &ParticleData{entries: map[int]*Entry{}}
}

// AddParticle adds a new species to the table, replacing any species with the
// same id. id must be positive: antiparticles are implied by antiName.
func (pd *ParticleData) AddParticle(e Entry) error {
	if e.ID <= 0 {
		return fmt.Errorf("Particle '%s' has id %d, but ids added to the "+
			"table must be positive.", e.Name, e.ID)
	}
	entry := e
	pd.entries[e.ID] = &entry
	return nil
}

// FindParticle returns the entry for a given id. Antiparticle ids return the
// particle's entry, as long as that particle has an antiparticle.
func (pd *ParticleData) FindParticle(id int) (*Entry, bool) {
	e, ok := pd.entries[abs(id)]
	if !ok || (id < 0 && !e.HasAnti()) { return nil, false }
	return e, true
}

// IsParticle returns true if id refers to a particle or antiparticle in the
// table.
func (pd *ParticleData) IsParticle(id int) bool {
	_, ok := pd.FindParticle(id)
	return ok
}

// MayDecay sets whether a species is allowed to decay. It returns false if
// the species isn't in the table.
func (pd *ParticleData) MayDecay(id int, mayDecay bool) bool {
	e, ok := pd.FindParticle(id)
	if !ok { return false }
	e.MayDecay = mayDecay
	return true
}

// IDs returns the sorted ids of every species in the table.
func (pd *ParticleData) IDs() []int {
	out := make([]int, 0, len(pd.entries))
	for id := range pd.entries { out = append(out, id) }
	sort.Ints(out)
	return out
}

// Len returns the number of species in the table.
func (pd *ParticleData) Len() int { return len(pd.entries) }

func abs(x int) int {
	if x < 0 { return -x }
	return x
}
