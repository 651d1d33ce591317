/*package selection filters particles with boolean expressions such as

    Final && Charge != 0 && Pt > 0.5 && abs(Eta) < 2.5

Expressions are compiled once with expr-lang and then run against a Particle
for every slot of every event. The names an expression can use are the
fields of Particle.
*/
package selection

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go-hep.org/x/hep/fmom"

	"github.com/phil-mansfield/hepevt/lib/hepevt"
)

// Particle is the environment selection expressions are evaluated in.
type Particle struct {
	ID     int
	Status int
	Px     float64
	Py     float64
	Pz     float64
	E      float64
	M      float64
	Pt     float64
	Eta    float64
	Charge float64
	Final  bool
}

// FromEntry converts a HEPEVT slot into a Particle. The charge has to come
// from a particle table, since HEPEVT doesn't store it.
func FromEntry(e hepevt.Entry, charge float64) Particle {
	p4 := fmom.NewPxPyPzE(e.P[0], e.P[1], e.P[2], e.P[3])
	return Particle{
		ID: e.ID, Status: e.Status,
		Px: e.P[0], Py: e.P[1], Pz: e.P[2], E: e.P[3], M: e.P[4],
		Pt: p4.Pt(), Eta: eta(&p4),
		Charge: charge,
		Final:  e.Status == 1,
	}
}

// eta is the pseudorapidity, with particles along the beam axis sent to
// +/-Inf.
func eta(p4 *fmom.PxPyPzE) float64 {
	if p4.Pt() == 0 {
		if p4.Pz() == 0 { return 0 }
		return math.Copysign(math.Inf(1), p4.Pz())
	}
	return p4.Eta()
}

// Selection is a compiled expression. An empty expression matches every
// particle.
type Selection struct {
	src  string
	prog *vm.Program
}

// Compile compiles src. Expressions which refer to unknown names or which
// don't evaluate to a bool are rejected here rather than when they're run.
func Compile(src string) (*Selection, error) {
	if strings.TrimSpace(src) == "" { return &Selection{src: src}, nil }

	prog, err := expr.Compile(src, expr.Env(Particle{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("The selection '%s' could not be compiled: %w",
			src, err)
	}
	return &Selection{src: src, prog: prog}, nil
}

// Match reports whether p passes the selection.
func (s *Selection) Match(p Particle) (bool, error) {
	if s.prog == nil { return true, nil }

	out, err := expr.Run(s.prog, p)
	if err != nil { return false, err }
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("The selection '%s' returned %v instead of "+
			"a bool.", s.src, out)
	}
	return ok, nil
}

// String returns the source of the selection.
func (s *Selection) String() string { return s.src }
