package event

import (
	"github.com/phil-mansfield/hepevt/lib/pdt"
)

// HEPEVT/HepMC status codes.
const (
	HepMCFinal   = 1
	HepMCDecayed = 2
	HepMCBeam    = 4
)

// StatusHepMC converts the native status of the entry at position i to the
// HepMC/HEPEVT convention:
//
//   native > 0                           -> 1 (final state)
//   native == -12                        -> 4 (beam)
//   hadron, mu or tau whose first
//   daughter has a different id and
//   |status| in 91..94                   -> 2 (decayed)
//   -200 <= native <= -11                -> -native (documentation)
//   anything else                        -> 0
//
// This is the same rule Pythia 8 applies in Particle::statusHepMC. It needs
// the whole event because the decay check looks at the first daughter.
func (evt *Event) StatusHepMC(i int) int {
	p := &evt.particles[i]
	if p.Status > 0 { return HepMCFinal }
	if p.Status == BeamStatus { return HepMCBeam }

	idAbs := p.ID
	if idAbs < 0 { idAbs = -idAbs }
	if pdt.IsHadron(p.ID) || idAbs == 13 || idAbs == 15 {
		d := p.Daughter1
		if d >= 0 && d < len(evt.particles) && evt.particles[d].ID != p.ID {
			statusDau := evt.particles[d].StatusAbs()
			if statusDau > 90 && statusDau < 95 { return HepMCDecayed }
		}
	}

	if p.Status <= -11 && p.Status >= -200 { return -p.Status }
	return 0
}
