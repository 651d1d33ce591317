package pdt

/* io.go contains functions for creating Tables from external sources. */

import (
	"fmt"
	"io"
	"math"
	"os"

	"go-hep.org/x/hep/heppdt"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Particles []Entry `yaml:"particles"`
}

// ReadYAML reads a particle table from a YAML document of the form
//
//   particles:
//     - {id: 211, name: pi+, antiName: pi-, spinType: 1, chargeType: 3, m0: 0.13957}
//
// Ids must be positive and may only appear once.
func ReadYAML(rd io.Reader) (*ParticleData, error) {
	file := yamlFile{}
	if err := yaml.NewDecoder(rd).Decode(&file); err != nil {
		return nil, fmt.Errorf("Could not parse particle table: %w", err)
	}

	pd := New()
	for i, e := range file.Particles {
		if _, ok := pd.entries[e.ID]; ok {
			return nil, fmt.Errorf("Particle %d in the table, '%s', reuses "+
				"the id %d.", i, e.Name, e.ID)
		}
		if err := pd.AddParticle(e); err != nil { return nil, err }
	}
	return pd, nil
}

// ReadYAMLFile is ReadYAML applied to a named file.
func ReadYAMLFile(fname string) (*ParticleData, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, err }
	defer f.Close()
	return ReadYAML(f)
}

// HEPPDT is a Table backed by go-hep's default PDG table. It is used when no
// table file has been configured.
type HEPPDT struct{}

var _ Table = HEPPDT{}

// FindParticle looks up id in the go-hep table. Antiparticles are listed
// there as entries of their own, so a negative id which isn't listed has no
// particle behind it.
func (HEPPDT) FindParticle(id int) (*Entry, bool) {
	p := heppdt.ParticleByID(heppdt.PID(id))
	if p == nil { return nil, false }
	return entryFromHEPPDT(p), true
}

func entryFromHEPPDT(p *heppdt.Particle) *Entry {
	return &Entry{
		ID:         int(p.ID),
		Name:       p.Name,
		ChargeType: int(math.Round(3 * p.Charge)),
		M0:         p.Mass,
	}
}
