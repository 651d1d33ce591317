/*package stats computes per-event summaries of filled HEPEVT records and
aggregates them over a run.
*/
package stats

import (
	"errors"
	"math"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/phil-mansfield/hepevt/lib/hepevt"
	"github.com/phil-mansfield/hepevt/lib/pdt"
	"github.com/phil-mansfield/hepevt/lib/selection"
)

// EventStats summarises one event.
type EventStats struct {
	Nevhep   int
	Final    int // Slots with status 1.
	Charged  int // Final-state slots with non-zero charge.
	Selected int // Slots which pass the selection.
	Unknown  int // Slots whose id isn't in the particle table.

	// Total four-momentum of the final state.
	Px, Py, Pz, E float64
}

// P4 returns the total final-state four-momentum.
func (es *EventStats) P4() fmom.PxPyPzE {
	return fmom.NewPxPyPzE(es.Px, es.Py, es.Pz, es.E)
}

// Mass returns the invariant mass of the final state.
func (es *EventStats) Mass() float64 {
	p4 := es.P4()
	return p4.M()
}

// Accumulate computes the statistics of the event currently held in rec.
// Particles which aren't in tab are counted as Unknown and treated as
// neutral. A nil sel selects everything.
func Accumulate(
	rec *hepevt.Record, tab pdt.Table, sel *selection.Selection,
) (EventStats, error) {
	es := EventStats{Nevhep: rec.Nevhep()}

	for k := 0; k < rec.Nhep(); k++ {
		e := rec.Entry(k)

		q, err := pdt.ChargeFromPID(tab, e.ID)
		if errors.Is(err, pdt.ErrUnknownPID) {
			es.Unknown++
		} else if err != nil {
			return es, err
		}

		p := selection.FromEntry(e, q)
		if p.Final {
			es.Final++
			if q != 0 { es.Charged++ }
			es.Px += p.Px
			es.Py += p.Py
			es.Pz += p.Pz
			es.E += p.E
		}

		if sel == nil {
			es.Selected++
			continue
		}
		ok, err := sel.Match(p)
		if err != nil { return es, err }
		if ok { es.Selected++ }
	}

	return es, nil
}

// Summary aggregates EventStats over many events.
type Summary struct {
	final, charged, selected, mass []float64
	unknown                        int
}

// Add adds one event to the summary.
func (s *Summary) Add(es EventStats) {
	s.final = append(s.final, float64(es.Final))
	s.charged = append(s.charged, float64(es.Charged))
	s.selected = append(s.selected, float64(es.Selected))
	s.mass = append(s.mass, es.Mass())
	s.unknown += es.Unknown
}

// Events returns the number of events added.
func (s *Summary) Events() int { return len(s.final) }

// Unknown returns the total number of slots with ids missing from the table.
func (s *Summary) Unknown() int { return s.unknown }

// Multiplicity returns the mean and standard deviation of the final-state
// multiplicity.
func (s *Summary) Multiplicity() (mean, std float64) { return meanStd(s.final) }

// ChargedMultiplicity returns the mean and standard deviation of the charged
// final-state multiplicity.
func (s *Summary) ChargedMultiplicity() (mean, std float64) {
	return meanStd(s.charged)
}

// Selected returns the mean and standard deviation of the number of selected
// particles per event.
func (s *Summary) Selected() (mean, std float64) { return meanStd(s.selected) }

// TotalSelected returns the number of selected particles over all events.
func (s *Summary) TotalSelected() int {
	if len(s.selected) == 0 { return 0 }
	return int(floats.Sum(s.selected))
}

// MaxMultiplicity returns the largest final-state multiplicity seen.
func (s *Summary) MaxMultiplicity() int {
	if len(s.final) == 0 { return 0 }
	return int(floats.Max(s.final))
}

// Mass returns the mean and standard deviation of the final-state invariant
// mass.
func (s *Summary) Mass() (mean, std float64) { return meanStd(s.mass) }

// meanStd returns zeros instead of NaNs for samples too small to have a mean
// or a standard deviation.
func meanStd(x []float64) (mean, std float64) {
	switch len(x) {
	case 0: return 0, 0
	case 1: return x[0], 0
	}
	mean, std = stat.MeanStdDev(x, nil)
	if math.IsNaN(std) { std = 0 }
	return mean, std
}
