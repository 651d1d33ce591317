package pdt

import (
	"errors"
	"fmt"
)

// ErrUnknownPID is returned (wrapped) when a type code isn't in a Table.
var ErrUnknownPID = errors.New("unknown PDG id")

// ChargeFromPID returns the electric charge of the particle with the given PDG
// id. The table lookup may return the entry of the particle when asked about
// its antiparticle, in which case the stored charge is negated.
func ChargeFromPID(tab Table, pid int) (float64, error) {
	e, ok := tab.FindParticle(pid)
	if !ok || e == nil {
		return 0, fmt.Errorf("%w: %d is not in the particle table", ErrUnknownPID, pid)
	}
	if pid == e.ID { return e.Charge(), nil }
	return -e.Charge(), nil
}

// ChargesFromPIDs writes the charge of each id in pids to out. The two arrays
// must have the same length. The first unknown id stops the loop and is
// returned as an error; out is only partially written in that case.
func ChargesFromPIDs(tab Table, pids []int32, out []float64) error {
	if len(pids) != len(out) {
		return fmt.Errorf("'pids' has length %d, but 'out' has length %d.",
			len(pids), len(out))
	}
	for i, pid := range pids {
		q, err := ChargeFromPID(tab, int(pid))
		if err != nil { return err }
		out[i] = q
	}
	return nil
}
