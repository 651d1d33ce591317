package event

// Info holds per-event bookkeeping reported by the generator alongside the
// particle record. Nil pointers mean the generator didn't report that block.
type Info struct {
	HI    *HIInfo
	Sigma *SigmaTotal

	IsDiffractiveA, IsDiffractiveB, IsDiffractiveC bool
	IsNonDiffractive                               bool
}

// HIInfo describes a heavy-ion collision.
type HIInfo struct {
	// NPartProj and NPartTarg are the numbers of participating nucleons
	// in the projectile and target.
	NPartProj, NPartTarg int
	// B is the impact parameter in fm.
	B float64
}

// SigmaTotal holds total and partial cross-sections in mb, and the ratio of
// the real to imaginary parts of the forward elastic amplitude.
type SigmaTotal struct {
	SigmaTot, SigmaEl                float64
	SigmaXB, SigmaAX, SigmaXX        float64
	SigmaAXB, SigmaND                float64
	Rho                              float64
}
