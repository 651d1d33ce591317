package pdt

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *ParticleData {
	pd, err := ReadYAMLFile("testdata/particles.yaml")
	require.NoError(t, err)
	return pd
}

func TestReadYAML(t *testing.T) {
	pd := testTable(t)
	assert.Equal(t, 9, pd.Len())
	assert.Equal(t, []int{11, 13, 22, 90, 111, 211, 2112, 2212, 3122}, pd.IDs())

	pi, ok := pd.FindParticle(211)
	require.True(t, ok)
	assert.Equal(t, "pi+", pi.Name)
	assert.Equal(t, -211, pi.AntiID())
	assert.InDelta(t, 0.13957, pi.M0, 1e-12)
	assert.True(t, pi.MayDecay)

	_, err := ReadYAML(strings.NewReader("particles:\n  - {id: 5, name: b}\n  - {id: 5, name: bb}\n"))
	assert.Error(t, err, "duplicate ids")
	_, err = ReadYAML(strings.NewReader("particles:\n  - {id: -5, name: bbar}\n"))
	assert.Error(t, err, "negative ids")
	_, err = ReadYAML(strings.NewReader("particles: [\n"))
	assert.Error(t, err, "malformed yaml")
}

func TestFindParticle(t *testing.T) {
	pd := testTable(t)

	tests := []struct {
		id     int
		found  bool
		baseID int
	}{
		{211, true, 211},
		{-211, true, 211},
		{111, true, 111},
		{-111, false, 0},
		{22, true, 22},
		{-22, false, 0},
		{-2212, true, 2212},
		{321, false, 0},
		{0, false, 0},
	}

	for i := range tests {
		e, ok := pd.FindParticle(tests[i].id)
		if ok != tests[i].found {
			t.Errorf("%d) Expected FindParticle(%d) found = %v, got %v.",
				i, tests[i].id, tests[i].found, ok)
		} else if ok && e.ID != tests[i].baseID {
			t.Errorf("%d) Expected FindParticle(%d) to return id %d, got %d.",
				i, tests[i].id, tests[i].baseID, e.ID)
		}
		if pd.IsParticle(tests[i].id) != tests[i].found {
			t.Errorf("%d) IsParticle(%d) disagrees with FindParticle.",
				i, tests[i].id)
		}
	}
}

func TestMayDecay(t *testing.T) {
	pd := testTable(t)
	assert.True(t, pd.MayDecay(-211, false))
	pi, _ := pd.FindParticle(211)
	assert.False(t, pi.MayDecay)
	assert.False(t, pd.MayDecay(999999, true))
}

func TestAddParticle(t *testing.T) {
	pd := New()
	require.NoError(t, pd.AddParticle(Entry{ID: 321, Name: "K+", AntiName: "K-", ChargeType: 3}))
	assert.Error(t, pd.AddParticle(Entry{ID: 0, Name: "nothing"}))

	e := Entry{ID: 4122, Name: "Lambda_c+", AntiName: "Lambda_cbar-", ChargeType: 3}
	require.NoError(t, pd.AddParticle(e))
	e.ChargeType = 0
	got, _ := pd.FindParticle(4122)
	assert.Equal(t, 3, got.ChargeType, "table must copy entries")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		id                                    int
		lepton, quark, gluon, diquark, parton bool
		hadron, meson, baryon                 bool
	}{
		{11, true, false, false, false, false, false, false, false},
		{-16, true, false, false, false, false, false, false, false},
		{1, false, true, false, false, true, false, false, false},
		{-5, false, true, false, false, true, false, false, false},
		{21, false, false, true, false, true, false, false, false},
		{2203, false, false, false, true, true, false, false, false},
		{211, false, false, false, false, false, true, true, false},
		{130, false, false, false, false, false, true, true, false},
		{310, false, false, false, false, false, true, true, false},
		{-2212, false, false, false, false, false, true, false, true},
		{3122, false, false, false, false, false, true, false, true},
		{22, false, false, false, false, false, false, false, false},
		{90, false, false, false, false, false, false, false, false},
		{1000022, false, false, false, false, false, false, false, false},
	}

	for i, tt := range tests {
		got := []bool{IsLepton(tt.id), IsQuark(tt.id), IsGluon(tt.id),
			IsDiquark(tt.id), IsParton(tt.id), IsHadron(tt.id),
			IsMeson(tt.id), IsBaryon(tt.id)}
		exp := []bool{tt.lepton, tt.quark, tt.gluon, tt.diquark, tt.parton,
			tt.hadron, tt.meson, tt.baryon}
		if !assert.Equal(t, exp, got, "id %d", tt.id) {
			t.Logf("%d) classification of %d is wrong.", i, tt.id)
		}
	}
}

func TestChargeFromPID(t *testing.T) {
	pd := testTable(t)

	tests := []struct {
		pid    int
		charge float64
	}{
		{211, +1}, {-211, -1},
		{11, -1}, {-11, +1},
		{2212, 1}, {-2212, -1},
		{111, 0}, {22, 0}, {2112, 0}, {-2112, 0},
	}

	for i := range tests {
		q, err := ChargeFromPID(pd, tests[i].pid)
		if err != nil {
			t.Errorf("%d) Expected charge of %d to be found, got error '%s'.",
				i, tests[i].pid, err.Error())
		} else if q != tests[i].charge {
			t.Errorf("%d) Expected charge of %d to be %g, got %g.",
				i, tests[i].pid, tests[i].charge, q)
		}
	}

	_, err := ChargeFromPID(pd, 321)
	assert.True(t, errors.Is(err, ErrUnknownPID))
	_, err = ChargeFromPID(pd, -111)
	assert.True(t, errors.Is(err, ErrUnknownPID))
}

func TestHEPPDT(t *testing.T) {
	tab := HEPPDT{}

	tests := []struct {
		pid    int
		charge float64
	}{
		{211, +1}, {-211, -1}, {22, 0}, {11, -1}, {-11, +1}, {2212, +1},
	}

	for i := range tests {
		e, ok := tab.FindParticle(tests[i].pid)
		if !ok {
			t.Errorf("%d) Expected %d to be in the go-hep table.", i, tests[i].pid)
			continue
		} else if e.ID != tests[i].pid {
			t.Errorf("%d) Expected entry for %d, got entry for %d.",
				i, tests[i].pid, e.ID)
		}

		q, err := ChargeFromPID(tab, tests[i].pid)
		if err != nil {
			t.Errorf("%d) Expected charge of %d to be found, got error '%s'.",
				i, tests[i].pid, err.Error())
		} else if q != tests[i].charge || math.Signbit(q) != math.Signbit(tests[i].charge) {
			t.Errorf("%d) Expected charge of %d to be %g, got %g.",
				i, tests[i].pid, tests[i].charge, q)
		}
	}

	for _, pid := range []int{-22, -111, -23, 999999999} {
		if _, ok := tab.FindParticle(pid); ok {
			t.Errorf("Expected %d to be missing from the go-hep table.", pid)
		}
		_, err := ChargeFromPID(tab, pid)
		assert.True(t, errors.Is(err, ErrUnknownPID), "pid %d", pid)
	}
}

func TestChargesFromPIDs(t *testing.T) {
	pd := testTable(t)

	out := make([]float64, 4)
	require.NoError(t, ChargesFromPIDs(pd, []int32{211, -211, 22, -13}, out))
	assert.Equal(t, []float64{1, -1, 0, 1}, out)

	assert.Error(t, ChargesFromPIDs(pd, []int32{211}, out))
	err := ChargesFromPIDs(pd, []int32{211, 12345, 22, 13}, out)
	assert.True(t, errors.Is(err, ErrUnknownPID))
}

func TestChargeType(t *testing.T) {
	e := Entry{ID: 2, Name: "u", AntiName: "ubar", ChargeType: 2}
	assert.InDelta(t, 2.0/3, e.Charge(), 1e-15)
	pd := New()
	require.NoError(t, pd.AddParticle(e))
	q, err := ChargeFromPID(pd, -2)
	require.NoError(t, err)
	assert.InDelta(t, -2.0/3, q, 1e-15)
}
