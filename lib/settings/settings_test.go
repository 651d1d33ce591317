package settings

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		line       string
		ok         bool
		key, value string
	}{
		{"Random:seed = 10", true, "random:SEED", "10"},
		{"  Print:quiet=on  ", true, "print:quiet", "on"},
		{"ParticleDecays:tau0Max = 1e100 ! long-lived", true, "particledecays:tau0max", "1e100"},
		{"Beams:eCM =", true, "Beams:eCM", ""},
		{"", true, "", ""},
		{"# comment", true, "", ""},
		{"! comment", true, "", ""},
		{"no equals sign", false, "", ""},
		{"= 10", false, "", ""},
		{"two words = 10", false, "", ""},
	}

	for i := range tests {
		s := New(nil)
		ok := s.ReadString(tests[i].line, true)
		if ok != tests[i].ok {
			t.Errorf("%d) Expected ReadString('%s') = %v, got %v.",
				i, tests[i].line, tests[i].ok, ok)
			continue
		}
		if tests[i].key == "" {
			if s.Len() != 0 {
				t.Errorf("%d) Expected '%s' to store nothing.", i, tests[i].line)
			}
			continue
		}
		v, found := s.Get(tests[i].key)
		if !found || v != tests[i].value {
			t.Errorf("%d) Expected Get('%s') = '%s', got '%s' (found = %v).",
				i, tests[i].key, tests[i].value, v, found)
		}
	}
}

func TestWarn(t *testing.T) {
	out := &bytes.Buffer{}
	s := New(log.New(out))

	s.ReadString("broken", false)
	assert.Empty(t, out.String())
	s.ReadString("broken", true)
	assert.Contains(t, out.String(), "broken")
}

func TestOrderAndReset(t *testing.T) {
	s := New(nil)
	bad := s.ReadStrings([]string{
		"Random:setSeed = on",
		"Random:seed = 10",
		"random:setseed = off",
		"junk",
	}, false)

	assert.Equal(t, 1, bad)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"random:setseed = off", "Random:seed = 10"}, s.Lines())
	assert.Equal(t, []string{"Random:seed", "random:setseed"}, s.Keys())

	s.ResetAll()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get("Random:seed")
	assert.False(t, ok)
}
