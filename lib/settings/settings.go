/*package settings stores generator settings as plain strings. Nothing here
knows what any setting means: lines like "Random:seed = 10" are parsed,
stored, and handed back so they can be forwarded to a generator or written
into output headers.
*/
package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

type setting struct {
	key, value string
}

// Settings is a case-insensitive key/value store. The zero value is not
// usable, create one with New.
type Settings struct {
	logger *log.Logger
	values map[string]setting
	order  []string
}

// New creates an empty Settings. Warnings about malformed lines are written
// to logger, which may be nil to discard them.
func New(logger *log.Logger) *Settings {
	return &Settings{logger: logger, values: map[string]setting{}}
}

// ReadString parses a single "Key = value" line and stores it, overwriting any
// earlier value for the same key. Blank lines and lines starting with '!' or
// '#' are ignored and count as success. Text after a '!' is a comment. It
// returns false if the line couldn't be parsed; if warn is true, the reason is
// logged.
func (s *Settings) ReadString(line string, warn bool) bool {
	if i := strings.IndexByte(line, '!'); i >= 0 { line = line[:i] }
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' { return true }

	key, value, err := parseLine(line)
	if err != nil {
		if warn && s.logger != nil {
			s.logger.Warn("ignoring setting", "line", line, "err", err)
		}
		return false
	}

	lower := strings.ToLower(key)
	if _, ok := s.values[lower]; !ok {
		s.order = append(s.order, lower)
	}
	s.values[lower] = setting{key, value}
	return true
}

func parseLine(line string) (key, value string, err error) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", fmt.Errorf("The setting '%s' has no '='.", line)
	}
	key, value = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", fmt.Errorf("The setting '%s' has no name.", line)
	} else if strings.ContainsAny(key, " \t") {
		return "", "", fmt.Errorf("The setting name '%s' contains spaces.", key)
	}
	return key, value, nil
}

// ReadStrings calls ReadString on every line and returns the number of lines
// which couldn't be parsed.
func (s *Settings) ReadStrings(lines []string, warn bool) int {
	bad := 0
	for _, line := range lines {
		if !s.ReadString(line, warn) { bad++ }
	}
	return bad
}

// Get returns the value of a setting. Keys are case-insensitive.
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[strings.ToLower(strings.TrimSpace(key))]
	return v.value, ok
}

// Keys returns every stored key, with its original capitalization, sorted
// case-insensitively.
func (s *Settings) Keys() []string {
	lower := append([]string{}, s.order...)
	sort.Strings(lower)
	out := make([]string, len(lower))
	for i := range lower { out[i] = s.values[lower[i]].key }
	return out
}

// Lines returns every setting as a "Key = value" line, in the order the keys
// were first set.
func (s *Settings) Lines() []string {
	out := make([]string, len(s.order))
	for i, k := range s.order {
		out[i] = fmt.Sprintf("%s = %s", s.values[k].key, s.values[k].value)
	}
	return out
}

// Len returns the number of stored settings.
func (s *Settings) Len() int { return len(s.order) }

// ResetAll removes every setting.
func (s *Settings) ResetAll() {
	s.values = map[string]setting{}
	s.order = s.order[:0]
}
