/*package format handles the sequence format used to pick which events get
processed, e.g.

   Events = 0..1000 - 63 - 100..110 + 2000

A sequence format is a series of tokens separated by "+" or "-". Each token is
either a number or two numbers separated by "..", an inclusive range. Tokens
after a "+" are added to the sequence and tokens after a "-" are removed from
it. A leading "+" can be dropped. Adding a number which is already present, or
removing one which isn't, is an error: it's almost always a typo.

All spaces around "-" and "+" symbols are ignored.
*/
package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// Any expanded formats which would have more than BigNumber elements are
	// assumed to be bugs.
	BigNumber = 1 << 24
)

// Sequence is a parsed sequence format.
type Sequence struct {
	values []int
	set    map[int]bool
}

// Parse parses and expands a sequence format.
func Parse(format string) (*Sequence, error) {
	values, err := ExpandSequenceFormat(format)
	if err != nil { return nil, err }

	seq := &Sequence{values: values, set: make(map[int]bool, len(values))}
	for _, n := range values { seq.set[n] = true }
	return seq, nil
}

// Contains returns true if n is in the sequence.
func (seq *Sequence) Contains(n int) bool { return seq.set[n] }

// Values returns the sorted members of the sequence.
func (seq *Sequence) Values() []int { return seq.values }

// Max returns the largest member of the sequence, or -1 if it's empty.
func (seq *Sequence) Max() int {
	if len(seq.values) == 0 { return -1 }
	return seq.values[len(seq.values)-1]
}

// ExpandSequenceFormat expands a sequence format string into a sorted sequence
// of integers.
func ExpandSequenceFormat(format string) ([]int, error) {
	tok, err := tokeniseSequenceFormat(format)
	if err != nil { return nil, err }
	adds, subs, err := addsSubsSequenceFormat(tok)
	if err != nil { return nil, err }

	size := 0
	for _, t := range adds {
		lo, hi, err := parseSequenceFormatToken(t)
		if err != nil { return nil, err }
		size += hi - lo + 1
		if size > BigNumber {
			return nil, fmt.Errorf("This sequence would have more than %d "+
				"elements, which is almost certainly a bug.", BigNumber)
		}
	}

	m := make(map[int]bool, size)
	for _, t := range adds {
		lo, hi, _ := parseSequenceFormatToken(t)
		for n := lo; n <= hi; n++ {
			if m[n] {
				return nil, fmt.Errorf("The number %d is added more than once.", n)
			}
			m[n] = true
		}
	}

	for _, t := range subs {
		lo, hi, err := parseSequenceFormatToken(t)
		if err != nil { return nil, err }
		for n := lo; n <= hi; n++ {
			if !m[n] {
				return nil, fmt.Errorf("The number %d is removed more times "+
					"than it was inserted.", n)
			}
			delete(m, n)
		}
	}

	out := make([]int, 0, len(m))
	for n := range m { out = append(out, n) }
	sort.Ints(out)
	return out, nil
}

// tokeniseSequenceFormat splits a format string into numbers, ranges, and
// operators.
func tokeniseSequenceFormat(format string) ([]string, error) {
	r := strings.NewReplacer("+", " + ", "-", " - ")
	tok := strings.Fields(r.Replace(format))
	if len(tok) == 0 {
		return nil, fmt.Errorf("The format string is empty.")
	}
	return tok, nil
}

// addsSubsSequenceFormat sorts tokens into those which are added and those
// which are removed, checking that operators and operands alternate.
func addsSubsSequenceFormat(tok []string) (adds, subs []string, err error) {
	if len(tok) == 0 {
		return nil, nil, fmt.Errorf("Format string is empty")
	}

	// An implicit leading "+".
	if tok[0] != "+" && tok[0] != "-" {
		tok = append([]string{"+"}, tok...)
	}

	adds, subs = []string{}, []string{}
	for i := 0; i < len(tok); i += 2 {
		op := tok[i]
		if op != "-" && op != "+" {
			return nil, nil, fmt.Errorf("'%s' should be a '-' or '+', but "+
				"isn't.", op)
		} else if i+1 >= len(tok) {
			return nil, nil, fmt.Errorf("The format string ends in a "+
				"trailing '%s'", op)
		}

		arg := tok[i+1]
		if err := isSequenceFormatToken(arg); err != nil {
			return nil, nil, fmt.Errorf("'%s' cannot be parsed because %s",
				arg, err.Error())
		}

		if op == "+" {
			adds = append(adds, arg)
		} else {
			subs = append(subs, arg)
		}
	}

	return adds, subs, nil
}

// isSequenceFormatToken returns a nil error is tok is a valid number or range
// and an error describing the problem otherwise. The error message assumes it
// is printed after a "because".
func isSequenceFormatToken(tok string) error {
	if len(tok) == 0 {
		return fmt.Errorf("the token is empty.")
	}

	bounds := strings.Split(tok, "..")
	if len(bounds) > 2 {
		return fmt.Errorf("it has more than one '..'.")
	}

	n := make([]int, len(bounds))
	for i := range bounds {
		var err error
		if n[i], err = strconv.Atoi(bounds[i]); err != nil {
			return fmt.Errorf("'%s' is not an integer.", bounds[i])
		}
	}

	if len(n) == 2 && n[1] < n[0] {
		return fmt.Errorf("lower bound %d is larger than upper bound %d.",
			n[0], n[1])
	}
	return nil
}

// parseSequenceFormatToken returns the inclusive bounds of a token.
func parseSequenceFormatToken(tok string) (lo, hi int, err error) {
	if err = isSequenceFormatToken(tok); err != nil {
		return 0, 0, fmt.Errorf("'%s' cannot be parsed because %s",
			tok, err.Error())
	}

	bounds := strings.Split(tok, "..")
	lo, _ = strconv.Atoi(bounds[0])
	if len(bounds) == 1 { return lo, lo, nil }
	hi, _ = strconv.Atoi(bounds[1])
	return lo, hi, nil
}
