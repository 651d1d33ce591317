package lib

import (
	"fmt"
	"strings"
)

// OutputFormat is the file format converted records are written in.
type OutputFormat int
const (
	ASCIIFormat OutputFormat = iota
	HepzFormat
)

var formatNames = []string{"ascii", "hepz"}

// ParseOutputFormat converts a format name into an OutputFormat. Names are
// case-insensitive.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i := range formatNames {
		if strings.EqualFold(strings.TrimSpace(name), formatNames[i]) {
			return OutputFormat(i), nil
		}
	}
	return 0, fmt.Errorf("'%s' is not a recognized output format. The "+
		"supported formats are %s.", name, strings.Join(formatNames, ", "))
}

func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return formatNames[f]
}

// CheckStrictness indicates how functions related to the "check" mode
// should behave when it encounters an error.
type CheckStrictness int
const (
	CrashOnError CheckStrictness = iota
	WarnOnError
)
