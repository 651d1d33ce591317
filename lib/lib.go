/*package lib contains the configuration layer shared by the hepevt command:
reading and checking config files and building the logger, particle table,
and selection a run needs. The heavy lifting is done by lib/'s subpackages.

Config files use gcfg's INI syntax, e.g.

    [Convert]
    Input = events.txt
    Output = events.hepz
    Format = hepz
    Events = 0..999 - 63
    Selection = Final && Charge != 0
    Setting = Beams:eCM = 14000
    Setting = HardQCD:all = on
*/
package lib

import (
	"io"

	"github.com/charmbracelet/log"
)

var (
	// Version is the version of the software.
	Version = "0.1.0"
)

// NewLogger creates the logger used by every part of a run.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "hepevt",
		Level:           level,
		ReportTimestamp: true,
	})
}
