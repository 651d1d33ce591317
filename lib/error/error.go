/*package error contains simple funcitons for reporting fatal hepevt errors.
Only the command line tool and the check mode it drives (lib.Check with
CrashOnError) call them. Every other package returns errors.
*/
package error

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hepevt"})
	// exit is swapped out by tests.
	exit = os.Exit
)

// SetLogger changes the logger that fatal errors are reported through.
func SetLogger(l *log.Logger) {
	if l != nil { logger = l }
}

// External reports an error to stderr and kills the program. It should be used
// when an error is something a user could reasonbly be expected to fix through
// changes in configuration/data/environement. It has the same signature at the
// standard fmt.*printf() functions.
func External(format string, a ...interface{}) {
	logger.Error("hepevt exited early with the following error:\n" +
		fmt.Sprintf(format, a...))
	exit(1)
}

// Internal reports an error to stderr along with a strack trace and kills the
// program. It should be used when the error requires a code dive to fix. It
// has the same signature at the standard fmt.*printf() functions.
func Internal(format string, a ...interface{}) {
	logger.Error("hepevt exited early with an internal error:\n"+
		fmt.Sprintf(format, a...), "stack", string(debug.Stack()))
	exit(1)
}
