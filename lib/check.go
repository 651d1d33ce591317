package lib

/* check.go contains the core functions of the "check" mode. */

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DataDog/zstd"
	"github.com/charmbracelet/log"

	g_error "github.com/phil-mansfield/hepevt/lib/error"
)

// CheckErrors returns every problem with args that can be found without
// running the conversion.
func CheckErrors(args *Args) []error {
	errs := []error{}

	if args.Input == "" {
		errs = append(errs, fmt.Errorf("No Input file was given."))
	} else if info, err := os.Stat(args.Input); err != nil {
		errs = append(errs, fmt.Errorf("The Input file '%s' cannot be "+
			"opened: %w", args.Input, err))
	} else if info.IsDir() {
		errs = append(errs, fmt.Errorf("The Input file '%s' is a "+
			"directory.", args.Input))
	}

	if args.Output != "" {
		dir := filepath.Dir(args.Output)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("The directory '%s' for the "+
				"Output file does not exist.", dir))
		}
	}

	if args.Capacity < 1 {
		errs = append(errs, fmt.Errorf("Capacity is set to %d, but must be "+
			"positive.", args.Capacity))
	}

	if args.Format == HepzFormat && (args.CompressionLevel < zstd.BestSpeed ||
		args.CompressionLevel > zstd.BestCompression) {
		errs = append(errs, fmt.Errorf("CompressionLevel is set to %d, but "+
			"must be in the range [%d, %d].", args.CompressionLevel,
			zstd.BestSpeed, zstd.BestCompression))
	}

	if _, err := LoadTable(args); err != nil {
		errs = append(errs, err)
	}
	if _, err := LoadSelection(args); err != nil {
		errs = append(errs, err)
	}
	if _, bad := LoadSettings(args, nil, false); bad > 0 {
		errs = append(errs, fmt.Errorf("%d Setting lines could not be "+
			"parsed.", bad))
	}

	return errs
}

// Check runs the "check" command on the provided Args. This function will
// either crash upon encountering errors or will log warnings, depending on
// strictness. If Check completes, it returns true if all tests passed and
// false otherwise.
func Check(args *Args, strictness CheckStrictness, logger *log.Logger) bool {
	errs := CheckErrors(args)
	if len(errs) == 0 { return true }

	if strictness == CrashOnError {
		g_error.External("%s", errs[0].Error())
	}
	for _, err := range errs {
		logger.Warn("config check failed", "err", err)
	}
	return false
}
