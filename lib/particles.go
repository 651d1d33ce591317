package lib

/* This file builds the particle table, selection and settings of a run. */

import (
	"github.com/charmbracelet/log"

	"github.com/phil-mansfield/hepevt/lib/pdt"
	"github.com/phil-mansfield/hepevt/lib/selection"
	"github.com/phil-mansfield/hepevt/lib/settings"
)

// LoadTable returns the particle table named by ParticleTable, or go-hep's
// built-in table if none was given.
func LoadTable(args *Args) (pdt.Table, error) {
	if args.ParticleTable == "" { return pdt.HEPPDT{}, nil }
	return pdt.ReadYAMLFile(args.ParticleTable)
}

// LoadSelection compiles the Selection expression.
func LoadSelection(args *Args) (*selection.Selection, error) {
	return selection.Compile(args.Selection)
}

// LoadSettings parses every Setting line. Malformed lines are dropped and, if
// warn is true, logged. It returns the number of dropped lines.
func LoadSettings(
	args *Args, logger *log.Logger, warn bool,
) (*settings.Settings, int) {
	s := settings.New(logger)
	bad := s.ReadStrings(args.Settings, warn)
	return s, bad
}
