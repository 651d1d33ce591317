package lib

import (
	"fmt"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/charmbracelet/log"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/hepevt/lib/format"
	"github.com/phil-mansfield/hepevt/lib/hepevt"
)

// ConvertConfig is the [Convert] section of a config file.
type ConvertConfig struct {
	// Input is the event listing to read.
	Input string
	// Output is the file converted records are written to.
	Output string
	// Format is the output format, "ascii" or "hepz".
	Format string
	// Events is a sequence format selecting which events are written. Empty
	// means every event.
	Events string
	// Capacity is the number of particles the record starts out with.
	Capacity int
	// CompressionLevel is the zstd level used for .hepz files.
	CompressionLevel int
	// ParticleTable is a YAML particle table. Empty means go-hep's table.
	ParticleTable string
	// Selection is an expression used when counting particles.
	Selection string
	LogLevel  string
	// Setting lines are passed through to the generator and stored in
	// .hepz headers. It can be given any number of times.
	Setting []string
}

// RawArgs stores the unprocessed values which the user assigned to each config
// variable.
type RawArgs struct {
	Convert ConvertConfig
}

// DefaultRawArgs returns RawArgs with every default value filled in.
func DefaultRawArgs() *RawArgs {
	return &RawArgs{Convert: ConvertConfig{
		Format:           "ascii",
		Capacity:         hepevt.DefaultCapacity,
		CompressionLevel: zstd.DefaultCompression,
		LogLevel:         "info",
	}}
}

// Args stores configuration information. It is a post-processed version of
// RawArgs.
type Args struct {
	Input, Output    string
	Format           OutputFormat
	Events           *format.Sequence // nil if every event is used.
	Capacity         int
	CompressionLevel int
	ParticleTable    string
	Selection        string
	LogLevel         log.Level
	Settings         []string
}

// ParseConfigFile parses arguments from a config file, starting from the
// default values.
func ParseConfigFile(fileName string) (*RawArgs, error) {
	args := DefaultRawArgs()
	if err := gcfg.ReadFileInto(args, fileName); err != nil {
		return nil, fmt.Errorf("Could not parse the config file '%s': %w",
			fileName, err)
	}
	return args, nil
}

// ParseConfigString is ParseConfigFile for a config held in memory.
func ParseConfigString(text string) (*RawArgs, error) {
	args := DefaultRawArgs()
	if err := gcfg.ReadStringInto(args, text); err != nil {
		return nil, fmt.Errorf("Could not parse the config: %w", err)
	}
	return args, nil
}

// Overwrite arguments in arg1 which have been set to non-default values in
// arg2. Settings in arg2 are appended to those in arg1.
func (arg1 *RawArgs) Overwrite(arg2 *RawArgs) {
	c1, c2 := &arg1.Convert, &arg2.Convert

	strs := []struct{ dst *string; src string }{
		{&c1.Input, c2.Input}, {&c1.Output, c2.Output},
		{&c1.Format, c2.Format}, {&c1.Events, c2.Events},
		{&c1.ParticleTable, c2.ParticleTable},
		{&c1.Selection, c2.Selection}, {&c1.LogLevel, c2.LogLevel},
	}
	for _, s := range strs {
		if s.src != "" { *s.dst = s.src }
	}

	if c2.Capacity != 0 { c1.Capacity = c2.Capacity }
	if c2.CompressionLevel != 0 { c1.CompressionLevel = c2.CompressionLevel }
	c1.Setting = append(c1.Setting, c2.Setting...)
}

// Process converts the raw user input to a format which is more useful for
// internal functions. Very simple validation will be done here, but nothing
// which requires interacting with external files.
func (args *RawArgs) Process() (*Args, error) {
	c := &args.Convert
	out := &Args{
		Input: c.Input, Output: c.Output,
		Capacity: c.Capacity, CompressionLevel: c.CompressionLevel,
		ParticleTable: c.ParticleTable, Selection: c.Selection,
		Settings: append([]string{}, c.Setting...),
	}

	var err error
	if out.Format, err = ParseOutputFormat(c.Format); err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.Events) != "" {
		if out.Events, err = format.Parse(c.Events); err != nil {
			return nil, fmt.Errorf("Could not parse Events = '%s': %w",
				c.Events, err)
		}
	}

	level := c.LogLevel
	if level == "" { level = "info" }
	if out.LogLevel, err = log.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("'%s' is not a valid LogLevel.", c.LogLevel)
	}

	return out, nil
}

// UseEvent returns true if the event with number nev should be written.
func (args *Args) UseEvent(nev int) bool {
	return args.Events == nil || args.Events.Contains(nev)
}
