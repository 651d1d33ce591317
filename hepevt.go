package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/hepevt/lib"
	g_error "github.com/phil-mansfield/hepevt/lib/error"
	"github.com/phil-mansfield/hepevt/lib/pdt"
)

func main() {
	if err := newRootCommand(os.Stderr).Execute(); err != nil {
		g_error.External("%s", err.Error())
	}
}

// newRootCommand creates the hepevt command and all its subcommands. Logs are
// written to logs.
func newRootCommand(logs io.Writer) *cobra.Command {
	flags := &lib.RawArgs{}

	root := &cobra.Command{
		Use:   "hepevt",
		Short: "Convert generator event listings into HEPEVT records",
		Long: `hepevt reads event listings, fills HEPEVT common-block records from
them, and writes the records as HEPEVT ASCII or as zstd-compressed .hepz files.

Examples:
  hepevt check run.cfg
  hepevt convert run.cfg --format hepz --output events.hepz
  hepevt stats run.cfg --selection "Final && Charge != 0"
  hepevt charge -- 211 -211 22`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	c := &flags.Convert
	pf.StringVar(&c.Input, "input", "", "event listing to read")
	pf.StringVar(&c.Output, "output", "", "file to write records to")
	pf.StringVar(&c.Format, "format", "", "output format: ascii or hepz")
	pf.StringVar(&c.Events, "events", "", "sequence of events to use, e.g. '0..100 - 7'")
	pf.StringVar(&c.ParticleTable, "table", "", "YAML particle table (default: go-hep's PDG table)")
	pf.StringVar(&c.Selection, "selection", "", "particle selection expression")
	pf.StringVar(&c.LogLevel, "log-level", "", "debug, info, warn, or error")
	pf.StringArrayVar(&c.Setting, "setting", nil, "generator setting line; may be repeated")

	root.AddCommand(
		newCheckCommand(flags, logs),
		newConvertCommand(flags, logs),
		newStatsCommand(flags, logs),
		newChargeCommand(flags),
		newVersionCommand(),
	)
	return root
}

// loadArgs reads a config file, applies command line overrides, and builds
// the logger for the run.
func loadArgs(
	configFile string, flags *lib.RawArgs, logs io.Writer,
) (*lib.Args, *log.Logger, error) {
	raw, err := lib.ParseConfigFile(configFile)
	if err != nil { return nil, nil, err }
	raw.Overwrite(flags)

	args, err := raw.Process()
	if err != nil { return nil, nil, err }

	logger := lib.NewLogger(logs, args.LogLevel)
	g_error.SetLogger(logger)
	return args, logger, nil
}

func newCheckCommand(flags *lib.RawArgs, logs io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "check <config>",
		Short: "Check a config file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			args, logger, err := loadArgs(argv[0], flags, logs)
			if err != nil { return err }
			if !lib.Check(args, lib.WarnOnError, logger) {
				return fmt.Errorf("The config file '%s' has errors.", argv[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "No errors detected.")
			return nil
		},
	}
}

func newConvertCommand(flags *lib.RawArgs, logs io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <config>",
		Short: "Convert an event listing into HEPEVT records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			args, logger, err := loadArgs(argv[0], flags, logs)
			if err != nil { return err }
			lib.Check(args, lib.CrashOnError, logger)

			n, err := lib.Convert(args, logger)
			if err != nil { return err }
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s.\n", n, args.Output)
			return nil
		},
	}
}

func newStatsCommand(flags *lib.RawArgs, logs io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <config>",
		Short: "Print multiplicity statistics of an event listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			args, logger, err := loadArgs(argv[0], flags, logs)
			if err != nil { return err }

			s, err := lib.Stats(args, logger)
			if err != nil { return err }

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "events              %d\n", s.Events())
			mean, std := s.Multiplicity()
			fmt.Fprintf(out, "final multiplicity  %.3f +/- %.3f (max %d)\n",
				mean, std, s.MaxMultiplicity())
			mean, std = s.ChargedMultiplicity()
			fmt.Fprintf(out, "charged             %.3f +/- %.3f\n", mean, std)
			mean, std = s.Selected()
			fmt.Fprintf(out, "selected            %.3f +/- %.3f (total %d)\n",
				mean, std, s.TotalSelected())
			mean, std = s.Mass()
			fmt.Fprintf(out, "final-state mass    %.3f +/- %.3f\n", mean, std)
			if s.Unknown() > 0 {
				fmt.Fprintf(out, "unknown particles   %d\n", s.Unknown())
			}
			return nil
		},
	}
}

func newChargeCommand(flags *lib.RawArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "charge <pid>...",
		Short: "Print the electric charges of PDG ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			tab, err := lib.LoadTable(&lib.Args{
				ParticleTable: flags.Convert.ParticleTable,
			})
			if err != nil { return err }

			pids := make([]int32, len(argv))
			for i := range argv {
				pid, err := strconv.ParseInt(argv[i], 10, 32)
				if err != nil {
					return fmt.Errorf("'%s' is not a PDG id.", argv[i])
				}
				pids[i] = int32(pid)
			}

			charges := make([]float64, len(pids))
			if err = pdt.ChargesFromPIDs(tab, pids, charges); err != nil {
				return err
			}
			for i := range pids {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %g\n", pids[i], charges[i])
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of hepevt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, argv []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hepevt %s\n", lib.Version)
		},
	}
}
