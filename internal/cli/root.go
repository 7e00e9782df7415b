// Package cli is the threadgen command line: thread calculations, preset
// tables, drill lookups, exports and XLSX imports without the HTTP server.
package cli

import (
	"os"
	"strings"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/logger"
	"Threads/internal/thread"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// optionFlags are the calculation options shared by several commands.
type optionFlags struct {
	material  string
	drillSets string
	length    float64
	noDrill   bool
}

func (f *optionFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.material, "material", "m", "", "Material: hard|ferrous|soft (default ferrous)")
	c.Flags().StringVarP(&f.drillSets, "drill-sets", "d", "", "Comma separated drill sets: fractional,letter,number,metric (default per standard)")
	c.Flags().Float64VarP(&f.length, "length", "l", 0, "Length of engagement for the tolerance factor (default the nominal diameter)")
	c.Flags().BoolVar(&f.noDrill, "no-drill", false, "Skip tap drill selection")
}

func (f *optionFlags) options() (calc.Options, error) {
	var opts calc.Options
	var err error
	if opts.Material, err = thread.ParseMaterial(f.material); err != nil {
		return calc.Options{}, err
	}
	if f.drillSets != "" {
		if opts.DrillSets, err = drill.ParseKinds(strings.Split(f.drillSets, ",")); err != nil {
			return calc.Options{}, err
		}
	}
	if f.noDrill {
		opts.DrillSets = []drill.Kind{}
	}
	opts.EngagementLength = f.length
	if err = opts.Validate("cli.options"); err != nil {
		return calc.Options{}, err
	}
	return opts, nil
}

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "threadgen",
		Short:        "British thread limits, tap drills and Fusion 360 thread definitions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(logger.Config{Debug: debug, Text: true, Output: cmd.ErrOrStderr()})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.AddCommand(calcCmd(), tableCmd(), standardsCmd(), drillCmd(), exportCmd(), importCmd())
	return cmd
}
