package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"Threads/internal/calc"
	"Threads/internal/calc/engine"
	"Threads/internal/logger"
	"Threads/internal/registry"
	"Threads/internal/thread"

	"github.com/spf13/cobra"
)

func calcCmd() *cobra.Command {
	var flags optionFlags
	var format, series string

	c := &cobra.Command{
		Use:   "calc <standard> <size> [tpi]",
		Short: "Calculate the limits of one thread",
		Example: `  threadgen calc bsw 1/4 20
  threadgen calc ba 4
  threadgen calc me 5/16 32 --material soft
  threadgen calc bsw 1/4 19 --series BSF`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := registry.ParseKind(args[0])
			if err != nil {
				return err
			}
			tpi := 0.0
			if len(args) == 3 {
				if tpi, err = strconv.ParseFloat(args[2], 64); err != nil {
					return fmt.Errorf("bad tpi %q", args[2])
				}
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			p, err := registry.ResolvePreset(k, args[1], tpi, series)
			if err != nil {
				return err
			}
			req, err := engine.FromPreset(k, p, opts)
			if err != nil {
				return err
			}
			res, err := engine.Calculate(req)
			if err != nil {
				return err
			}
			logger.L().Debug("calc.done", "standard", k, "designation", p.Designation)

			std, _ := registry.Lookup(k)
			return printItems(cmd.OutOrStdout(), format, std, []engine.Item{{Preset: p, Result: res}})
		},
	}
	flags.register(c)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&series, "series", "", "Whitworth series (BSW or BSF); inferred from the default sizes when omitted")
	return c
}

func tableCmd() *cobra.Command {
	var flags optionFlags
	var format string

	c := &cobra.Command{
		Use:   "table <standard>",
		Short: "Calculate every preset size of a standard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := registry.ParseKind(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			std, _ := registry.Lookup(k)
			return printItems(cmd.OutOrStdout(), format, std, engine.Table(k, opts))
		},
	}
	flags.register(c)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func standardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standards",
		Short: "List the supported thread standards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUNIT\tANGLE\tCLASSES")
			for _, s := range registry.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", s.Kind, s.Name, s.Unit, num(s.Angle), s.Classes)
			}
			return tw.Flush()
		},
	}
}

func printItems(w io.Writer, format string, std registry.Standard, items []engine.Item) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(items) == 1 && items[0].Result != nil {
			return enc.Encode(items[0].Result)
		}
		return enc.Encode(items)
	case "pretty", "":
		printPretty(w, std, items)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPretty(w io.Writer, std registry.Standard, items []engine.Item) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", std.Name, std.Unit)
	fmt.Fprintln(tw, "DESIGNATION\tCLASS\tGENDER\tMAJOR\tPITCH\tMINOR\tTAP DRILL\tENGAGEMENT\tSTATUS")
	for _, it := range items {
		if it.Result == nil {
			fmt.Fprintf(tw, "%s\terror: %s\n", it.Preset.Designation, it.Error)
			continue
		}
		for _, class := range std.Classes {
			cr, ok := it.Result.Classes[class]
			if !ok {
				continue
			}
			for _, g := range []thread.Gender{thread.External, thread.Internal} {
				if l := cr.For(g); l != nil {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						it.Preset.Designation, class, g,
						span(l.Major), span(l.Pitch), span(l.Minor), drillCells(l.TapDrill))
				}
			}
		}
	}
	tw.Flush()
}

func drillCells(td *calc.TapDrill) string {
	if td == nil {
		return "\t\t"
	}
	return fmt.Sprintf("%s (%s)\t%.1f%%\t%s", td.Name, num(td.ToolSize), td.Validation.Engagement, td.Validation.Label)
}

func span(l thread.Limit) string {
	return num(l.Min) + "-" + num(l.Max)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
