package cli

import (
	"encoding/json"
	"io"
	"os"

	"Threads/internal/calc/engine"
	"Threads/internal/export"
	"Threads/internal/importer"
	"Threads/internal/logger"
	"Threads/internal/registry"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var flags optionFlags
	var format, out string

	c := &cobra.Command{
		Use:   "export <standard>",
		Short: "Write a standard's preset table as Fusion 360 XML, XLSX or PDF",
		Example: `  threadgen export bsw --format xml --out BritishWhitworth.xml
  threadgen export ba --format pdf --out ba.pdf`,
		Args: cobra.ExactArgs(1),
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
			items := engine.Table(k, opts)

			return withOutput(cmd, out, func(w io.Writer) error {
				return export.Write(w, export.Format(format), std, items)
			})
		},
	}
	flags.register(c)
	c.Flags().StringVarP(&format, "format", "f", "xml", "Export format: xml|xlsx|pdf")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return c
}

func importCmd() *cobra.Command {
	var flags optionFlags
	var format, to, out string

	c := &cobra.Command{
		Use:   "import <standard> <sizes.xlsx>",
		Short: "Calculate the sizes listed in an XLSX sheet (size, tpi, series columns)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := registry.ParseKind(args[0])
			if err != nil {
				return err
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			presets, skipped, err := importer.ReadPresets(k, f)
			if err != nil {
				return err
			}
			for _, s := range skipped {
				logger.L().Warn("import.row_skipped", "row", s.Row, "error", s.Error)
			}
			std, _ := registry.Lookup(k)
			items := engine.Batch(k, presets, opts)

			if to != "" {
				return withOutput(cmd, out, func(w io.Writer) error {
					return export.Write(w, export.Format(to), std, items)
				})
			}
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(importer.Result{Count: len(items), Items: items, Skipped: skipped})
			}
			return printItems(cmd.OutOrStdout(), format, std, items)
		},
	}
	flags.register(c)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&to, "export", "", "Export the results instead: xml|xlsx|pdf")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file for --export (default stdout)")
	return c
}

func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	logger.L().Info("export.written", "path", path)
	return f.Close()
}
