package cli

import (
	"fmt"
	"strconv"
	"strings"

	"Threads/internal/drill"
	"Threads/internal/thread"

	"github.com/spf13/cobra"
)

func drillCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "drill",
		Short: "Look up and check tap drills",
	}
	c.AddCommand(drillNearestCmd(), drillValidateCmd(), drillListCmd())
	return c
}

func drillNearestCmd() *cobra.Command {
	var unit, sets string

	c := &cobra.Command{
		Use:   "nearest <diameter>",
		Short: "Find the catalog drill closest to a diameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil || !(target > 0) {
				return fmt.Errorf("bad diameter %q", args[0])
			}
			u, err := thread.ParseUnit(unit)
			if err != nil {
				return err
			}
			kinds := drill.Priority
			if sets != "" {
				if kinds, err = drill.ParseKinds(strings.Split(sets, ",")); err != nil {
					return err
				}
			}
			d, ok := drill.Nearest(target, u, kinds)
			if !ok {
				return fmt.Errorf("no drill set enabled")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s in\t%s mm\t%s\n",
				d.Name, num(thread.Round6(d.Inches)), num(thread.Round6(d.Millimetres())), d.Kind)
			return nil
		},
	}
	c.Flags().StringVarP(&unit, "unit", "u", "in", "Unit of the diameter: in|mm")
	c.Flags().StringVarP(&sets, "drill-sets", "d", "", "Comma separated drill sets (default all)")
	return c
}

func drillValidateCmd() *cobra.Command {
	var unit, material string
	var major, minor, nutMinorMax float64

	c := &cobra.Command{
		Use:   "validate <drill|diameter>",
		Short: "Rate a drill against a thread's major and minor diameters",
		Example: `  threadgen drill validate "#5" --major 0.25 --minor 0.185967 --nut-minor-max 0.202967
  threadgen drill validate 5.1 --unit mm --major 6 --minor 4.8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := thread.ParseUnit(unit)
			if err != nil {
				return err
			}
			m, err := thread.ParseMaterial(material)
			if err != nil {
				return err
			}
			size, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				d, ok := drill.Find(args[0])
				if !ok {
					return fmt.Errorf("unknown drill %q", args[0])
				}
				size = u.FromInches(d.Inches)
			}
			if err := thread.Positive("drill.validate", map[string]float64{"drill": size, "major": major, "minor": minor}); err != nil {
				return err
			}
			if nutMinorMax == 0 {
				nutMinorMax = major
			}
			v, err := drill.Validate(size, major, minor, nutMinorMax, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f%% engagement (target %.0f%%): %s [%s]\n",
				v.Engagement, v.TargetEngagement, v.Label, v.Status)
			return nil
		},
	}
	c.Flags().StringVarP(&unit, "unit", "u", "in", "Unit of every diameter: in|mm")
	c.Flags().StringVarP(&material, "material", "m", "", "Material: hard|ferrous|soft")
	c.Flags().Float64Var(&major, "major", 0, "Thread major diameter")
	c.Flags().Float64Var(&minor, "minor", 0, "Thread minor diameter")
	c.Flags().Float64Var(&nutMinorMax, "nut-minor-max", 0, "Largest permitted nut minor diameter (default the major)")
	_ = c.MarkFlagRequired("major")
	_ = c.MarkFlagRequired("minor")
	return c
}

func drillListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <set>",
		Short: "Print a drill catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := drill.ParseKind(args[0])
			if err != nil {
				return err
			}
			for _, d := range drill.Catalog(k) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Name, num(thread.Round6(d.Inches)))
			}
			return nil
		},
	}
}
