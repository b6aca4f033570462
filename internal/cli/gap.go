package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/stats"
)

type gapReport struct {
	Group  string  `json:"group"`
	A      string  `json:"a"`
	B      string  `json:"b"`
	ValueA float64 `json:"value_a"`
	ValueB float64 `json:"value_b"`
	stats.GapSummary
}

func (r gapReport) String() string {
	return fmt.Sprintf("%s %d: %s. %s %.1f, %s %.1f",
		r.Group, r.Year, r.GapSummary.String(), r.A, r.ValueA, r.B, r.ValueB)
}

func newGapCmd() *cobra.Command {
	var (
		group string
		year  int
		a     string
		b     string
	)

	cmd := &cobra.Command{
		Use:   "gap",
		Short: "Describe the gap between two metrics of a group in a year",
		Long:  "Compare metric --a (girls) with metric --b (boys). Defaults to the first two configured metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			keys := app.Config.MetricKeys()
			if a == "" || b == "" {
				if len(keys) < 2 {
					return errors.New("gap needs two metrics; pass --a and --b")
				}
				if a == "" {
					a = keys[0]
				}
				if b == "" {
					b = keys[1]
				}
			}
			if !cmd.Flags().Changed("year") {
				year = app.Config.Series.ActualCutoffYear
			}

			l, err := app.lookup(cmd.Context(), group)
			if err != nil {
				return err
			}
			frame, _ := l.Frame(year)
			summary, ok := stats.Gap(frame, a, b, app.Config.Series.ActualCutoffYear)
			if !ok {
				return fmt.Errorf("metrics %q and %q are not both tracked", a, b)
			}

			return printResult(cmd, app, gapReport{
				Group:      group,
				A:          a,
				B:          b,
				ValueA:     frame.Values[a],
				ValueB:     frame.Values[b],
				GapSummary: summary,
			})
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group name [REQUIRED]")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: actual cutoff year)")
	cmd.Flags().StringVar(&a, "a", "", "first metric key (girls)")
	cmd.Flags().StringVar(&b, "b", "", "second metric key (boys)")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
