package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/series"
)

type frameReport struct {
	Group  string         `json:"group"`
	Keys   []string       `json:"-"`
	Frames []series.Frame `json:"frames"`
}

func (r frameReport) TableHeaders() []string {
	h := append([]string{"year"}, r.Keys...)
	return append(h, "projected")
}

func (r frameReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Frames))
	for _, f := range r.Frames {
		row := []string{strconv.Itoa(f.Year)}
		for _, k := range r.Keys {
			row = append(row, formatFloat(f.Values[k]))
		}
		rows = append(rows, append(row, strconv.FormatBool(f.Projected)))
	}
	return rows
}

func newFrameCmd() *cobra.Command {
	var (
		group string
		year  int
		to    int
	)

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print the frame of a group for a year or a range of years",
		Long:  "Print one group's frame for --year, or every frame from --year to --to. Years outside the configured range are clamped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = app.Config.Series.ActualCutoffYear
			}

			l, err := app.lookup(cmd.Context(), group)
			if err != nil {
				return err
			}

			report := frameReport{Group: group, Keys: app.Config.MetricKeys()}
			if cmd.Flags().Changed("to") {
				report.Frames = l.Range(year, to)
			} else {
				f, _ := series.LookupFrame(l, year)
				report.Frames = []series.Frame{f}
			}
			return printResult(cmd, app, report)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group name [REQUIRED]")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: actual cutoff year)")
	cmd.Flags().IntVar(&to, "to", 0, "last year of a range starting at --year")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
