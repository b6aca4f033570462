package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/stats"
)

type decadeRow struct {
	Label string   `json:"label"`
	Mean  *float64 `json:"mean"` // null when no value was observed
}

type decadeReport struct {
	Metric string      `json:"metric"`
	By     string      `json:"by"`
	Rows   []decadeRow `json:"rows"`
	Min    *float64    `json:"min,omitempty"`
	Max    *float64    `json:"max,omitempty"`
}

func (r decadeReport) TableHeaders() []string {
	return []string{r.By, "mean"}
}

func (r decadeReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Rows)+2)
	for _, row := range r.Rows {
		v := "n/a"
		if row.Mean != nil {
			v = formatFloat(*row.Mean)
		}
		rows = append(rows, []string{row.Label, v})
	}
	if r.Min != nil && r.Max != nil {
		rows = append(rows, []string{"(min)", formatFloat(*r.Min)}, []string{"(max)", formatFloat(*r.Max)})
	}
	return rows
}

func newDecadeCmd() *cobra.Command {
	var (
		group     string
		decade    string
		metric    string
		countries bool
	)

	cmd := &cobra.Command{
		Use:   "decade",
		Short: "Average a raw metric per decade",
		Long: "Average the observed values of --metric per group and decade. With --group, list\n" +
			"every decade of that group; with --decade, list every group in that decade\n" +
			"together with the range of their averages; with both, print one average.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			if group == "" && decade == "" {
				return errors.New("pass --group, --decade or both")
			}

			obs, err := app.loadRaw(cmd.Context())
			if err != nil {
				return err
			}
			column := app.metricColumn(metric)
			idx := stats.AggregateByGroupAndDecade(obs, stats.DecadeLabelFrom(app.Config.Decade.MinYear))

			report := decadeReport{Metric: column}
			mean := func(g, d string) decadeRow {
				label := d
				if decade != "" {
					label = g
				}
				row := decadeRow{Label: label}
				if v, ok := idx.Mean(g, d, column); ok {
					row.Mean = &v
				}
				return row
			}

			switch {
			case group != "" && decade != "":
				report.By = "decade"
				report.Rows = []decadeRow{mean(group, decade)}
				report.Rows[0].Label = decade
			case group != "":
				report.By = "decade"
				for _, d := range idx.Decades(app.Config.Decade.Hide...) {
					report.Rows = append(report.Rows, mean(group, d))
				}
			default:
				report.By = "group"
				keep := func(g string) bool { return !countries || !stats.IsAggregateName(g) }
				for _, g := range idx.Groups() {
					if !keep(g) {
						continue
					}
					report.Rows = append(report.Rows, mean(g, decade))
				}
				if lo, hi, ok := idx.Extent(decade, column, keep); ok {
					report.Min, report.Max = &lo, &hi
				}
			}
			return printResult(cmd, app, report)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group name")
	cmd.Flags().StringVarP(&decade, "decade", "d", "", `decade label, e.g. "1990-1999"`)
	cmd.Flags().StringVarP(&metric, "metric", "m", "", "metric key or source column [REQUIRED]")
	cmd.Flags().BoolVar(&countries, "countries", false, "skip regional and income aggregates")
	_ = cmd.MarkFlagRequired("metric")
	return cmd
}
