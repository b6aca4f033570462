package cli

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/timeseries"
)

type metricsReport struct {
	Pairs   []timeseries.MetricPair   `json:"pairs"`
	Singles []timeseries.MetricSingle `json:"singles"`
}

func (r metricsReport) TableHeaders() []string {
	return []string{"id", "label", "female", "male"}
}

func (r metricsReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Pairs)+len(r.Singles))
	for _, p := range r.Pairs {
		rows = append(rows, []string{p.ID, p.Label, p.Female, p.Male})
	}
	for _, s := range r.Singles {
		rows = append(rows, []string{s.ID, s.Label, s.Column, ""})
	}
	return rows
}

func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List the metric columns of the first input file",
		Long:  "List the metric columns of the first input file, pairing female and male columns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			if len(app.Config.Input.Files) == 0 {
				return ErrNoInput
			}

			opts := app.Config.RawCSVOptions()
			header, err := timeseries.ReadCSVHeader(app.Config.Input.Files[0], opts.Delimiter)
			if err != nil {
				return err
			}
			columns := make([]string, 0, len(header))
			for _, h := range header {
				if h != opts.GroupColumn && h != opts.YearColumn {
					columns = append(columns, h)
				}
			}

			pairs, singles := timeseries.PairMetricColumns(columns)
			return printResult(cmd, app, metricsReport{Pairs: pairs, Singles: singles})
		},
	}
}
