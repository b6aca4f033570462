package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/stats"
	"github.com/sartorproj/gendergap/timeseries"
)

type latestReport struct {
	Group  string             `json:"group"`
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

func (r latestReport) TableHeaders() []string {
	return []string{"metric", strconv.Itoa(r.Year)}
}

func (r latestReport) TableRows() [][]string {
	keys := make([]string, 0, len(r.Values))
	for k := range r.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, formatFloat(r.Values[k])})
	}
	return rows
}

func newLatestCmd() *cobra.Command {
	var (
		group   string
		metrics []string
	)

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the most recent observation of a group",
		Long:  "Print the most recent raw observation of --group that has a value for every --metric (default: the configured metrics).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}

			columns := make([]string, 0, len(metrics))
			for _, m := range metrics {
				columns = append(columns, app.metricColumn(m))
			}
			if len(columns) == 0 {
				for _, m := range app.Config.Series.Metrics {
					columns = append(columns, m.Column)
				}
			}

			obs, err := app.loadRaw(cmd.Context())
			if err != nil {
				return err
			}
			o, ok := stats.Latest(obs, group, func(o timeseries.Observation) bool {
				return o.HasAll(columns)
			})
			if !ok {
				return fmt.Errorf("%w: %q has no row with every requested metric", ErrNoData, group)
			}

			report := latestReport{Group: group, Year: o.Year, Values: make(map[string]float64, len(columns))}
			for _, c := range columns {
				report.Values[c], _ = o.Value(c)
			}
			return printResult(cmd, app, report)
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group name [REQUIRED]")
	cmd.Flags().StringArrayVarP(&metrics, "metric", "m", nil, "metric key or source column; repeatable")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
