package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gendergap/export"
	"github.com/sartorproj/gendergap/internal/logging"
)

func newBuildCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every group's series and export it",
		Long:  "Build the dense annual series of every group and write it as JSON, CSV or an Excel workbook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := GetApp(cmd)
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			set, err := app.buildSet(cmd.Context())
			if err != nil {
				return err
			}

			keys := app.Config.MetricKeys()
			if out == "" {
				return export.Write(cmd.OutOrStdout(), set, keys, f)
			}
			err = writeFile(out, func(w io.Writer) error {
				return export.Write(w, set, keys, f)
			})
			if err != nil {
				return err
			}
			app.Logger.Info("series written",
				logging.String("path", out),
				logging.String("format", string(f)),
				logging.Int("groups", len(set)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "export format (json, csv, xlsx)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}

// writeFile creates path and hands it to write. A failed close is reported
// when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return write(f)
}
