package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cfgpkg "csvqc/internal/config"
	"csvqc/internal/dataset"
	"csvqc/internal/logging"
	"csvqc/internal/quality"
	"csvqc/internal/report"
	"csvqc/internal/utils"

	"github.com/spf13/cobra"
)

var (
	chkOutputPath string
	chkDelimiter  string
	chkJSON       bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Analyze a CSV file and write an HTML quality report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if cfg == nil {
			// Config load was skipped or failed; use defaults.
			c, err := cfgpkg.Load("")
			if err != nil {
				return err
			}
			cfg = c
		}
		log := logging.New(os.Stderr, cfg.LogLevel)

		opt := dataset.DefaultOptions()
		if len(cfg.MissingTokens) > 0 {
			opt.MissingTokens = cfg.MissingTokens
		}
		delim := chkDelimiter
		if delim == "" {
			delim = cfg.Delimiter
		}
		switch delim {
		case "", ",":
		case ";":
			opt.Delimiter = ';'
		case "\t", "tab":
			opt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s", delim)
		}

		log.Info("reading csv file", "path", path)
		ds, err := dataset.Load(path, opt)
		if err != nil {
			log.Error("load failed", "path", path, "err", err)
			return err
		}
		log.Info("dataset loaded", "rows", ds.Rows(), "columns", ds.Cols())

		res := quality.Check(ds, time.Now())
		log.Debug("analysis complete",
			"missing_issues", len(res.MissingValues),
			"duplicate_rows", res.Duplicates.Rows,
			"outlier_columns", len(res.Outliers))

		outPath := chkOutputPath
		if outPath == "" {
			outPath = report.DefaultOutputPath(path, cfg.ReportSuffix)
		}
		if err := report.WriteHTML(outPath, res); err != nil {
			log.Error("report write failed", "path", outPath, "err", err)
			return err
		}
		log.Info("quality report generated", "path", outPath)

		if chkJSON {
			b, err := utils.PrettyJSON(res)
			if err != nil {
				return err
			}
			jsonPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".json"
			if err := utils.SafeWriteFile(jsonPath, b); err != nil {
				return fmt.Errorf("write json report: %w", err)
			}
			log.Info("json report generated", "path", jsonPath)
		}

		report.ConsoleSummary(cmd.OutOrStdout(), res, outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&chkOutputPath, "output", "o", "", "path to output HTML report (default: <input stem>_quality_report.html)")
	checkCmd.Flags().StringVar(&chkDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	checkCmd.Flags().BoolVar(&chkJSON, "json", false, "also write the result as pretty JSON next to the HTML report")
}
