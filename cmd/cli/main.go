package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"goassoc/adapters/stats/engine"
	"goassoc/adapters/table"
	"goassoc/internal/config"
	"goassoc/internal/logging"
)

var logger = logging.FromEnv()

func main() {
	// optional .env, same as the server-side tooling convention
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "goassoc",
		Short: "Weighted dependence measures and asymptotic independence tests",
	}
	rootCmd.AddCommand(
		newMeasureCmd(cfg),
		newTestCmd(cfg),
		newMatrixCmd(cfg),
		newSweepCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newMeasureCmd(cfg *config.Config) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "measure [file] [col-x] [col-y]",
		Short: "Compute a dependence measure for two columns",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(args[0], cfg.Sheet)
			if err != nil {
				return err
			}
			x, y, err := selectColumns(tbl, args[1], args[2])
			if err != nil {
				return err
			}

			printSummary(args[1], x)
			printSummary(args[2], y)

			est, err := engine.Measure(x, y, method)
			if err != nil {
				return err
			}
			fmt.Printf("%s(%s, %s) = %.6f\n", method, args[1], args[2], est)
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", cfg.Method, "dependence measure (pearson, spearman, kendall, blomqvist, hoeffding)")
	return cmd
}

func newTestCmd(cfg *config.Config) *cobra.Command {
	var method, alternative string

	cmd := &cobra.Command{
		Use:   "test [file] [col-x] [col-y]",
		Short: "Run an asymptotic independence test for two columns",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(args[0], cfg.Sheet)
			if err != nil {
				return err
			}
			x, y, err := selectColumns(tbl, args[1], args[2])
			if err != nil {
				return err
			}

			opts := []engine.Option{engine.WithAlternative(alternative)}
			if !cfg.RemoveMissing {
				opts = append(opts, engine.KeepMissing())
			}
			test, err := engine.NewIndepTest(x, y, method, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("method:      %s\n", test.Method())
			fmt.Printf("alternative: %s\n", test.Alternative())
			fmt.Printf("n_eff:       %.4f\n", test.NEff())
			fmt.Printf("estimate:    %.6f\n", test.Estimate())
			fmt.Printf("statistic:   %.6f\n", test.Statistic())
			fmt.Printf("p_value:     %.6g\n", test.PValue())
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", cfg.Method, "dependence measure")
	cmd.Flags().StringVarP(&alternative, "alternative", "a", cfg.Alternative, "alternative hypothesis (two-sided, less, greater)")
	return cmd
}

func newMatrixCmd(cfg *config.Config) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "matrix [file]",
		Short: "Compute the pairwise dependence matrix over all columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(args[0], cfg.Sheet)
			if err != nil {
				return err
			}

			m, err := table.Pairwise(tbl.Data, method)
			if err != nil {
				return err
			}

			fmt.Printf("%-12s", "")
			for _, name := range tbl.Columns {
				fmt.Printf("%12s", name)
			}
			fmt.Println()
			for i, name := range tbl.Columns {
				fmt.Printf("%-12s", name)
				for j := range tbl.Columns {
					fmt.Printf("%12.4f", m.At(i, j))
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", cfg.Method, "dependence measure")
	return cmd
}

func newSweepCmd(cfg *config.Config) *cobra.Command {
	var method, alternative string

	cmd := &cobra.Command{
		Use:   "sweep [file]",
		Short: "Test all column pairs and emit results as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := loadTable(args[0], cfg.Sheet)
			if err != nil {
				return err
			}

			opts := []engine.Option{engine.WithAlternative(alternative)}
			if !cfg.RemoveMissing {
				opts = append(opts, engine.KeepMissing())
			}
			sweep, err := table.RunSweep(tbl, method, opts...)
			if err != nil {
				return err
			}
			logger.Info("sweep %s: %d comparisons (%d undefined) in %dms",
				sweep.Manifest.SweepID, sweep.Manifest.TotalComparisons,
				sweep.Manifest.Undefined, sweep.Manifest.RuntimeMs)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sweep)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", cfg.Method, "dependence measure")
	cmd.Flags().StringVarP(&alternative, "alternative", "a", cfg.Alternative, "alternative hypothesis (two-sided, less, greater)")
	return cmd
}

func loadTable(path, sheet string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		logger.Debug("loading xlsx table %s (sheet %q)", path, sheet)
		return table.LoadXLSX(path, sheet)
	}
	logger.Debug("loading csv table %s", path)
	return table.LoadCSV(path)
}

func selectColumns(tbl *table.Table, nameX, nameY string) (x, y []float64, err error) {
	i, err := findColumn(tbl, nameX)
	if err != nil {
		return nil, nil, err
	}
	j, err := findColumn(tbl, nameY)
	if err != nil {
		return nil, nil, err
	}
	return tbl.Column(i), tbl.Column(j), nil
}

func findColumn(tbl *table.Table, name string) (int, error) {
	for j, col := range tbl.Columns {
		if col == name {
			return j, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (have %s)", name, strings.Join(tbl.Columns, ", "))
}

func printSummary(name string, values []float64) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if v == v {
			clean = append(clean, v)
		}
	}
	mean, _ := stats.Mean(clean)
	sd, _ := stats.StandardDeviation(clean)
	median, _ := stats.Median(clean)
	fmt.Printf("%s: n=%d mean=%.4f sd=%.4f median=%.4f\n", name, len(clean), mean, sd, median)
}
