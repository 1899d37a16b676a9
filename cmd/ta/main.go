package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/quantarc/ta-engine/internal/backtest"
	"github.com/quantarc/ta-engine/internal/datasource"
	"github.com/quantarc/ta-engine/internal/engine"
	"github.com/quantarc/ta-engine/internal/logger"
	"github.com/quantarc/ta-engine/internal/types"
)

func loadEngine(cmd *cli.Command) (*engine.Engine, error) {
	config := engine.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := engine.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		config = loaded
	}

	log, err := logger.NewLogger()
	if err != nil {
		return nil, err
	}

	return engine.NewEngine(config, log)
}

// symbolFor falls back to the CSV file name when no symbol flag is given.
func symbolFor(cmd *cli.Command, dataPath string) string {
	if symbol := cmd.String("symbol"); symbol != "" {
		return symbol
	}

	base := filepath.Base(dataPath)

	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

func snapshotAction(ctx context.Context, cmd *cli.Command) error {
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	dataPath := cmd.String("data")

	series, err := datasource.LoadSeries(dataPath)
	if err != nil {
		return err
	}

	snap, err := eng.Snapshot(symbolFor(cmd, dataPath), types.Timeframe(cmd.String("timeframe")), series)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	fmt.Print(string(out))

	return nil
}

func backtestAction(ctx context.Context, cmd *cli.Command) error {
	eng, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	files := cmd.StringSlice("data")
	if len(files) == 0 {
		return fmt.Errorf("no data files given")
	}

	params := backtest.StrategyParams{Name: cmd.String("strategy")}
	if short := cmd.Int("short-period"); short > 0 {
		params.Periods = map[string]int{
			"short_period": int(short),
			"long_period":  int(cmd.Int("long-period")),
		}
	}

	var history types.AnalysisHistory

	if path := cmd.String("history"); path != "" {
		history, err = datasource.LoadHistory(path)
		if err != nil {
			return err
		}
	}

	results := make([]types.BacktestResult, 0, len(files))
	bar := progressbar.Default(int64(len(files)))

	for _, file := range files {
		series, err := datasource.LoadSeries(file)
		if err != nil {
			return err
		}

		result, err := eng.Backtest(symbolFor(cmd, file), series, params, history)
		if err != nil {
			return err
		}

		results = append(results, *result)

		if err := bar.Add(1); err != nil {
			return err
		}
	}

	if output := cmd.String("output"); output != "" {
		return types.WriteBacktestResults(output, results)
	}

	out, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest results: %w", err)
	}

	fmt.Print(string(out))

	return nil
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := engine.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "ta",
		Usage: "Technical analysis and strategy backtesting over CSV price data",
		Commands: []*cli.Command{
			{
				Name:  "snapshot",
				Usage: "Compute a technical snapshot from an OHLCV CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the OHLCV CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "symbol",
						Aliases: []string{"s"},
						Usage:   "Instrument symbol (defaults to the file name)",
					},
					&cli.StringFlag{
						Name:    "timeframe",
						Aliases: []string{"t"},
						Usage:   "Bar interval label, e.g. 1h, 1d, 1wk",
						Value:   string(types.Timeframe1Day),
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML config file",
					},
				},
				Action: snapshotAction,
			},
			{
				Name:  "backtest",
				Usage: "Replay a strategy against one or more OHLCV CSV files",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "OHLCV CSV file (repeatable)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "symbol",
						Aliases: []string{"s"},
						Usage:   "Instrument symbol (defaults to each file name)",
					},
					&cli.StringFlag{
						Name:  "strategy",
						Usage: fmt.Sprintf("Strategy name (%s, %s)", backtest.StrategyRecommendation, backtest.StrategySMACrossover),
						Value: backtest.StrategyRecommendation,
					},
					&cli.StringFlag{
						Name:  "history",
						Usage: "YAML recommendation history for the recommendation strategy",
					},
					&cli.IntFlag{
						Name:  "short-period",
						Usage: "Short SMA window for the crossover strategy",
						Value: backtest.DefaultCrossoverShortPeriod,
					},
					&cli.IntFlag{
						Name:  "long-period",
						Usage: "Long SMA window for the crossover strategy",
						Value: backtest.DefaultCrossoverLongPeriod,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write results to this YAML file instead of stdout",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML config file",
					},
				},
				Action: backtestAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema for the config file",
				Action: schemaAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
