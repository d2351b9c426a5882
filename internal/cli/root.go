// Package cli wires sqlfront's Cobra command tree: parse, dialects, and
// check, each a thin consumer of pkg/parser exercised through config loaded
// by internal/config. It mirrors the split the teacher keeps between
// cmd/leapsql (a bare main) and internal/cli (the actual command tree).
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nilbridge/sqlfront/internal/config"
)

var (
	cfgFile string
	logger  = logrus.StandardLogger()
)

// Execute builds and runs the root command, returning any error Cobra
// surfaces. main.go exits non-zero on a non-nil return, matching the
// teacher's cmd/leapsql/main.go.
func Execute() error {
	root := newRootCommand()
	return root.Execute()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sqlfront",
		Short: "A dialect-aware SQL parser",
		Long: `sqlfront parses SQL text into a typed abstract syntax tree across
PostgreSQL, MySQL, SQLite, SQL Server, Snowflake, BigQuery, ClickHouse,
Databricks, Hive, Redshift, DuckDB, and a permissive generic dialect.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to sqlfront.yaml (default: search cwd)")

	root.AddCommand(newParseCommand())
	root.AddCommand(newCheckCommand())
	root.AddCommand(newDialectsCommand())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir := ""
	if cfgFile != "" {
		dir = cfgFile
	}
	cfg, err := config.Load(dir, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return cfg, nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
