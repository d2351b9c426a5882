package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilbridge/sqlfront/pkg/dialect"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func newCheckCommand() *cobra.Command {
	var dialectName string
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Parse SQL text and report success or failure, for use in scripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dialectName = cfg.Dialect

			sql, err := readInput(args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			d, ok := dialect.Get(dialectName)
			if !ok {
				return fmt.Errorf("unknown dialect %q (run `sqlfront dialects`)", dialectName)
			}

			opts := parser.Options{
				RecursionLimit: cfg.RecursionLimit,
				Unescape:       cfg.Unescape,
				TrailingCommas: cfg.TrailingCommas,
			}
			stmts, err := parser.WithSQL(sql, d, opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %s\n", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d statement(s)\n", len(stmts))
			return nil
		},
	}
	cmd.Flags().StringVar(&dialectName, "dialect", "generic", "SQL dialect to parse under")
	return cmd
}
