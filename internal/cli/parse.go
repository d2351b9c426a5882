package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/dialect"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func newParseCommand() *cobra.Command {
	var dialectName, output string
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse SQL text and print its statement tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			dialectName, output = cfg.Dialect, cfg.Output

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
				fields := map[string]interface{}{"dialect": dialectName}
				if pe, ok := err.(*parser.Error); ok {
					fields["line"], fields["column"] = pe.Line, pe.Column
				}
				logger.WithFields(fields).Error(err.Error())
				return err
			}

			return renderStatements(cmd, stmts, output)
		},
	}
	cmd.Flags().StringVar(&dialectName, "dialect", "generic", "SQL dialect to parse under")
	cmd.Flags().StringVar(&output, "output", "text", "output format: text, tree, or json")
	return cmd
}

func renderStatements(cmd *cobra.Command, stmts []ast.Statement, output string) error {
	switch output {
	case "tree":
		for _, s := range stmts {
			fmt.Fprintln(cmd.OutOrStdout(), repr.String(s, repr.Indent("  ")))
		}
	case "json":
		kinds := make([]string, len(stmts))
		for i, s := range stmts {
			kinds[i] = fmt.Sprintf("%T", s)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(kinds)
	default:
		for i, s := range stmts {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %T\n", i+1, s)
		}
	}
	return nil
}
