package cli

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nilbridge/sqlfront/pkg/dialect"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	yesStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newDialectsCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered SQL dialects and their capability flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render("DIALECT"))
			for _, name := range dialect.List() {
				d, _ := dialect.Get(name)
				fmt.Fprintln(out, "  "+name)
				if verbose {
					printCapabilities(out, d.Capabilities())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show each dialect's capability flags")
	return cmd
}

// printCapabilities renders every boolean field of a Capabilities value as a
// two-column go-pretty table, styled with lipgloss, without hardcoding the
// flag list here so new capability flags show up automatically.
func printCapabilities(out io.Writer, caps dialect.Capabilities) {
	v := reflect.ValueOf(caps)
	t := v.Type()

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Capability", "Supported"})

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Bool {
			continue
		}
		val := v.Field(i).Bool()
		label := humanize(field.Name)
		if val {
			tw.AppendRow(table.Row{label, yesStyle.Render("yes")})
		} else {
			tw.AppendRow(table.Row{label, noStyle.Render("no")})
		}
	}
	tw.Render()
}

// humanize turns a Go exported field name like SupportsTrailingCommas into
// "supports trailing commas" for display.
func humanize(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
