package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"prettysize/pkg/human"
)

var demoValues = []int64{
	303,
	30,
	0,
	341,
	34200,
	5910000,
	human.MaxSupportedSize,
	54123,
	1000,
	10054,
	5915000,
	567900,
	human.MaxSupportedSize - 3,
	99999,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type demoRow struct {
	input     int64
	formatted string
	si        string
}

func newDemoCommand() *cobra.Command {
	var (
		asTable bool
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample values, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := buildDemoRows(demoValues)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asTable {
				fmt.Fprintln(out, renderDemoTable(rows, compare))
				return nil
			}
			writeDemoLines(out, rows, compare)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asTable, "table", "t", false, "Render a table with the input next to the result")
	cmd.Flags().BoolVar(&compare, "compare", false, "Add the go-humanize SI rendering for comparison")
	return cmd
}

func buildDemoRows(values []int64) ([]demoRow, error) {
	rows := make([]demoRow, 0, len(values))
	for _, v := range values {
		formatted, err := human.FormatBytes(v)
		if err != nil {
			return nil, err
		}
		rows = append(rows, demoRow{input: v, formatted: formatted, si: humanize.Bytes(uint64(v))})
	}
	return rows, nil
}

func writeDemoLines(w io.Writer, rows []demoRow, compare bool) {
	for _, r := range rows {
		if compare {
			fmt.Fprintf(w, "%s\t%s\n", r.formatted, r.si)
			continue
		}
		fmt.Fprintln(w, r.formatted)
	}
}

func renderDemoTable(rows []demoRow, compare bool) string {
	headers := []string{"BYTES", "FORMATTED"}
	if compare {
		headers = append(headers, "SI")
	}
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{strconv.FormatInt(r.input, 10), r.formatted}
		if compare {
			row = append(row, r.si)
		}
		data = append(data, row)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(data...)
	return t.Render()
}
