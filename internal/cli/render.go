package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/theirongolddev/sipdash/internal/model"
	"github.com/theirongolddev/sipdash/internal/money"
)

var (
	colorBorder = lipgloss.Color("#3B2A6B")
	colorText   = lipgloss.Color("#F5F3FF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)
)

// Output formats accepted by WriteSeries.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// WriteSummary prints the dashboard aggregates as a two-column table.
func WriteSummary(w io.Writer, scheme model.Scheme, sum model.Summary, acct model.Account, cur money.Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Metric", "Value"})

	t.AppendRows([]table.Row{
		{"Months Enrolled", strconv.Itoa(sum.Periods)},
		{"Monthly Investment", cur.Format(scheme.MonthlyInvestment)},
		{"Current Monthly Returns", cur.Format(scheme.MonthlyReturn)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Total Invested", cur.Format(sum.CurrentInvested)},
		{"Total Returns", cur.Format(sum.CurrentReturn)},
		{"Return", FormatReturnPercent(sum)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Available for Withdrawal", cur.Format(acct.WithdrawableBalance)},
		{"Next Payment Due", acct.NextDueDate},
		{"Amount Due", cur.Format(acct.NextDueAmount)},
	})
	t.AppendFooter(table.Row{text.Bold.Sprint("Net Value"), text.Bold.Sprint(cur.Format(sum.NetValue))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

type seriesRow struct {
	model.PeriodSnapshot
	Total int64 `json:"total"`
}

// WriteSeries prints one row per period in the requested format.
func WriteSeries(w io.Writer, series []model.PeriodSnapshot, cur money.Currency, format string) error {
	if format == FormatJSON {
		rows := make([]seriesRow, len(series))
		for i, p := range series {
			rows[i] = seriesRow{PeriodSnapshot: p, Total: p.Total()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Month", "Invested", "Returns", "Total"})

	plain := format == FormatCSV
	amount := func(v int64) string {
		if plain {
			return strconv.FormatInt(v, 10)
		}
		return cur.Format(v)
	}
	for _, p := range series {
		t.AppendRow(table.Row{
			p.Index + 1,
			p.Label,
			amount(p.CumulativeInvested),
			amount(p.CumulativeReturn),
			amount(p.Total()),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	switch format {
	case FormatTable, "":
		t.SetStyle(table.StyleRounded)
		t.Style().Format.Header = text.FormatDefault
		t.Render()
	case FormatCSV:
		t.RenderCSV()
	case FormatMarkdown:
		t.RenderMarkdown()
	default:
		return fmt.Errorf("unknown format %q (want table, csv, markdown or json)", format)
	}
	return nil
}
