package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/theirongolddev/sipdash/internal/model"
	"github.com/theirongolddev/sipdash/internal/money"
	"github.com/theirongolddev/sipdash/internal/projection"
)

func testSeries() []model.PeriodSnapshot {
	return projection.Project(7, 2200, 6000)
}

func TestWriteSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(&buf, testSeries(), money.Default(), FormatCSV); err != nil {
		t.Fatalf("WriteSeries: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"#,Month,Invested,Returns,Total", "1,Jan,2200,6000,8200", "7,Jul,15400,42000,57400"} {
		if !strings.Contains(out, want) {
			t.Errorf("csv output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSeriesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(&buf, testSeries(), money.Default(), FormatJSON); err != nil {
		t.Fatalf("WriteSeries: %v", err)
	}

	var rows []struct {
		Index              int    `json:"index"`
		Label              string `json:"label"`
		CumulativeInvested int64  `json:"cumulative_invested"`
		CumulativeReturn   int64  `json:"cumulative_return"`
		Total              int64  `json:"total"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	last := rows[6]
	if last.Label != "Jul" || last.CumulativeInvested != 15400 || last.CumulativeReturn != 42000 || last.Total != 57400 {
		t.Fatalf("last row = %+v", last)
	}
}

func TestWriteSeriesTableAndMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(&buf, testSeries(), money.Default(), FormatTable); err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(buf.String(), "₹15,400") {
		t.Errorf("table output missing formatted amount:\n%s", buf.String())
	}

	buf.Reset()
	if err := WriteSeries(&buf, testSeries(), money.Default(), FormatMarkdown); err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if !strings.Contains(buf.String(), "| Jul |") {
		t.Errorf("markdown output missing row:\n%s", buf.String())
	}
}

func TestWriteSeriesUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(&buf, testSeries(), money.Default(), "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output for unknown format: %q", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	series := testSeries()
	sum := projection.Summarize(series)
	acct := model.Account{WithdrawableBalance: 57400, NextDueDate: "6th February 2025", NextDueAmount: 2200}

	var buf bytes.Buffer
	WriteSummary(&buf, model.Scheme{Periods: 7, MonthlyInvestment: 2200, MonthlyReturn: 6000}, sum, acct, money.Default())
	out := buf.String()
	for _, want := range []string{"Net Value", "₹57,400", "273%", "6th February 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
