package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/sipdash/internal/model"
)

func TestProject_Length(t *testing.T) {
	for _, n := range []int{0, 1, 7, 12, 13, 36} {
		assert.Len(t, Project(n, 2200, 6000), n, "n=%d", n)
	}
}

func TestProject_NegativeIsEmpty(t *testing.T) {
	series := Project(-3, 2200, 6000)
	require.NotNil(t, series)
	assert.Empty(t, series)
}

func TestProject_LinearCumulative(t *testing.T) {
	const invest, ret = 2200, 6000
	series := Project(30, invest, ret)

	for i, p := range series {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, int64(i+1)*invest, p.CumulativeInvested, "invested at %d", i)
		assert.Equal(t, int64(i+1)*ret, p.CumulativeReturn, "return at %d", i)
		if i > 0 {
			assert.Greater(t, p.CumulativeInvested, series[i-1].CumulativeInvested)
			assert.Greater(t, p.CumulativeReturn, series[i-1].CumulativeReturn)
		}
	}
}

func TestProject_LabelsCycleEveryTwelve(t *testing.T) {
	series := Project(40, 1, 1)
	for i := 0; i+12 < len(series); i++ {
		assert.Equal(t, series[i].Label, series[i+12].Label, "label %d vs %d", i, i+12)
	}
	assert.Equal(t, "Jan", series[0].Label)
	assert.Equal(t, "Dec", series[11].Label)
	assert.Equal(t, "Jan", series[12].Label)
}

func TestProject_FreshSliceEachCall(t *testing.T) {
	a := Project(3, 10, 20)
	a[0].CumulativeInvested = 999

	b := Project(3, 10, 20)
	assert.Equal(t, int64(10), b[0].CumulativeInvested)
}

func TestProject_SinglePeriod(t *testing.T) {
	series := Project(1, 2200, 6000)
	require.Len(t, series, 1)
	assert.Equal(t, model.PeriodSnapshot{
		Index:              0,
		Label:              "Jan",
		CumulativeInvested: 2200,
		CumulativeReturn:   6000,
	}, series[0])
}

func TestSummarize_SevenMonthScenario(t *testing.T) {
	series := ProjectScheme(model.Scheme{Periods: 7, MonthlyInvestment: 2200, MonthlyReturn: 6000})
	require.Len(t, series, 7)

	last := series[6]
	assert.Equal(t, "Jul", last.Label)
	assert.Equal(t, int64(15400), last.CumulativeInvested)
	assert.Equal(t, int64(42000), last.CumulativeReturn)

	sum := Summarize(series)
	assert.Equal(t, 7, sum.Periods)
	assert.Equal(t, int64(15400), sum.CurrentInvested)
	assert.Equal(t, int64(42000), sum.CurrentReturn)
	assert.Equal(t, int64(57400), sum.NetValue)
	assert.True(t, sum.ReturnPercentOK)
	assert.Equal(t, 273, sum.ReturnPercent)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(Project(0, 2200, 6000))
	assert.Equal(t, model.Summary{}, sum)
	assert.Zero(t, sum.NetValue)
	assert.False(t, sum.ReturnPercentOK)
}

func TestReturnPercent(t *testing.T) {
	tests := []struct {
		name     string
		invested int64
		ret      int64
		want     int
		wantOK   bool
	}{
		{"zero invested", 0, 6000, 0, false},
		{"zero both", 0, 0, 0, false},
		{"even", 1000, 500, 50, true},
		{"rounds up", 15400, 42000, 273, true},
		{"rounds down", 3000, 1000, 33, true},
		{"no return", 2200, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReturnPercent(tt.invested, tt.ret)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestActiveSince(t *testing.T) {
	now := time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)
	got := ActiveSince(now, 7)
	assert.Equal(t, time.Date(2024, time.July, 5, 12, 0, 0, 0, time.UTC), got)
	assert.Equal(t, now, ActiveSince(now, 0))
}
