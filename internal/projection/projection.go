// Package projection expands an enrollment length into cumulative per-period snapshots.
package projection

import (
	"math"
	"time"

	"github.com/theirongolddev/sipdash/internal/model"
)

// MonthNames labels periods cyclically, starting at Jan for period 0.
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// daysPerPeriod approximates a month when back-dating the enrollment start.
const daysPerPeriod = 30

// Project returns n snapshots where period i holds (i+1) times each rate.
// The result is freshly allocated; n <= 0 yields an empty slice.
func Project(n int, investRate, returnRate int64) []model.PeriodSnapshot {
	if n < 0 {
		n = 0
	}
	series := make([]model.PeriodSnapshot, n)
	for i := range series {
		k := int64(i + 1)
		series[i] = model.PeriodSnapshot{
			Index:              i,
			Label:              MonthNames[i%len(MonthNames)],
			CumulativeInvested: k * investRate,
			CumulativeReturn:   k * returnRate,
		}
	}
	return series
}

// ProjectScheme projects the series for a configured scheme.
func ProjectScheme(s model.Scheme) []model.PeriodSnapshot {
	return Project(s.Periods, s.MonthlyInvestment, s.MonthlyReturn)
}

// Summarize derives the dashboard aggregates from the last snapshot.
// An empty series summarizes to all zeros.
func Summarize(series []model.PeriodSnapshot) model.Summary {
	sum := model.Summary{Periods: len(series)}
	if len(series) > 0 {
		last := series[len(series)-1]
		sum.CurrentInvested = last.CumulativeInvested
		sum.CurrentReturn = last.CumulativeReturn
	}
	sum.NetValue = sum.CurrentInvested + sum.CurrentReturn
	sum.ReturnPercent, sum.ReturnPercentOK = ReturnPercent(sum.CurrentInvested, sum.CurrentReturn)
	return sum
}

// ReturnPercent returns round(ret/invested*100). It reports false, with a
// zero percentage, when invested is zero.
func ReturnPercent(invested, ret int64) (int, bool) {
	if invested == 0 {
		return 0, false
	}
	pct := math.Round(float64(ret) / float64(invested) * 100)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return int(pct), true
}

// ActiveSince back-dates the enrollment start from now by 30 days per period.
func ActiveSince(now time.Time, periods int) time.Time {
	return now.AddDate(0, 0, -periods*daysPerPeriod)
}
