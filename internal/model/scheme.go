// Package model holds the value types shared by the projector, the CLI and the TUI.
package model

// Scheme describes a fixed monthly investment plan.
// Amounts are whole currency units.
type Scheme struct {
	Periods           int
	MonthlyInvestment int64
	MonthlyReturn     int64
}

// PeriodSnapshot is the cumulative position at the end of one period.
type PeriodSnapshot struct {
	Index              int    `json:"index"`
	Label              string `json:"label"`
	CumulativeInvested int64  `json:"cumulative_invested"`
	CumulativeReturn   int64  `json:"cumulative_return"`
}

// Total is invested plus returned as of this period.
func (p PeriodSnapshot) Total() int64 {
	return p.CumulativeInvested + p.CumulativeReturn
}

// Summary holds the aggregates derived from the last snapshot of a series.
type Summary struct {
	Periods         int   `json:"periods"`
	CurrentInvested int64 `json:"current_invested"`
	CurrentReturn   int64 `json:"current_return"`
	NetValue        int64 `json:"net_value"`
	ReturnPercent   int   `json:"return_percent"`
	ReturnPercentOK bool  `json:"return_percent_ok"` // false when nothing has been invested
}

// Account holds the static balances shown on the dashboard.
type Account struct {
	WithdrawableBalance  int64
	NextDueDate          string
	NextDueAmount        int64
	WithdrawalProcessing string
}

// Profile is the investor identity shown in the profile panel.
type Profile struct {
	Name        string
	Email       string
	MemberSince string
	Plan        string
	Referrals   int
}
