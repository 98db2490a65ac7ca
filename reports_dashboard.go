package wealth

// Dashboard provides the at-a-glance overview of the finances on a given
// date: the KPI row plus the three chart datasets and the latest
// transactions.
type Dashboard struct {
	Date           Date
	NetWorth       Money
	MonthSpend     Money
	SavingsRate    int64
	HasIncome      bool // false when the savings rate is undefined this month
	NetWorthSeries Series
	Cashflow       Cashflow
	Categories     Series // trailing 90-day expense breakdown
	Latest         []Transaction
}

// latestCount is how many recent transactions the dashboard shows.
const latestCount = 10

// NewDashboard computes the dashboard for a given date from the current
// state. It is a pure read.
func NewDashboard(s *State, on Date) *Dashboard {
	d := &Dashboard{
		Date:           on,
		NetWorth:       s.NetWorth(),
		MonthSpend:     s.MonthSpend(on),
		NetWorthSeries: s.NetWorthSeries(),
		Cashflow:       s.CashflowByMonth(),
		Categories:     s.Categories(90, on),
	}
	d.SavingsRate, d.HasIncome = s.SavingsRate(on)

	n := len(s.Transactions)
	for i := n - 1; i >= 0 && i >= n-latestCount; i-- {
		d.Latest = append(d.Latest, s.Transactions[i])
	}
	return d
}
