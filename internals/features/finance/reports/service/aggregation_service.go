package service

import (
	"time"

	"gorm.io/datatypes"

	balModel "gerejaku_backend/internals/features/finance/balances/model"
	contribModel "gerejaku_backend/internals/features/finance/contributions/model"
	donModel "gerejaku_backend/internals/features/finance/donations/model"
	expModel "gerejaku_backend/internals/features/finance/expenses/model"
	payModel "gerejaku_backend/internals/features/finance/payments/model"
)

// Snapshot is the in-memory finance state the aggregation runs over. The
// controller loads it from the DB; everything below is pure so the totals can
// be tested without a database.
type Snapshot struct {
	Payments      []payModel.MemberPaymentModel
	Contributions []contribModel.ContributionModel
	Donations     []donModel.DonationModel
	Expenses      []expModel.ExpenseModel
	Balances      []balModel.BalanceBroughtForwardModel
}

type YearlyTotals struct {
	Year                  int     `json:"year"`
	BalanceBroughtForward float64 `json:"balance_brought_forward"`
	MonthlyDues           float64 `json:"monthly_dues"`
	Contributions         float64 `json:"contributions"`
	Donations             float64 `json:"donations"`
	TotalIncome           float64 `json:"total_income"`
	TotalExpenses         float64 `json:"total_expenses"`
	Balance               float64 `json:"balance"` // may be negative: rendered as a deficit, never clamped
}

type MonthlyTotals struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"` // 0..11
	MonthlyDues   float64 `json:"monthly_dues"`
	Contributions float64 `json:"contributions"`
	Donations     float64 `json:"donations"`
	Income        float64 `json:"income"` // excludes balance brought forward: that is a yearly-only concept
	Expenses      float64 `json:"expenses"`
	Balance       float64 `json:"balance"`
}

// YearlyTotalsFor sums every record kind for one year. A year with no
// records yields all-zero totals, never an error.
func YearlyTotalsFor(s Snapshot, year int) YearlyTotals {
	t := YearlyTotals{Year: year}

	for _, b := range s.Balances {
		if b.BalanceYear == year {
			t.BalanceBroughtForward = b.BalanceAmount
			break
		}
	}
	for _, p := range s.Payments {
		if p.MemberPaymentYear == year && p.MemberPaymentPaid {
			t.MonthlyDues += p.MemberPaymentAmount
		}
	}
	for _, c := range s.Contributions {
		if y, _ := yearMonthOf(c.ContributionDate); y == year {
			t.Contributions += c.ContributionAmount
		}
	}
	for _, d := range s.Donations {
		if y, _ := yearMonthOf(d.DonationDate); y == year {
			t.Donations += d.DonationAmount
		}
	}
	for _, e := range s.Expenses {
		if y, _ := yearMonthOf(e.ExpenseDate); y == year {
			t.TotalExpenses += e.ExpenseAmount
		}
	}

	t.TotalIncome = t.BalanceBroughtForward + t.MonthlyDues + t.Contributions + t.Donations
	t.Balance = t.TotalIncome - t.TotalExpenses
	return t
}

// MonthlyReportFor restricts the same sums to one (year, month). Month is
// zero-indexed like the payment rows.
func MonthlyReportFor(s Snapshot, year, month int) MonthlyTotals {
	t := MonthlyTotals{Year: year, Month: month}

	for _, p := range s.Payments {
		if p.MemberPaymentYear == year && p.MemberPaymentMonth == month && p.MemberPaymentPaid {
			t.MonthlyDues += p.MemberPaymentAmount
		}
	}
	for _, c := range s.Contributions {
		if y, m := yearMonthOf(c.ContributionDate); y == year && m == month {
			t.Contributions += c.ContributionAmount
		}
	}
	for _, d := range s.Donations {
		if y, m := yearMonthOf(d.DonationDate); y == year && m == month {
			t.Donations += d.DonationAmount
		}
	}
	for _, e := range s.Expenses {
		if y, m := yearMonthOf(e.ExpenseDate); y == year && m == month {
			t.Expenses += e.ExpenseAmount
		}
	}

	t.Income = t.MonthlyDues + t.Contributions + t.Donations
	t.Balance = t.Income - t.Expenses
	return t
}

// yearMonthOf returns the calendar year and zero-indexed month of a date
// column (datatypes.Date is defined from time.Time).
func yearMonthOf(d datatypes.Date) (int, int) {
	t := time.Time(d)
	return t.Year(), int(t.Month()) - 1
}
