package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	balModel "gerejaku_backend/internals/features/finance/balances/model"
	contribModel "gerejaku_backend/internals/features/finance/contributions/model"
	donModel "gerejaku_backend/internals/features/finance/donations/model"
	expModel "gerejaku_backend/internals/features/finance/expenses/model"
	payModel "gerejaku_backend/internals/features/finance/payments/model"
)

func dateOf(year, month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

func paidPayment(year, month int, amount float64) payModel.MemberPaymentModel {
	return payModel.MemberPaymentModel{
		MemberPaymentID:       uuid.New(),
		MemberPaymentMemberID: uuid.New(),
		MemberPaymentYear:     year,
		MemberPaymentMonth:    month,
		MemberPaymentAmount:   amount,
		MemberPaymentPaid:     true,
	}
}

// The worked example: 2025 opens at 10,000, two paid dues of 500 (Jan, Feb),
// one contribution of 2,000 and one expense of 1,500 both dated March 1st.
func exampleSnapshot() Snapshot {
	unpaid := paidPayment(2025, 6, 500)
	unpaid.MemberPaymentPaid = false
	return Snapshot{
		Balances: []balModel.BalanceBroughtForwardModel{
			{BalanceID: uuid.New(), BalanceYear: 2025, BalanceAmount: 10000},
		},
		Payments: []payModel.MemberPaymentModel{
			paidPayment(2025, 0, 500),
			paidPayment(2025, 1, 500),
			unpaid, // explicit unpaid row contributes nothing
			paidPayment(2024, 0, 500), // other year contributes nothing
		},
		Contributions: []contribModel.ContributionModel{
			{ContributionID: uuid.New(), ContributionContributorName: "Sis. Grace", ContributionAmount: 2000, ContributionDate: dateOf(2025, 3, 1)},
		},
		Expenses: []expModel.ExpenseModel{
			{ExpenseID: uuid.New(), ExpenseAmount: 1500, ExpenseDescription: "Hall rental", ExpenseDate: dateOf(2025, 3, 1)},
		},
	}
}

func TestYearlyTotalsWorkedExample(t *testing.T) {
	got := YearlyTotalsFor(exampleSnapshot(), 2025)

	want := YearlyTotals{
		Year:                  2025,
		BalanceBroughtForward: 10000,
		MonthlyDues:           1000,
		Contributions:         2000,
		Donations:             0,
		TotalIncome:           13000,
		TotalExpenses:         1500,
		Balance:               11500,
	}
	if got != want {
		t.Fatalf("YearlyTotalsFor(2025) = %+v, want %+v", got, want)
	}
}

func TestYearlyTotalsIdentitiesHoldExactly(t *testing.T) {
	s := exampleSnapshot()
	s.Donations = []donModel.DonationModel{
		{DonationID: uuid.New(), DonationDonorName: "Bro. John", DonationAmount: 350.25, DonationDate: dateOf(2025, 11, 5)},
	}

	got := YearlyTotalsFor(s, 2025)
	if got.TotalIncome != got.BalanceBroughtForward+got.MonthlyDues+got.Contributions+got.Donations {
		t.Fatalf("total income identity broken: %+v", got)
	}
	if got.Balance != got.TotalIncome-got.TotalExpenses {
		t.Fatalf("balance identity broken: %+v", got)
	}
}

func TestYearlyTotalsEmptyYearIsAllZero(t *testing.T) {
	got := YearlyTotalsFor(exampleSnapshot(), 1999)
	if got != (YearlyTotals{Year: 1999}) {
		t.Fatalf("empty year must be all zeros, got %+v", got)
	}
}

func TestYearlyTotalsKeepsStoredOpeningBalanceForOtherwiseEmptyYear(t *testing.T) {
	s := Snapshot{Balances: []balModel.BalanceBroughtForwardModel{
		{BalanceID: uuid.New(), BalanceYear: 2023, BalanceAmount: 420},
	}}
	got := YearlyTotalsFor(s, 2023)
	if got.BalanceBroughtForward != 420 || got.TotalIncome != 420 || got.Balance != 420 {
		t.Fatalf("opening balance must flow through an empty year, got %+v", got)
	}
	if got.MonthlyDues != 0 || got.Contributions != 0 || got.Donations != 0 || got.TotalExpenses != 0 {
		t.Fatalf("everything else must stay zero, got %+v", got)
	}
}

func TestYearlyBalanceMayGoNegative(t *testing.T) {
	s := Snapshot{Expenses: []expModel.ExpenseModel{
		{ExpenseID: uuid.New(), ExpenseAmount: 900, ExpenseDescription: "Repairs", ExpenseDate: dateOf(2025, 2, 10)},
	}}
	got := YearlyTotalsFor(s, 2025)
	if got.Balance != -900 {
		t.Fatalf("deficit must not be clamped, got %v", got.Balance)
	}
}

func TestMonthlyReportMarch(t *testing.T) {
	// month=2 is March: neither paid payment (Jan, Feb) falls in it.
	got := MonthlyReportFor(exampleSnapshot(), 2025, 2)

	want := MonthlyTotals{
		Year:          2025,
		Month:         2,
		MonthlyDues:   0,
		Contributions: 2000,
		Donations:     0,
		Income:        2000,
		Expenses:      1500,
		Balance:       500,
	}
	if got != want {
		t.Fatalf("MonthlyReportFor(2025, 2) = %+v, want %+v", got, want)
	}
}

func TestMonthlyReportExcludesBroughtForward(t *testing.T) {
	// January holds one paid due; the 10,000 opening balance must not appear.
	got := MonthlyReportFor(exampleSnapshot(), 2025, 0)
	if got.Income != 500 || got.Balance != 500 {
		t.Fatalf("monthly income must exclude brought-forward balance, got %+v", got)
	}
}

func TestMonthlyReportEmptyMonthIsAllZero(t *testing.T) {
	got := MonthlyReportFor(exampleSnapshot(), 2025, 8)
	if got != (MonthlyTotals{Year: 2025, Month: 8}) {
		t.Fatalf("empty month must be all zeros, got %+v", got)
	}
}
