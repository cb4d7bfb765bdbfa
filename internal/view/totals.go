package view

import (
	"github.com/shopspring/decimal"

	"photospro/internal/records"
)

// FinanceTotals summarizes income against expenses. Investment and tax
// transactions are not counted in either column.
type FinanceTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Totals sums amounts by transaction type. Amounts are added as decimals so
// that cents do not drift over many records.
func Totals(finances []records.Finance) FinanceTotals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, f := range finances {
		amount := decimal.NewFromFloat(f.Amount)
		switch f.Type {
		case records.Income:
			income = income.Add(amount)
		case records.Expense:
			expenses = expenses.Add(amount)
		}
	}
	return FinanceTotals{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

// Positive reports whether the net result is zero or better.
func (t FinanceTotals) Positive() bool {
	return !t.Net.IsNegative()
}

// TotalsSummary is the JSON form of FinanceTotals.
type TotalsSummary struct {
	Income   string  `json:"income"`
	Expenses string  `json:"expenses"`
	Net      string  `json:"net"`
	IncomeF  float64 `json:"incomeValue"`
	ExpenseF float64 `json:"expensesValue"`
	NetF     float64 `json:"netValue"`
	Positive bool    `json:"positive"`
}

// Summary formats the totals with two decimal places.
func (t FinanceTotals) Summary() TotalsSummary {
	return TotalsSummary{
		Income:   t.Income.StringFixed(2),
		Expenses: t.Expenses.StringFixed(2),
		Net:      t.Net.StringFixed(2),
		IncomeF:  t.Income.InexactFloat64(),
		ExpenseF: t.Expenses.InexactFloat64(),
		NetF:     t.Net.InexactFloat64(),
		Positive: t.Positive(),
	}
}
