package cashbook

import "fmt"

// Outcome is the result of comparing income with expenses.
type Outcome int

const (
	Equal Outcome = iota
	IncomeGreater
	ExpenseGreater
)

func (o Outcome) String() string {
	switch o {
	case Equal:
		return "equal"
	case IncomeGreater:
		return "income greater"
	case ExpenseGreater:
		return "expense greater"
	default:
		return "unknown"
	}
}

// Comparison holds the total income, the total expense and how they compare.
type Comparison struct {
	Outcome Outcome
	Income  float64
	Expense float64
}

// Balance is the income minus the expense.
func (c Comparison) Balance() float64 { return c.Income - c.Expense }

func (c Comparison) String() string {
	switch c.Outcome {
	case IncomeGreater:
		return fmt.Sprintf("income %s > expense %s", formatValue(c.Income), formatValue(c.Expense))
	case ExpenseGreater:
		return fmt.Sprintf("income %s < expense %s", formatValue(c.Income), formatValue(c.Expense))
	default:
		return fmt.Sprintf("income = expense = %s", formatValue(c.Income))
	}
}

// Total returns the sum of the values, 0 when records is empty.
func Total(records []Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Value
	}
	return sum
}

// totalOf sums the values of the records of one kind.
func totalOf(records []Record, kind Kind) float64 {
	var sum float64
	for _, r := range records {
		if r.Kind == kind {
			sum += r.Value
		}
	}
	return sum
}

// Compare totals income and expense records and compares them.
//
// The comparison is exact: two totals are Equal only if they are the same
// float64.
func Compare(records []Record) Comparison {
	c := Comparison{
		Income:  totalOf(records, Income),
		Expense: totalOf(records, Expense),
	}
	switch {
	case c.Income > c.Expense:
		c.Outcome = IncomeGreater
	case c.Income < c.Expense:
		c.Outcome = ExpenseGreater
	default:
		c.Outcome = Equal
	}
	return c
}

// Totals returns the income total, the expense total and their comparison.
func Totals(records []Record) (income, expense float64, c Comparison) {
	c = Compare(records)
	return c.Income, c.Expense, c
}
