package renderer

import (
	"bytes"

	"github.com/etnz/cashbook"
	md "github.com/nao1215/markdown"
)

// Summary renders the income and expense totals, their balance and the
// outcome of their comparison.
func Summary(income, expense float64, outcome cashbook.Outcome) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{"Kind", "Total"},
		Rows: [][]string{
			{"Income", Value(income)},
			{"Expense", Value(expense)},
			{"Balance", Value(income - expense)},
		},
	})
	doc.PlainText("")

	switch outcome {
	case cashbook.IncomeGreater:
		doc.PlainText("Income is greater than expenses.")
	case cashbook.ExpenseGreater:
		doc.PlainText("Expenses are greater than income.")
	default:
		doc.PlainText("Income and expenses are equal.")
	}
	return doc.String()
}
