package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/cashbook"
	md "github.com/nao1215/markdown"
)

// Transactions renders records as a markdown table, in the given order.
func Transactions(records []cashbook.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Transactions")
	if len(records) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{strconv.Itoa(r.ID), r.Kind.String(), cell(r.Description), Value(r.Value)})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Type", "Description", "Value"},
		Rows:   rows,
	})
	doc.PlainText("")
	doc.PlainText(strconv.Itoa(len(records)) + " transaction(s), total " + Value(cashbook.Total(records)) + ".")

	return doc.String()
}

// Transaction renders a single record on one line.
func Transaction(r cashbook.Record) string {
	return "#" + strconv.Itoa(r.ID) + " " + r.Kind.String() + " " + Value(r.Value) + " " + cell(r.Description)
}
