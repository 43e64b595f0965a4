package order

import (
	"fmt"
	"strings"
)

var csvHeader = []string{
	"Order ID",
	"Customer Name",
	"Total",
	"Status",
	"Items (Name x Quantity @ Price)",
}

// ExportCSV renders the ledger for download: a plain header row, then
// one double-quoted row per order with items joined as
// "Name x Qty @ Price" separated by "; ". Totals carry currency
// symbols and commas, hence the quoting.
func ExportCSV(orders []Order) string {
	rows := make([]string, 0, len(orders)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, o := range orders {
		itemParts := make([]string, len(o.Items))
		for i, it := range o.Items {
			itemParts[i] = fmt.Sprintf("%s x %d @ %s", it.Name, it.Quantity, it.Price)
		}
		fields := []string{
			fmt.Sprintf("%d", o.ID),
			o.Name,
			o.Total,
			string(o.Status),
			strings.Join(itemParts, "; "),
		}
		for i, f := range fields {
			fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return strings.Join(rows, "\n")
}
