package renderer

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"option-terminal/src/eventmodels"
)

// Batch renders a batch sheet's outcomes as one table. Failed rows render
// their error in place of a value and do not abort the rest of the sheet.
func Batch(results []eventmodels.BatchResult) string {
	var display strings.Builder

	table := tablewriter.NewWriter(&display)
	table.SetHeader([]string{"Symbol", "Type", "Price", "IV", "Error"})
	table.SetColumnSeparator("")

	for _, result := range results {
		price := ""
		if result.Price != nil {
			price = money(*result.Price)
		}

		iv := ""
		if result.ImpliedVol != nil {
			iv = printer.Sprintf("%.2f%%", *result.ImpliedVol*100)
		}

		errMsg := ""
		if result.Err != nil {
			errMsg = result.Err.Error()
		}

		table.Append([]string{result.Symbol, string(result.OptionType), price, iv, errMsg})
	}

	table.Render()
	return display.String()
}
