package renderer

import (
	"strings"

	"github.com/olekukonko/tablewriter"

	"option-terminal/src/eventmodels"
)

func legLabel(optionType eventmodels.OptionType) string {
	if optionType == eventmodels.OptionTypePut {
		return "Put"
	}

	return "Call"
}

// SingleResults renders d1, d2 and the price for one leg only.
func SingleResults(optionType eventmodels.OptionType, result eventmodels.PricingResult) string {
	var display strings.Builder

	display.WriteString(row("Moneyness factor (d1)", f4(result.D1)))
	display.WriteString(row("Risk-adjusted moneyness (d2)", f4(result.D2)))
	display.WriteString(row(legLabel(optionType)+" Price", money(result.Price)))

	return display.String()
}

// SingleGreeks renders one leg's Greeks.
func SingleGreeks(optionType eventmodels.OptionType, result eventmodels.PricingResult) string {
	var display strings.Builder

	table := tablewriter.NewWriter(&display)
	table.SetHeader([]string{"Greek", legLabel(optionType)})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	table.Append([]string{"Delta", f4(result.Delta)})
	table.Append([]string{"Gamma", f6(result.Gamma)})
	table.Append([]string{"Vega", f4(result.Vega)})
	table.Append([]string{"Theta", f4(result.Theta)})
	table.Append([]string{"Rho", f4(result.Rho)})

	table.Render()
	return display.String()
}

// SingleImpliedVolatility renders the recovered vol for one leg.
func SingleImpliedVolatility(marketPrice float64, optionType eventmodels.OptionType, result *eventmodels.IVResult) string {
	var display strings.Builder

	display.WriteString(row("Market Price", money(marketPrice)))
	display.WriteString(row("IV ("+legLabel(optionType)+")", ivValue(result)))

	return display.String()
}
