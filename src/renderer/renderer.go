package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"option-terminal/src/eventmodels"
)

const displayWidth = 72

var (
	titleColor = color.New(color.FgYellow, color.Bold)
	labelColor = color.New(color.FgWhite, color.Bold)
	valueColor = color.New(color.FgGreen, color.Bold)
	subColor   = color.New(color.FgCyan)
	errColor   = color.New(color.FgRed, color.Bold)
)

var printer = message.NewPrinter(language.English)

func f4(x float64) string {
	return printer.Sprintf("%.4f", x)
}

func f6(x float64) string {
	return printer.Sprintf("%.6f", x)
}

func money(x float64) string {
	return fmt.Sprintf("$%s", printer.Sprintf("%.2f", x))
}

func rule() string {
	return subColor.Sprint(strings.Repeat("─", displayWidth))
}

func center(s string) string {
	width := utf8.RuneCountInString(s)
	if width >= displayWidth {
		return s
	}

	pad := (displayWidth - width) / 2
	return strings.Repeat(" ", pad) + s
}

// Title renders the boxed banner shown at the top of a session.
func Title(text string) string {
	var display strings.Builder

	inner := displayWidth - 2
	display.WriteString(titleColor.Sprintf("┌%s┐", strings.Repeat("─", inner)))
	display.WriteString("\n")

	padded := text
	if width := utf8.RuneCountInString(text); width < inner {
		left := (inner - width) / 2
		right := inner - width - left
		padded = strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
	}
	display.WriteString(titleColor.Sprintf("│%s│", padded))
	display.WriteString("\n")

	display.WriteString(titleColor.Sprintf("└%s┘", strings.Repeat("─", inner)))
	display.WriteString("\n")

	return display.String()
}

// Section renders a ruled section header, e.g. " RESULTS ".
func Section(title string) string {
	var display strings.Builder

	display.WriteString(rule())
	display.WriteString("\n")
	display.WriteString(titleColor.Sprint(center(title)))
	display.WriteString("\n")
	display.WriteString(rule())
	display.WriteString("\n")

	return display.String()
}

func row(label, value string) string {
	return fmt.Sprintf("%s%s\n", labelColor.Sprintf("%-28s", label), valueColor.Sprintf("%12s", value))
}

// Results renders d1, d2 and both leg prices.
func Results(call, put eventmodels.PricingResult) string {
	var display strings.Builder

	display.WriteString(row("Moneyness factor (d1)", f4(call.D1)))
	display.WriteString(row("Risk-adjusted moneyness (d2)", f4(call.D2)))
	display.WriteString(row("Call Price", money(call.Price)))
	display.WriteString(row("Put Price", money(put.Price)))

	return display.String()
}

// Greeks renders the call/put Greeks side by side. Gamma and vega are shared
// between the legs, so only the call column is filled.
func Greeks(call, put eventmodels.PricingResult) string {
	var display strings.Builder

	table := tablewriter.NewWriter(&display)
	table.SetHeader([]string{"Greek", "Call", "Put"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	table.Append([]string{"Delta", f4(call.Delta), f4(put.Delta)})
	table.Append([]string{"Gamma", f6(call.Gamma), ""})
	table.Append([]string{"Vega", f4(call.Vega), ""})
	table.Append([]string{"Theta", f4(call.Theta), f4(put.Theta)})
	table.Append([]string{"Rho", f4(call.Rho), f4(put.Rho)})

	table.Render()
	return display.String()
}

// ImpliedVolatility renders the recovered vols in percent. A nil result means
// the leg could not be solved and renders as n/a.
func ImpliedVolatility(marketPrice float64, call, put *eventmodels.IVResult) string {
	var display strings.Builder

	display.WriteString(row("Market Price", money(marketPrice)))
	display.WriteString(row("IV (Call)", ivValue(call)))
	display.WriteString(row("IV (Put)", ivValue(put)))

	return display.String()
}

func ivValue(result *eventmodels.IVResult) string {
	if result == nil {
		return "n/a"
	}

	return printer.Sprintf("%.2f%%", result.Sigma*100)
}

// ErrorLine renders a caller-facing failure message.
func ErrorLine(format string, args ...interface{}) string {
	return errColor.Sprintf(format, args...) + "\n"
}

// Done renders the session footer.
func Done() string {
	return valueColor.Sprint("Done.") + "\n"
}
