package main

import (
	"log"

	"github.com/spf13/cobra"

	"option-terminal/src/cmd/terminal/run"
	"option-terminal/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Interactive Black-Scholes option pricing terminal",
	Long: `Computes Black-Scholes European option prices, Greeks and implied volatility, with support for a continuous dividend yield. Three ways to run it:
1.) With no pricing flags, the program prompts for each input interactively, exactly like a pricing terminal.
2.) With --spot, --strike, --days, --rate and --vol (or --closes-csv), the prompts are skipped.
3.) With --csv, a whole sheet of contracts is priced in one run.
	`,
	Run: func(cmd *cobra.Command, args []string) {
		spot, err := cmd.Flags().GetFloat64("spot")
		if err != nil {
			log.Fatalf("error getting spot: %v", err)
		}

		strike, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		days, err := cmd.Flags().GetFloat64("days")
		if err != nil {
			log.Fatalf("error getting days: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		dividend, err := cmd.Flags().GetFloat64("dividend")
		if err != nil {
			log.Fatalf("error getting dividend: %v", err)
		}

		optionType, err := cmd.Flags().GetString("type")
		if err != nil {
			log.Fatalf("error getting type: %v", err)
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		closesPath, err := cmd.Flags().GetString("closes-csv")
		if err != nil {
			log.Fatalf("error getting closes-csv: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		runArgs := run.RunArgs{
			Spot:       spot,
			Strike:     strike,
			Days:       days,
			Rate:       rate,
			Dividend:   dividend,
			OptionType: optionType,
			CsvPath:    csvPath,
			ClosesPath: closesPath,
			ConfigPath: configPath,
		}

		if cmd.Flags().Changed("vol") {
			vol, err := cmd.Flags().GetFloat64("vol")
			if err != nil {
				log.Fatalf("error getting vol: %v", err)
			}

			runArgs.Vol = &vol
		}

		if cmd.Flags().Changed("market-price") {
			marketPrice, err := cmd.Flags().GetFloat64("market-price")
			if err != nil {
				log.Fatalf("error getting market-price: %v", err)
			}

			runArgs.MarketPrice = &marketPrice
		}

		// prompts are skipped once the required pricing flags are present
		runArgs.Interactive = csvPath == "" && !(cmd.Flags().Changed("spot") && cmd.Flags().Changed("strike") && cmd.Flags().Changed("days"))

		if err := run.Run(runArgs); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	utils.InitEnvironmentVariables()

	rootCmd.PersistentFlags().Float64P("spot", "S", 0, "Underlying price, e.g. 100.0.")
	rootCmd.PersistentFlags().Float64P("strike", "K", 0, "Strike price, e.g. 105.0.")
	rootCmd.PersistentFlags().Float64P("days", "d", 0, "Time to expiration in calendar days, e.g. 30.")
	rootCmd.PersistentFlags().Float64P("rate", "r", 0, "Risk-free rate as a decimal, e.g. 0.05.")
	rootCmd.PersistentFlags().Float64P("vol", "v", 0, "Volatility as a decimal, e.g. 0.2.")
	rootCmd.PersistentFlags().Float64P("dividend", "q", 0, "Continuous dividend yield as a decimal, e.g. 0.01.")
	rootCmd.PersistentFlags().Float64P("market-price", "m", 0, "Observed market price to recover implied volatility from.")
	rootCmd.PersistentFlags().StringP("type", "t", "", "Restrict output to one leg: 'call' or 'put'. Both legs are shown by default.")
	rootCmd.PersistentFlags().String("csv", "", "Path to a CSV sheet of contracts to price in batch.")
	rootCmd.PersistentFlags().String("closes-csv", "", "Path to a CSV of closing prices used to estimate volatility when --vol is not set.")
	rootCmd.PersistentFlags().String("config", "", "Path to an optional YAML file with implied volatility solver constants.")

	cobra.CheckErr(rootCmd.Execute())
}
