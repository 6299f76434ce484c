package run

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"option-terminal/src/eventmodels"
	"option-terminal/src/optionpricing"
	"option-terminal/src/renderer"
	"option-terminal/src/utils"
)

type RunArgs struct {
	Interactive bool

	Spot        float64
	Strike      float64
	Days        float64
	Rate        float64
	Vol         *float64
	Dividend    float64
	MarketPrice *float64

	// OptionType restricts output to one leg; empty renders both.
	OptionType string

	CsvPath    string
	ClosesPath string
	ConfigPath string
}

func Run(args RunArgs) error {
	cfg, err := utils.LoadSolverConfig(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	if args.CsvPath != "" {
		return runBatch(args.CsvPath, cfg)
	}

	fmt.Print(renderer.Title("BLACK–SCHOLES OPTION PRICING MODEL"))

	if args.ClosesPath != "" && args.Vol == nil {
		vol, err := estimateVol(args.ClosesPath)
		if err != nil {
			return fmt.Errorf("Run: %w", err)
		}

		args.Vol = &vol
	}

	if args.Interactive {
		if err := promptInputs(&args); err != nil {
			fmt.Print(renderer.ErrorLine("Input error: %v", err))
			return fmt.Errorf("Run: %w", err)
		}
	}

	if args.Vol == nil {
		return fmt.Errorf("Run: volatility is required: pass --vol, --closes-csv, or run interactively")
	}

	contract := eventmodels.OptionContract{
		Underlying:    args.Spot,
		Strike:        args.Strike,
		TimeToExpiry:  args.Days / eventmodels.DaysPerYear,
		RiskFreeRate:  args.Rate,
		DividendYield: args.Dividend,
		OptionType:    eventmodels.OptionTypeCall,
	}

	switch args.OptionType {
	case "":
		return runBothLegs(contract, *args.Vol, args.MarketPrice, cfg)
	case string(eventmodels.OptionTypeCall), string(eventmodels.OptionTypePut):
		return runSingleLeg(contract.WithOptionType(eventmodels.OptionType(args.OptionType)), *args.Vol, args.MarketPrice, cfg)
	default:
		return fmt.Errorf("Run: invalid option type %q: must be %q or %q", args.OptionType, eventmodels.OptionTypeCall, eventmodels.OptionTypePut)
	}
}

func runBothLegs(contract eventmodels.OptionContract, vol float64, marketPrice *float64, cfg eventmodels.SolverConfig) error {
	callResult, err := optionpricing.PriceAndGreeks(contract.WithOptionType(eventmodels.OptionTypeCall), vol)
	if err != nil {
		return fmt.Errorf("runBothLegs: %w", err)
	}

	putResult, err := optionpricing.PriceAndGreeks(contract.WithOptionType(eventmodels.OptionTypePut), vol)
	if err != nil {
		return fmt.Errorf("runBothLegs: %w", err)
	}

	fmt.Println()
	fmt.Print(renderer.Section(" RESULTS "))
	fmt.Print(renderer.Results(callResult, putResult))

	fmt.Println()
	fmt.Print(renderer.Section(" GREEKS "))
	fmt.Print(renderer.Greeks(callResult, putResult))

	if marketPrice != nil {
		callIV := solveLeg(contract.WithOptionType(eventmodels.OptionTypeCall), *marketPrice, cfg)
		putIV := solveLeg(contract.WithOptionType(eventmodels.OptionTypePut), *marketPrice, cfg)

		fmt.Println()
		fmt.Print(renderer.Section(" IMPLIED VOLATILITY "))
		fmt.Print(renderer.ImpliedVolatility(*marketPrice, callIV, putIV))
	}

	fmt.Println()
	fmt.Print(renderer.Done())
	return nil
}

func runSingleLeg(contract eventmodels.OptionContract, vol float64, marketPrice *float64, cfg eventmodels.SolverConfig) error {
	result, err := optionpricing.PriceAndGreeks(contract, vol)
	if err != nil {
		return fmt.Errorf("runSingleLeg: %w", err)
	}

	fmt.Println()
	fmt.Print(renderer.Section(" RESULTS "))
	fmt.Print(renderer.SingleResults(contract.OptionType, result))

	fmt.Println()
	fmt.Print(renderer.Section(" GREEKS "))
	fmt.Print(renderer.SingleGreeks(contract.OptionType, result))

	if marketPrice != nil {
		iv := solveLeg(contract, *marketPrice, cfg)

		fmt.Println()
		fmt.Print(renderer.Section(" IMPLIED VOLATILITY "))
		fmt.Print(renderer.SingleImpliedVolatility(*marketPrice, contract.OptionType, iv))
	}

	fmt.Println()
	fmt.Print(renderer.Done())
	return nil
}

// solveLeg returns nil when the leg has no recoverable vol; the failure is
// logged and the renderer shows n/a, so one bad leg never aborts a session.
func solveLeg(contract eventmodels.OptionContract, marketPrice float64, cfg eventmodels.SolverConfig) *eventmodels.IVResult {
	result, err := optionpricing.ImpliedVolatility(contract, marketPrice, cfg)
	if err != nil {
		if errors.Is(err, eventmodels.OutOfBoundsErr) {
			log.Debugf("no implied vol for %s leg: %v", contract.OptionType, err)
		} else {
			log.Warnf("implied vol solver failed for %s leg: %v", contract.OptionType, err)
		}

		return nil
	}

	return &result
}

func estimateVol(closesPath string) (float64, error) {
	closes, err := utils.LoadCloses(closesPath)
	if err != nil {
		return 0, err
	}

	vol, err := optionpricing.AnnualizedVolatility(closes)
	if err != nil {
		return 0, err
	}

	log.Infof("estimated annualized volatility %.4f from %d closes", vol, len(closes))
	return vol, nil
}

func promptInputs(args *RunArgs) error {
	reader := bufio.NewReader(os.Stdin)
	zero := 0.0

	var err error
	if args.Spot, err = utils.PromptFloat(reader, os.Stdout, "Underlying price (S): ", nil); err != nil {
		return err
	}

	if args.Strike, err = utils.PromptFloat(reader, os.Stdout, "Strike price (K): ", nil); err != nil {
		return err
	}

	if args.Days, err = utils.PromptFloat(reader, os.Stdout, "Time to expiration (days): ", nil); err != nil {
		return err
	}

	if args.Rate, err = utils.PromptFloat(reader, os.Stdout, "Risk-free rate r (decimal): ", nil); err != nil {
		return err
	}

	if args.Vol == nil {
		vol, err := utils.PromptFloat(reader, os.Stdout, "Volatility σ (decimal): ", nil)
		if err != nil {
			return err
		}

		args.Vol = &vol
	}

	if args.Dividend, err = utils.PromptFloat(reader, os.Stdout, "Dividend yield q (decimal) [default 0]: ", &zero); err != nil {
		return err
	}

	if args.MarketPrice, err = utils.PromptOptionalFloat(reader, os.Stdout, "Market price for IV (blank to skip): "); err != nil {
		return err
	}

	return nil
}
