package eventmodels

import "fmt"

// SolverConfig are the implied volatility solver constants. The defaults
// mirror the [1e-6, 5.0] bracket the tool has always used.
type SolverConfig struct {
	Tolerance     float64
	MaxIterations int
	SigmaMin      float64
	SigmaMax      float64
	VegaFloor     float64
}

func NewSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     1e-6,
		MaxIterations: 100,
		SigmaMin:      1e-6,
		SigmaMax:      5.0,
		VegaFloor:     1e-8,
	}
}

func (c SolverConfig) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("SolverConfig: Validate: tolerance must be positive, found %v", c.Tolerance)
	}

	if c.MaxIterations <= 0 {
		return fmt.Errorf("SolverConfig: Validate: max iterations must be positive, found %v", c.MaxIterations)
	}

	if c.SigmaMin <= 0 {
		return fmt.Errorf("SolverConfig: Validate: sigma min must be positive, found %v", c.SigmaMin)
	}

	if c.SigmaMax <= c.SigmaMin {
		return fmt.Errorf("SolverConfig: Validate: sigma max must be greater than sigma min, found [%v, %v]", c.SigmaMin, c.SigmaMax)
	}

	if c.VegaFloor <= 0 {
		return fmt.Errorf("SolverConfig: Validate: vega floor must be positive, found %v", c.VegaFloor)
	}

	return nil
}
