package eventmodels

// SolverConfigYAML is the optional on-disk form of SolverConfig. Unset fields
// fall back to the defaults from NewSolverConfig.
type SolverConfigYAML struct {
	Solver struct {
		Tolerance     *float64 `yaml:"tolerance"`
		MaxIterations *int     `yaml:"max_iterations"`
		SigmaMin      *float64 `yaml:"sigma_min"`
		SigmaMax      *float64 `yaml:"sigma_max"`
		VegaFloor     *float64 `yaml:"vega_floor"`
	} `yaml:"solver"`
}

func (y *SolverConfigYAML) ToSolverConfig() SolverConfig {
	cfg := NewSolverConfig()

	if y.Solver.Tolerance != nil {
		cfg.Tolerance = *y.Solver.Tolerance
	}

	if y.Solver.MaxIterations != nil {
		cfg.MaxIterations = *y.Solver.MaxIterations
	}

	if y.Solver.SigmaMin != nil {
		cfg.SigmaMin = *y.Solver.SigmaMin
	}

	if y.Solver.SigmaMax != nil {
		cfg.SigmaMax = *y.Solver.SigmaMax
	}

	if y.Solver.VegaFloor != nil {
		cfg.VegaFloor = *y.Solver.VegaFloor
	}

	return cfg
}
