package eventmodels

// PricingResult holds the Black-Scholes price and analytic Greeks for one
// option leg. It is derived deterministically from (OptionContract, sigma).
type PricingResult struct {
	Price float64
	D1    float64
	D2    float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}
