package eventmodels

// CsvCloseDTO is one row of a closing-price series used to estimate
// historical volatility.
type CsvCloseDTO struct {
	Close float64 `csv:"close"`
}
