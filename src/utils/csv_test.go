package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadContractRows(t *testing.T) {
	data := `symbol,type,spot,strike,days,rate,dividend,vol,market_price
SPX-C,call,100,100,365,0.05,0,0.2,
SPX-P,put,100,100,365,0.05,0,,10.45
`

	path := filepath.Join(t.TempDir(), "contracts.csv")
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	rows, err := LoadContractRows(path)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "SPX-C", rows[0].Symbol)
	assert.Equal(t, "0.2", rows[0].Vol)
	assert.Equal(t, "", rows[0].MarketPrice)

	assert.Equal(t, "put", rows[1].OptionType)
	assert.Equal(t, "10.45", rows[1].MarketPrice)
}

func TestLoadContractRowsMissingFile(t *testing.T) {
	_, err := LoadContractRows(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCloses(t *testing.T) {
	data := `close
100
101.5
99.75
`

	path := filepath.Join(t.TempDir(), "closes.csv")
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	closes, err := LoadCloses(path)
	assert.NoError(t, err)
	assert.Equal(t, []float64{100, 101.5, 99.75}, closes)
}
