package model

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const EthDecimals = 18

// Web3BigInt holds an on-chain amount as the raw smallest-unit integer
// string together with the token's decimal count. Keeping the raw string
// avoids float round-off on amounts that exceed float64 precision.
type Web3BigInt struct {
	Value   string `json:"value"`
	Decimal int    `json:"decimal"`
}

// NewWeiAmount wraps a wei amount as reported by Etherscan.
func NewWeiAmount(raw string) (*Web3BigInt, error) {
	if _, ok := new(big.Int).SetString(raw, 10); !ok {
		return nil, errors.Errorf("invalid wei amount: %q", raw)
	}

	return &Web3BigInt{
		Value:   raw,
		Decimal: EthDecimals,
	}, nil
}

func (w *Web3BigInt) ToFloat() float64 {
	num := new(big.Int)
	num.SetString(w.Value, 10)

	floatNum := new(big.Float).SetInt(num)

	divisor := new(big.Float).SetFloat64(math.Pow(10, float64(w.Decimal)))

	floatNum.Quo(floatNum, divisor)

	result, _ := floatNum.Float64()
	return result
}

// ToDecimalString scales the raw integer down by 10^Decimal without going
// through floating point, so the result round-trips exactly into a
// NUMERIC column. Trailing fractional zeros are trimmed.
func (w *Web3BigInt) ToDecimalString() string {
	num, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return "0"
	}

	sign := ""
	if num.Sign() < 0 {
		sign = "-"
		num = new(big.Int).Abs(num)
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(w.Decimal)), nil)
	whole, frac := new(big.Int).QuoRem(num, divisor, new(big.Int))

	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := frac.String()
	for len(fracStr) < w.Decimal {
		fracStr = "0" + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")

	return sign + whole.String() + "." + fracStr
}
