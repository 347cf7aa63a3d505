package math

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/slhermit/driftpy/constants"
)

// ConvertToNumber scales an on-chain fixed-point value to a human number.
// Defaults to mark-price precision.
func ConvertToNumber(bigNumber *big.Int, precision ...*big.Int) decimal.Decimal {
	if bigNumber == nil {
		return decimal.Zero
	}
	precisionx := constants.MARK_PRICE_PRECISION
	if len(precision) > 0 {
		precisionx = precision[0]
	}
	return decimal.NewFromBigInt(bigNumber, 0).Div(decimal.NewFromBigInt(precisionx, 0))
}

// QuoteToLamports converts a human quote amount (e.g. 12.5 USDC) to the
// program's integer quote precision.
func QuoteToLamports(amount decimal.Decimal) uint64 {
	return uint64(amount.Mul(decimal.NewFromBigInt(constants.QUOTE_PRECISION, 0)).IntPart())
}
