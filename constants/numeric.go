package constants

import "math/big"

// On-chain fixed-point precisions. These mirror the program's constants and
// must not drift from them.
var (
	MARK_PRICE_PRECISION          = new(big.Int).Exp(big.NewInt(10), big.NewInt(10), nil)
	QUOTE_PRECISION               = new(big.Int).Exp(big.NewInt(10), big.NewInt(6), nil)
	AMM_RESERVE_PRECISION         = new(big.Int).Exp(big.NewInt(10), big.NewInt(13), nil)
	PEG_PRECISION                 = new(big.Int).Exp(big.NewInt(10), big.NewInt(3), nil)
	FUNDING_PAYMENT_PRECISION     = new(big.Int).Exp(big.NewInt(10), big.NewInt(4), nil)
	MARGIN_PRECISION              = new(big.Int).Exp(big.NewInt(10), big.NewInt(4), nil)
	AMM_TO_QUOTE_PRECISION_RATIO  = new(big.Int).Div(AMM_RESERVE_PRECISION, QUOTE_PRECISION)
	PRICE_TO_PEG_PRECISION_RATIO  = new(big.Int).Div(MARK_PRICE_PRECISION, PEG_PRECISION)
	QUOTE_ASSET_BANK_INDEX        = uint64(0)
	MAX_LEVERAGE                  = big.NewInt(5)
	PARTIAL_LIQUIDATION_RATIO     = big.NewInt(625)
	FULL_LIQUIDATION_RATIO        = big.NewInt(500)
)
