package math

import (
	"math/big"

	"github.com/slhermit/driftpy/constants"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
	"github.com/slhermit/driftpy/utils"
)

// CalculatePrice quotes the AMM at its current reserves, scaled to mark-price
// precision.
func CalculatePrice(
	baseAssetReserve *big.Int,
	quoteAssetReserve *big.Int,
	pegMultiplier *big.Int,
) *big.Int {
	if baseAssetReserve.Sign() == 0 {
		return big.NewInt(0)
	}
	return utils.DivX(
		utils.MulX(quoteAssetReserve, pegMultiplier, constants.PRICE_TO_PEG_PRECISION_RATIO),
		baseAssetReserve,
	)
}

func CalculateMarkPrice(market *chlib.Market) *big.Int {
	return CalculatePrice(
		market.Amm.BaseAssetReserve.BigInt(),
		market.Amm.QuoteAssetReserve.BigInt(),
		market.Amm.PegMultiplier.BigInt(),
	)
}

// CalculateBaseAssetPriceWithMantissa is the pre-trade price a caller would
// display next to an open-position amount.
func CalculateBaseAssetPriceWithMantissa(market *chlib.Market) *big.Int {
	return CalculateMarkPrice(market)
}
