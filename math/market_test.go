package math

import (
	"encoding/binary"
	"math/big"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/slhermit/driftpy/constants"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
	"github.com/slhermit/driftpy/utils"
)

func TestCalculatePriceAtParity(t *testing.T) {
	// equal reserves price the base asset at exactly the peg
	price := CalculatePrice(
		constants.AMM_RESERVE_PRECISION,
		constants.AMM_RESERVE_PRECISION,
		constants.PEG_PRECISION,
	)
	require.Zero(t, price.Cmp(constants.MARK_PRICE_PRECISION))
}

func TestCalculatePriceScalesWithPeg(t *testing.T) {
	price := CalculatePrice(
		constants.AMM_RESERVE_PRECISION,
		constants.AMM_RESERVE_PRECISION,
		utils.BigUInt64(40_000), // peg 40.0
	)
	expected := new(big.Int).Mul(constants.MARK_PRICE_PRECISION, big.NewInt(40))
	require.Zero(t, price.Cmp(expected))
}

func TestCalculatePriceZeroBaseReserve(t *testing.T) {
	price := CalculatePrice(big.NewInt(0), constants.AMM_RESERVE_PRECISION, constants.PEG_PRECISION)
	require.Zero(t, price.Sign())
}

func TestCalculateMarkPrice(t *testing.T) {
	market := chlib.Market{
		Initialized: true,
	}
	market.Amm.BaseAssetReserve = bin.Uint128{Lo: 2, Endianness: binary.LittleEndian}
	market.Amm.QuoteAssetReserve = bin.Uint128{Lo: 2, Endianness: binary.LittleEndian}
	market.Amm.PegMultiplier = bin.Uint128{Lo: 1000, Endianness: binary.LittleEndian}

	price := CalculateMarkPrice(&market)
	require.Zero(t, price.Cmp(constants.MARK_PRICE_PRECISION))
	require.Zero(t, CalculateBaseAssetPriceWithMantissa(&market).Cmp(price))
}

func TestConvertToNumber(t *testing.T) {
	price := new(big.Int).Mul(constants.MARK_PRICE_PRECISION, big.NewInt(3))
	require.True(t, ConvertToNumber(price).Equal(decimal.NewFromInt(3)))

	quote := utils.BigUInt64(12_500_000)
	require.True(t, ConvertToNumber(quote, constants.QUOTE_PRECISION).Equal(decimal.NewFromFloat(12.5)))

	require.True(t, ConvertToNumber(nil).Equal(decimal.Zero))
}

func TestQuoteToLamports(t *testing.T) {
	require.Equal(t, uint64(12_500_000), QuoteToLamports(decimal.NewFromFloat(12.5)))
	require.Equal(t, uint64(0), QuoteToLamports(decimal.Zero))
}
