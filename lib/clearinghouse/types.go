package clearinghouse

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type PositionDirection bin.BorshEnum

const (
	PositionDirection_Long PositionDirection = iota
	PositionDirection_Short
)

type DepositDirection bin.BorshEnum

const (
	DepositDirection_Deposit DepositDirection = iota
	DepositDirection_Withdraw
)

type OracleSource bin.BorshEnum

const (
	OracleSource_Pyth OracleSource = iota
	OracleSource_Switchboard
)

// InitializeUserOptionalAccounts mirrors the program's optional-accounts
// argument. WhitelistToken toggles the whitelist gate; when true the caller's
// whitelist token account rides along as a remaining account.
type InitializeUserOptionalAccounts struct {
	WhitelistToken bool
}

// ManagePositionOptionalAccounts flags the optional discount-token and
// referrer remaining accounts on the position instructions.
type ManagePositionOptionalAccounts struct {
	DiscountToken bool
	Referrer      bool
}

type AMM struct {
	Oracle                     solana.PublicKey
	OracleSource               OracleSource
	BaseAssetReserve           bin.Uint128
	QuoteAssetReserve          bin.Uint128
	CumulativeRepegRebateLong  bin.Uint128
	CumulativeRepegRebateShort bin.Uint128
	CumulativeFundingRateLong  bin.Int128
	CumulativeFundingRateShort bin.Int128
	LastFundingRate            bin.Int128
	LastFundingRateTs          int64
	FundingPeriod              int64
	LastOraclePriceTwap        bin.Int128
	LastMarkPriceTwap          bin.Uint128
	LastMarkPriceTwapTs        int64
	SqrtK                      bin.Uint128
	PegMultiplier              bin.Uint128
	TotalFee                   bin.Uint128
	TotalFeeMinusDistributions bin.Uint128
	TotalFeeWithdrawn          bin.Uint128
	MinimumQuoteAssetTradeSize bin.Uint128
	LastOraclePriceTwapTs      int64
	LastOraclePrice            bin.Int128
	MinimumBaseAssetTradeSize  bin.Uint128
	Padding                    [1]bin.Uint128
}

type Market struct {
	Initialized          bool
	BaseAssetAmountLong  bin.Int128
	BaseAssetAmountShort bin.Int128
	BaseAssetAmount      bin.Int128
	OpenInterest         bin.Uint128
	Amm                  AMM
	Padding              [4]uint64
}

type MarketPosition struct {
	MarketIndex               uint64
	BaseAssetAmount           bin.Int128
	QuoteAssetAmount          bin.Uint128
	LastCumulativeFundingRate bin.Int128
	LastCumulativeRepegRebate bin.Uint128
	LastFundingRateTs         int64
	StopLossPrice             bin.Uint128
	StopLossAmount            bin.Uint128
	StopProfitPrice           bin.Uint128
	StopProfitAmount          bin.Uint128
	Padding                   [2]uint64
}

type DiscountTokenTier struct {
	MinimumBalance      uint64
	DiscountNumerator   bin.Uint128
	DiscountDenominator bin.Uint128
}

type DiscountTokenTiers struct {
	FirstTier  DiscountTokenTier
	SecondTier DiscountTokenTier
	ThirdTier  DiscountTokenTier
	FourthTier DiscountTokenTier
}

type ReferralDiscount struct {
	ReferrerRewardNumerator    bin.Uint128
	ReferrerRewardDenominator  bin.Uint128
	RefereeDiscountNumerator   bin.Uint128
	RefereeDiscountDenominator bin.Uint128
}

type FeeStructure struct {
	FeeNumerator       bin.Uint128
	FeeDenominator     bin.Uint128
	DiscountTokenTiers DiscountTokenTiers
	ReferralDiscount   ReferralDiscount
}

type PriceDivergenceGuardRails struct {
	MarkOracleDivergenceNumerator   bin.Uint128
	MarkOracleDivergenceDenominator bin.Uint128
}

type ValidityGuardRails struct {
	SlotsBeforeStale          int64
	ConfidenceIntervalMaxSize bin.Uint128
	TooVolatileRatio          int64
}

type OracleGuardRails struct {
	PriceDivergence    PriceDivergenceGuardRails
	Validity           ValidityGuardRails
	UseForLiquidations bool
}

type TradeRecord struct {
	Ts               int64
	RecordId         bin.Uint128
	UserAuthority    solana.PublicKey
	User             solana.PublicKey
	Direction        PositionDirection
	BaseAssetAmount  bin.Uint128
	QuoteAssetAmount bin.Uint128
	MarkPriceBefore  bin.Uint128
	MarkPriceAfter   bin.Uint128
	Fee              bin.Uint128
	ReferrerReward   bin.Uint128
	RefereeDiscount  bin.Uint128
	TokenDiscount    bin.Uint128
	Liquidation      bool
	MarketIndex      uint64
	OraclePrice      bin.Int128
}

type DepositRecord struct {
	Ts                       int64
	RecordId                 uint64
	UserAuthority            solana.PublicKey
	User                     solana.PublicKey
	Direction                DepositDirection
	CollateralBefore         bin.Uint128
	CumulativeDepositsBefore bin.Int128
	Amount                   uint64
}

type FundingPaymentRecord struct {
	Ts                        int64
	RecordId                  bin.Uint128
	UserAuthority             solana.PublicKey
	User                      solana.PublicKey
	MarketIndex               uint64
	FundingPayment            bin.Int128
	BaseAssetAmount           bin.Int128
	UserLastCumulativeFunding bin.Int128
	UserLastFundingRateTs     int64
	AmmCumulativeFundingLong  bin.Int128
	AmmCumulativeFundingShort bin.Int128
}

type FundingRateRecord struct {
	Ts                         int64
	RecordId                   bin.Uint128
	MarketIndex                uint64
	FundingRate                bin.Int128
	CumulativeFundingRateLong  bin.Int128
	CumulativeFundingRateShort bin.Int128
	OraclePriceTwap            bin.Int128
	MarkPriceTwap              bin.Uint128
}

type LiquidationRecord struct {
	Ts                   int64
	RecordId             bin.Uint128
	UserAuthority        solana.PublicKey
	User                 solana.PublicKey
	Partial              bool
	BaseAssetValue       bin.Uint128
	BaseAssetValueClosed bin.Uint128
	LiquidationFee       bin.Uint128
	FeeToLiquidator      uint64
	FeeToInsuranceFund   uint64
	Liquidator           solana.PublicKey
	TotalCollateral      bin.Uint128
	Collateral           bin.Uint128
	UnrealizedPnl        bin.Int128
	MarginRatio          bin.Uint128
}

type CurveRecord struct {
	Ts                         int64
	RecordId                   bin.Uint128
	MarketIndex                uint64
	PegMultiplierBefore        bin.Uint128
	BaseAssetReserveBefore     bin.Uint128
	QuoteAssetReserveBefore    bin.Uint128
	SqrtKBefore                bin.Uint128
	PegMultiplierAfter         bin.Uint128
	BaseAssetReserveAfter      bin.Uint128
	QuoteAssetReserveAfter     bin.Uint128
	SqrtKAfter                 bin.Uint128
	BaseAssetAmountLong        bin.Uint128
	BaseAssetAmountShort       bin.Uint128
	BaseAssetAmount            bin.Int128
	OpenInterest               bin.Uint128
	TotalFee                   bin.Uint128
	TotalFeeMinusDistributions bin.Uint128
	AdjustmentCost             bin.Int128
	OraclePrice                bin.Int128
}
