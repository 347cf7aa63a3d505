package clearinghouse

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"

	driftpy "github.com/slhermit/driftpy"
)

// State is the root account of the clearing house. The dependent account
// addresses (markets and the history logs) live in here; clients learn them
// once at construction time.
type State struct {
	Admin                                          solana.PublicKey
	ExchangePaused                                 bool
	FundingPaused                                  bool
	AdminControlsPrices                            bool
	CollateralMint                                 solana.PublicKey
	CollateralVault                                solana.PublicKey
	CollateralVaultAuthority                       solana.PublicKey
	CollateralVaultNonce                           uint8
	DepositHistory                                 solana.PublicKey
	TradeHistory                                   solana.PublicKey
	FundingPaymentHistory                          solana.PublicKey
	FundingRateHistory                             solana.PublicKey
	LiquidationHistory                             solana.PublicKey
	CurveHistory                                   solana.PublicKey
	InsuranceVault                                 solana.PublicKey
	InsuranceVaultAuthority                        solana.PublicKey
	InsuranceVaultNonce                            uint8
	Markets                                        solana.PublicKey
	MarginRatioInitial                             bin.Uint128
	MarginRatioMaintenance                         bin.Uint128
	MarginRatioPartial                             bin.Uint128
	PartialLiquidationClosePercentageNumerator     bin.Uint128
	PartialLiquidationClosePercentageDenominator   bin.Uint128
	PartialLiquidationPenaltyPercentageNumerator   bin.Uint128
	PartialLiquidationPenaltyPercentageDenominator bin.Uint128
	FullLiquidationPenaltyPercentageNumerator      bin.Uint128
	FullLiquidationPenaltyPercentageDenominator    bin.Uint128
	PartialLiquidationLiquidatorShareDenominator   uint64
	FullLiquidationLiquidatorShareDenominator      uint64
	FeeStructure                                   FeeStructure
	WhitelistMint                                  solana.PublicKey
	DiscountMint                                   solana.PublicKey
	OracleGuardRails                               OracleGuardRails
	MaxDeposit                                     bin.Uint128
	Padding                                        [2]bin.Uint128
}

type Markets struct {
	Markets [64]Market
}

type User struct {
	Authority            solana.PublicKey
	Collateral           bin.Uint128
	CumulativeDeposits   bin.Int128
	TotalFeePaid         uint64
	TotalTokenDiscount   bin.Uint128
	TotalReferralReward  bin.Uint128
	TotalRefereeDiscount bin.Uint128
	Positions            solana.PublicKey
	Padding              [4]uint64
}

type UserPositions struct {
	User      solana.PublicKey
	Positions [5]MarketPosition
}

type TradeHistory struct {
	Head         uint64
	TradeRecords [1024]TradeRecord
}

type DepositHistory struct {
	Head           uint64
	DepositRecords [1024]DepositRecord
}

type FundingPaymentHistory struct {
	Head                  uint64
	FundingPaymentRecords [1024]FundingPaymentRecord
}

type FundingRateHistory struct {
	Head               uint64
	FundingRateRecords [1024]FundingRateRecord
}

type LiquidationHistory struct {
	Head               uint64
	LiquidationRecords [1024]LiquidationRecord
}

type CurveHistory struct {
	Head         uint64
	CurveRecords [1024]CurveRecord
}

func parseAccount(accountName string, data []byte, obj interface{}) error {
	if len(data) < driftpy.DISCRIMINATOR_SIZE {
		return errors.Errorf("account data too short for %s", accountName)
	}
	if !bytes.Equal(data[:driftpy.DISCRIMINATOR_SIZE], driftpy.AccountDiscriminator(accountName)) {
		return errors.Errorf("discriminator mismatch, not a %s account", accountName)
	}
	return bin.NewBorshDecoder(data[driftpy.DISCRIMINATOR_SIZE:]).Decode(obj)
}

func ParseAccount_State(data []byte) (*State, error) {
	obj := new(State)
	if err := parseAccount("State", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_Markets(data []byte) (*Markets, error) {
	obj := new(Markets)
	if err := parseAccount("Markets", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_User(data []byte) (*User, error) {
	obj := new(User)
	if err := parseAccount("User", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_UserPositions(data []byte) (*UserPositions, error) {
	obj := new(UserPositions)
	if err := parseAccount("UserPositions", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_TradeHistory(data []byte) (*TradeHistory, error) {
	obj := new(TradeHistory)
	if err := parseAccount("TradeHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_DepositHistory(data []byte) (*DepositHistory, error) {
	obj := new(DepositHistory)
	if err := parseAccount("DepositHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_FundingPaymentHistory(data []byte) (*FundingPaymentHistory, error) {
	obj := new(FundingPaymentHistory)
	if err := parseAccount("FundingPaymentHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_FundingRateHistory(data []byte) (*FundingRateHistory, error) {
	obj := new(FundingRateHistory)
	if err := parseAccount("FundingRateHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_LiquidationHistory(data []byte) (*LiquidationHistory, error) {
	obj := new(LiquidationHistory)
	if err := parseAccount("LiquidationHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func ParseAccount_CurveHistory(data []byte) (*CurveHistory, error) {
	obj := new(CurveHistory)
	if err := parseAccount("CurveHistory", data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// ParseAnyAccount dispatches on the leading discriminator.
func ParseAnyAccount(data []byte) (interface{}, error) {
	if len(data) < driftpy.DISCRIMINATOR_SIZE {
		return nil, errors.Errorf("account data too short")
	}
	disc := data[:driftpy.DISCRIMINATOR_SIZE]
	switch {
	case bytes.Equal(disc, driftpy.AccountDiscriminator("State")):
		return ParseAccount_State(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("Markets")):
		return ParseAccount_Markets(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("User")):
		return ParseAccount_User(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("UserPositions")):
		return ParseAccount_UserPositions(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("TradeHistory")):
		return ParseAccount_TradeHistory(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("DepositHistory")):
		return ParseAccount_DepositHistory(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("FundingPaymentHistory")):
		return ParseAccount_FundingPaymentHistory(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("FundingRateHistory")):
		return ParseAccount_FundingRateHistory(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("LiquidationHistory")):
		return ParseAccount_LiquidationHistory(data)
	case bytes.Equal(disc, driftpy.AccountDiscriminator("CurveHistory")):
		return ParseAccount_CurveHistory(data)
	}
	return nil, errors.Errorf("unknown account discriminator %x", disc)
}
