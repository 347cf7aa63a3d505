package clearinghouse

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// OpenPosition trades against the market's AMM for up to QuoteAssetAmount of
// quote exposure in the given direction.
type OpenPosition struct {
	Direction        *PositionDirection
	QuoteAssetAmount *bin.Uint128
	MarketIndex      *uint64
	LimitPrice       *bin.Uint128
	OptionalAccounts *ManagePositionOptionalAccounts

	programId solana.PublicKey

	// [0] = [WRITE] state
	// [1] = [WRITE] user
	// [2] = [SIGNER] authority
	// [3] = [WRITE] markets
	// [4] = [WRITE] userPositions
	// [5] = [WRITE] tradeHistory
	// [6] = [WRITE] fundingPaymentHistory
	// [7] = [WRITE] fundingRateHistory
	// [8] = [] oracle
	// [9...] = [] discountToken, referrer (remaining, optional)
	solana.AccountMetaSlice `bin:"-"`
}

func NewOpenPositionInstructionBuilder() *OpenPosition {
	return &OpenPosition{
		AccountMetaSlice: make(solana.AccountMetaSlice, 9),
	}
}

func (inst *OpenPosition) SetProgramId(programId solana.PublicKey) *OpenPosition {
	inst.programId = programId
	return inst
}

func (inst *OpenPosition) SetDirection(direction PositionDirection) *OpenPosition {
	inst.Direction = &direction
	return inst
}

func (inst *OpenPosition) SetQuoteAssetAmount(quoteAssetAmount bin.Uint128) *OpenPosition {
	inst.QuoteAssetAmount = &quoteAssetAmount
	return inst
}

func (inst *OpenPosition) SetMarketIndex(marketIndex uint64) *OpenPosition {
	inst.MarketIndex = &marketIndex
	return inst
}

func (inst *OpenPosition) SetLimitPrice(limitPrice bin.Uint128) *OpenPosition {
	inst.LimitPrice = &limitPrice
	return inst
}

func (inst *OpenPosition) SetOptionalAccounts(optionalAccounts ManagePositionOptionalAccounts) *OpenPosition {
	inst.OptionalAccounts = &optionalAccounts
	return inst
}

func (inst *OpenPosition) SetStateAccount(state solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[0] = solana.Meta(state).WRITE()
	return inst
}

func (inst *OpenPosition) SetUserAccount(user solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[1] = solana.Meta(user).WRITE()
	return inst
}

func (inst *OpenPosition) SetAuthorityAccount(authority solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *OpenPosition) SetMarketsAccount(markets solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[3] = solana.Meta(markets).WRITE()
	return inst
}

func (inst *OpenPosition) SetUserPositionsAccount(userPositions solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[4] = solana.Meta(userPositions).WRITE()
	return inst
}

func (inst *OpenPosition) SetTradeHistoryAccount(tradeHistory solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[5] = solana.Meta(tradeHistory).WRITE()
	return inst
}

func (inst *OpenPosition) SetFundingPaymentHistoryAccount(fundingPaymentHistory solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[6] = solana.Meta(fundingPaymentHistory).WRITE()
	return inst
}

func (inst *OpenPosition) SetFundingRateHistoryAccount(fundingRateHistory solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[7] = solana.Meta(fundingRateHistory).WRITE()
	return inst
}

func (inst *OpenPosition) SetOracleAccount(oracle solana.PublicKey) *OpenPosition {
	inst.AccountMetaSlice[8] = solana.Meta(oracle)
	return inst
}

func (inst *OpenPosition) SetDiscountTokenAccount(discountToken *solana.AccountMeta) *OpenPosition {
	if discountToken != nil {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, discountToken)
	}
	return inst
}

func (inst *OpenPosition) SetReferrerAccount(referrer *solana.AccountMeta) *OpenPosition {
	if referrer != nil {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, referrer)
	}
	return inst
}

func (inst *OpenPosition) Validate() error {
	if inst.Direction == nil {
		return errors.Errorf("openPosition: Direction is not set")
	}
	if inst.QuoteAssetAmount == nil {
		return errors.Errorf("openPosition: QuoteAssetAmount is not set")
	}
	if inst.MarketIndex == nil {
		return errors.Errorf("openPosition: MarketIndex is not set")
	}
	if inst.LimitPrice == nil {
		return errors.Errorf("openPosition: LimitPrice is not set")
	}
	if inst.OptionalAccounts == nil {
		return errors.Errorf("openPosition: OptionalAccounts is not set")
	}
	if inst.programId.IsZero() {
		return errors.Errorf("openPosition: program id is not set")
	}
	return validateAccounts("openPosition", inst.AccountMetaSlice)
}

func (inst *OpenPosition) Build() (*Instruction, error) {
	data, err := encodeInstruction(
		"openPosition",
		*inst.Direction,
		*inst.QuoteAssetAmount,
		*inst.MarketIndex,
		*inst.LimitPrice,
		*inst.OptionalAccounts,
	)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *OpenPosition) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
