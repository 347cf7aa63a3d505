package clearinghouse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// ClosePosition unwinds the caller's whole position in a market against the
// AMM.
type ClosePosition struct {
	MarketIndex      *uint64
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

func NewClosePositionInstructionBuilder() *ClosePosition {
	return &ClosePosition{
		AccountMetaSlice: make(solana.AccountMetaSlice, 9),
	}
}

func (inst *ClosePosition) SetProgramId(programId solana.PublicKey) *ClosePosition {
	inst.programId = programId
	return inst
}

func (inst *ClosePosition) SetMarketIndex(marketIndex uint64) *ClosePosition {
	inst.MarketIndex = &marketIndex
	return inst
}

func (inst *ClosePosition) SetOptionalAccounts(optionalAccounts ManagePositionOptionalAccounts) *ClosePosition {
	inst.OptionalAccounts = &optionalAccounts
	return inst
}

func (inst *ClosePosition) SetStateAccount(state solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[0] = solana.Meta(state).WRITE()
	return inst
}

func (inst *ClosePosition) SetUserAccount(user solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[1] = solana.Meta(user).WRITE()
	return inst
}

func (inst *ClosePosition) SetAuthorityAccount(authority solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *ClosePosition) SetMarketsAccount(markets solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[3] = solana.Meta(markets).WRITE()
	return inst
}

func (inst *ClosePosition) SetUserPositionsAccount(userPositions solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[4] = solana.Meta(userPositions).WRITE()
	return inst
}

func (inst *ClosePosition) SetTradeHistoryAccount(tradeHistory solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[5] = solana.Meta(tradeHistory).WRITE()
	return inst
}

func (inst *ClosePosition) SetFundingPaymentHistoryAccount(fundingPaymentHistory solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[6] = solana.Meta(fundingPaymentHistory).WRITE()
	return inst
}

func (inst *ClosePosition) SetFundingRateHistoryAccount(fundingRateHistory solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[7] = solana.Meta(fundingRateHistory).WRITE()
	return inst
}

func (inst *ClosePosition) SetOracleAccount(oracle solana.PublicKey) *ClosePosition {
	inst.AccountMetaSlice[8] = solana.Meta(oracle)
	return inst
}

func (inst *ClosePosition) SetDiscountTokenAccount(discountToken *solana.AccountMeta) *ClosePosition {
	if discountToken != nil {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, discountToken)
	}
	return inst
}

func (inst *ClosePosition) SetReferrerAccount(referrer *solana.AccountMeta) *ClosePosition {
	if referrer != nil {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, referrer)
	}
	return inst
}

func (inst *ClosePosition) Validate() error {
	if inst.MarketIndex == nil {
		return errors.Errorf("closePosition: MarketIndex is not set")
	}
	if inst.OptionalAccounts == nil {
		return errors.Errorf("closePosition: OptionalAccounts is not set")
	}
	if inst.programId.IsZero() {
		return errors.Errorf("closePosition: program id is not set")
	}
	return validateAccounts("closePosition", inst.AccountMetaSlice)
}

func (inst *ClosePosition) Build() (*Instruction, error) {
	data, err := encodeInstruction("closePosition", *inst.MarketIndex, *inst.OptionalAccounts)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *ClosePosition) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
