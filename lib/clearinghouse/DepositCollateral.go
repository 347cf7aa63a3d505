package clearinghouse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// DepositCollateral moves tokens from the caller's token account into the
// collateral vault and credits the user account.
type DepositCollateral struct {
	Amount *uint64

	programId solana.PublicKey

	// [0] = [WRITE] state
	// [1] = [WRITE] user
	// [2] = [SIGNER] authority
	// [3] = [WRITE] collateralVault
	// [4] = [WRITE] userCollateralAccount
	// [5] = [] tokenProgram
	// [6] = [WRITE] markets
	// [7] = [WRITE] userPositions
	// [8] = [WRITE] fundingPaymentHistory
	// [9] = [WRITE] depositHistory
	solana.AccountMetaSlice `bin:"-"`
}

func NewDepositCollateralInstructionBuilder() *DepositCollateral {
	return &DepositCollateral{
		AccountMetaSlice: make(solana.AccountMetaSlice, 10),
	}
}

func (inst *DepositCollateral) SetProgramId(programId solana.PublicKey) *DepositCollateral {
	inst.programId = programId
	return inst
}

func (inst *DepositCollateral) SetAmount(amount uint64) *DepositCollateral {
	inst.Amount = &amount
	return inst
}

func (inst *DepositCollateral) SetStateAccount(state solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[0] = solana.Meta(state).WRITE()
	return inst
}

func (inst *DepositCollateral) SetUserAccount(user solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[1] = solana.Meta(user).WRITE()
	return inst
}

func (inst *DepositCollateral) SetAuthorityAccount(authority solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *DepositCollateral) SetCollateralVaultAccount(collateralVault solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[3] = solana.Meta(collateralVault).WRITE()
	return inst
}

func (inst *DepositCollateral) SetUserCollateralAccount(userCollateralAccount solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[4] = solana.Meta(userCollateralAccount).WRITE()
	return inst
}

func (inst *DepositCollateral) SetTokenProgramAccount(tokenProgram solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[5] = solana.Meta(tokenProgram)
	return inst
}

func (inst *DepositCollateral) SetMarketsAccount(markets solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[6] = solana.Meta(markets).WRITE()
	return inst
}

func (inst *DepositCollateral) SetUserPositionsAccount(userPositions solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[7] = solana.Meta(userPositions).WRITE()
	return inst
}

func (inst *DepositCollateral) SetFundingPaymentHistoryAccount(fundingPaymentHistory solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[8] = solana.Meta(fundingPaymentHistory).WRITE()
	return inst
}

func (inst *DepositCollateral) SetDepositHistoryAccount(depositHistory solana.PublicKey) *DepositCollateral {
	inst.AccountMetaSlice[9] = solana.Meta(depositHistory).WRITE()
	return inst
}

func (inst *DepositCollateral) Validate() error {
	if inst.Amount == nil {
		return errors.Errorf("depositCollateral: Amount is not set")
	}
	if inst.programId.IsZero() {
		return errors.Errorf("depositCollateral: program id is not set")
	}
	return validateAccounts("depositCollateral", inst.AccountMetaSlice)
}

func (inst *DepositCollateral) Build() (*Instruction, error) {
	data, err := encodeInstruction("depositCollateral", *inst.Amount)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *DepositCollateral) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
