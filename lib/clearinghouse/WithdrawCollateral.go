package clearinghouse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// WithdrawCollateral pays collateral back out of the vault to the caller's
// token account, drawing on the insurance vault if the collateral vault is
// short.
type WithdrawCollateral struct {
	Amount *uint64

	programId solana.PublicKey

	// [0] = [WRITE] state
	// [1] = [WRITE] user
	// [2] = [SIGNER] authority
	// [3] = [WRITE] collateralVault
	// [4] = [] collateralVaultAuthority
	// [5] = [WRITE] insuranceVault
	// [6] = [] insuranceVaultAuthority
	// [7] = [WRITE] userCollateralAccount
	// [8] = [] tokenProgram
	// [9] = [WRITE] markets
	// [10] = [WRITE] userPositions
	// [11] = [WRITE] fundingPaymentHistory
	// [12] = [WRITE] depositHistory
	solana.AccountMetaSlice `bin:"-"`
}

func NewWithdrawCollateralInstructionBuilder() *WithdrawCollateral {
	return &WithdrawCollateral{
		AccountMetaSlice: make(solana.AccountMetaSlice, 13),
	}
}

func (inst *WithdrawCollateral) SetProgramId(programId solana.PublicKey) *WithdrawCollateral {
	inst.programId = programId
	return inst
}

func (inst *WithdrawCollateral) SetAmount(amount uint64) *WithdrawCollateral {
	inst.Amount = &amount
	return inst
}

func (inst *WithdrawCollateral) SetStateAccount(state solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[0] = solana.Meta(state).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetUserAccount(user solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[1] = solana.Meta(user).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetAuthorityAccount(authority solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[2] = solana.Meta(authority).SIGNER()
	return inst
}

func (inst *WithdrawCollateral) SetCollateralVaultAccount(collateralVault solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[3] = solana.Meta(collateralVault).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetCollateralVaultAuthorityAccount(collateralVaultAuthority solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[4] = solana.Meta(collateralVaultAuthority)
	return inst
}

func (inst *WithdrawCollateral) SetInsuranceVaultAccount(insuranceVault solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[5] = solana.Meta(insuranceVault).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetInsuranceVaultAuthorityAccount(insuranceVaultAuthority solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[6] = solana.Meta(insuranceVaultAuthority)
	return inst
}

func (inst *WithdrawCollateral) SetUserCollateralAccount(userCollateralAccount solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[7] = solana.Meta(userCollateralAccount).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetTokenProgramAccount(tokenProgram solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[8] = solana.Meta(tokenProgram)
	return inst
}

func (inst *WithdrawCollateral) SetMarketsAccount(markets solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[9] = solana.Meta(markets).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetUserPositionsAccount(userPositions solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[10] = solana.Meta(userPositions).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetFundingPaymentHistoryAccount(fundingPaymentHistory solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[11] = solana.Meta(fundingPaymentHistory).WRITE()
	return inst
}

func (inst *WithdrawCollateral) SetDepositHistoryAccount(depositHistory solana.PublicKey) *WithdrawCollateral {
	inst.AccountMetaSlice[12] = solana.Meta(depositHistory).WRITE()
	return inst
}

func (inst *WithdrawCollateral) Validate() error {
	if inst.Amount == nil {
		return errors.Errorf("withdrawCollateral: Amount is not set")
	}
	if inst.programId.IsZero() {
		return errors.Errorf("withdrawCollateral: program id is not set")
	}
	return validateAccounts("withdrawCollateral", inst.AccountMetaSlice)
}

func (inst *WithdrawCollateral) Build() (*Instruction, error) {
	data, err := encodeInstruction("withdrawCollateral", *inst.Amount)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *WithdrawCollateral) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
