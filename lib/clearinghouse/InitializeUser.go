package clearinghouse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// InitializeUser creates the caller's user account at its derived address,
// together with a fresh user positions account that must co-sign.
type InitializeUser struct {
	UserNonce        *uint8
	OptionalAccounts *InitializeUserOptionalAccounts

	programId solana.PublicKey

	// [0] = [WRITE] user
	// [1] = [WRITE] state
	// [2] = [WRITE, SIGNER] userPositions
	// [3] = [WRITE, SIGNER] authority
	// [4] = [] rent
	// [5] = [] systemProgram
	// [6...] = [] whitelistToken (remaining, optional)
	solana.AccountMetaSlice `bin:"-"`
}

func NewInitializeUserInstructionBuilder() *InitializeUser {
	return &InitializeUser{
		AccountMetaSlice: make(solana.AccountMetaSlice, 6),
	}
}

func (inst *InitializeUser) SetProgramId(programId solana.PublicKey) *InitializeUser {
	inst.programId = programId
	return inst
}

func (inst *InitializeUser) SetUserNonce(userNonce uint8) *InitializeUser {
	inst.UserNonce = &userNonce
	return inst
}

func (inst *InitializeUser) SetOptionalAccounts(optionalAccounts InitializeUserOptionalAccounts) *InitializeUser {
	inst.OptionalAccounts = &optionalAccounts
	return inst
}

func (inst *InitializeUser) SetUserAccount(user solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[0] = solana.Meta(user).WRITE()
	return inst
}

func (inst *InitializeUser) SetStateAccount(state solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[1] = solana.Meta(state).WRITE()
	return inst
}

func (inst *InitializeUser) SetUserPositionsAccount(userPositions solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[2] = solana.Meta(userPositions).WRITE().SIGNER()
	return inst
}

func (inst *InitializeUser) SetAuthorityAccount(authority solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[3] = solana.Meta(authority).WRITE().SIGNER()
	return inst
}

func (inst *InitializeUser) SetRentSysvarAccount(rent solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[4] = solana.Meta(rent)
	return inst
}

func (inst *InitializeUser) SetSystemProgramAccount(systemProgram solana.PublicKey) *InitializeUser {
	inst.AccountMetaSlice[5] = solana.Meta(systemProgram)
	return inst
}

// SetWhitelistTokenAccount appends the whitelist token account as a remaining
// account. Pass nothing by leaving it unset; the optional-accounts flag and
// this meta travel together.
func (inst *InitializeUser) SetWhitelistTokenAccount(whitelistToken *solana.AccountMeta) *InitializeUser {
	if whitelistToken != nil {
		inst.AccountMetaSlice = append(inst.AccountMetaSlice, whitelistToken)
	}
	return inst
}

func (inst *InitializeUser) Validate() error {
	if inst.UserNonce == nil {
		return errors.Errorf("initializeUser: UserNonce is not set")
	}
	if inst.OptionalAccounts == nil {
		return errors.Errorf("initializeUser: OptionalAccounts is not set")
	}
	if inst.programId.IsZero() {
		return errors.Errorf("initializeUser: program id is not set")
	}
	return validateAccounts("initializeUser", inst.AccountMetaSlice)
}

func (inst *InitializeUser) Build() (*Instruction, error) {
	data, err := encodeInstruction("initializeUser", *inst.UserNonce, *inst.OptionalAccounts)
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *InitializeUser) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
