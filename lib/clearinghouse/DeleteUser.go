package clearinghouse

import (
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// DeleteUser closes the caller's user and positions accounts, refunding rent
// to the authority. The program rejects it while collateral or positions
// remain.
type DeleteUser struct {
	programId solana.PublicKey

	// [0] = [WRITE] user
	// [1] = [WRITE] userPositions
	// [2] = [WRITE, SIGNER] authority
	solana.AccountMetaSlice `bin:"-"`
}

func NewDeleteUserInstructionBuilder() *DeleteUser {
	return &DeleteUser{
		AccountMetaSlice: make(solana.AccountMetaSlice, 3),
	}
}

func (inst *DeleteUser) SetProgramId(programId solana.PublicKey) *DeleteUser {
	inst.programId = programId
	return inst
}

func (inst *DeleteUser) SetUserAccount(user solana.PublicKey) *DeleteUser {
	inst.AccountMetaSlice[0] = solana.Meta(user).WRITE()
	return inst
}

func (inst *DeleteUser) SetUserPositionsAccount(userPositions solana.PublicKey) *DeleteUser {
	inst.AccountMetaSlice[1] = solana.Meta(userPositions).WRITE()
	return inst
}

func (inst *DeleteUser) SetAuthorityAccount(authority solana.PublicKey) *DeleteUser {
	inst.AccountMetaSlice[2] = solana.Meta(authority).WRITE().SIGNER()
	return inst
}

func (inst *DeleteUser) Validate() error {
	if inst.programId.IsZero() {
		return errors.Errorf("deleteUser: program id is not set")
	}
	return validateAccounts("deleteUser", inst.AccountMetaSlice)
}

func (inst *DeleteUser) Build() (*Instruction, error) {
	data, err := encodeInstruction("deleteUser")
	if err != nil {
		return nil, err
	}
	return &Instruction{
		programId: inst.programId,
		accounts:  inst.AccountMetaSlice,
		data:      data,
	}, nil
}

func (inst *DeleteUser) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build()
}
