package clearinghouse

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"

	driftpy "github.com/slhermit/driftpy"
)

// Instruction is a built clearing-house instruction. The program id is carried
// per instruction rather than in a package global; the client passes it in
// when building.
type Instruction struct {
	programId solana.PublicKey
	accounts  solana.AccountMetaSlice
	data      []byte
}

func (inst *Instruction) ProgramID() solana.PublicKey {
	return inst.programId
}

func (inst *Instruction) Accounts() []*solana.AccountMeta {
	return inst.accounts
}

func (inst *Instruction) Data() ([]byte, error) {
	return inst.data, nil
}

// encodeInstruction prefixes the anchor method discriminator and borsh-encodes
// the args in order.
func encodeInstruction(name string, args ...interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(driftpy.InstructionDiscriminator(name))
	encoder := bin.NewBorshEncoder(buf)
	for _, arg := range args {
		if err := encoder.Encode(arg); err != nil {
			return nil, errors.Errorf("encode %s args: %v", name, err)
		}
	}
	return buf.Bytes(), nil
}

func validateAccounts(name string, accounts solana.AccountMetaSlice) error {
	for idx, account := range accounts {
		if account == nil {
			return errors.Errorf("%s: account at index %d is not set", name, idx)
		}
	}
	return nil
}
