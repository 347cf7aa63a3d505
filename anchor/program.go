package anchor

import (
	"github.com/gagliardetto/solana-go"

	"github.com/slhermit/driftpy/anchor/types"
)

// Program ties a program id to a provider. Account decoding is done by the
// typed parsers in lib/clearinghouse rather than a reflection namespace.
type Program struct {
	types.IProgram
	ProgramId solana.PublicKey
	Provider  types.IProvider
}

func CreateProgram(
	programId solana.PublicKey,
	provider types.IProvider,
) *Program {
	program := &Program{
		ProgramId: programId,
		Provider:  provider,
	}
	provider.SetProgram(program)
	return program
}

func (p *Program) GetProgramId() solana.PublicKey {
	return p.ProgramId
}

func (p *Program) GetProvider() types.IProvider {
	return p.Provider
}
