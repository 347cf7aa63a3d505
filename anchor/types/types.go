package types

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"

	driftpy "github.com/slhermit/driftpy"
)

// IConnection is the slice of the rpc client this sdk actually uses. Narrow on
// purpose: tests substitute a recording fake, production passes *rpc.Client.
type IConnection interface {
	GetAccountInfoWithOpts(
		ctx context.Context,
		account solana.PublicKey,
		opts *rpc.GetAccountInfoOpts,
	) (*rpc.GetAccountInfoResult, error)
	GetLatestBlockhash(
		ctx context.Context,
		commitment rpc.CommitmentType,
	) (*rpc.GetLatestBlockhashResult, error)
	SendRawTransactionWithOpts(
		ctx context.Context,
		rawTx []byte,
		opts rpc.TransactionOpts,
	) (solana.Signature, error)
}

type IProvider interface {
	GetConnection(...string) IConnection
	GetWsConnection(...string) *ws.Client
	GetProgram() IProgram
	SetProgram(IProgram)
	GetOpts() *driftpy.ConfirmOptions
	GetWallet() driftpy.IWallet
}

type IProgram interface {
	GetProgramId() solana.PublicKey
	GetProvider() IProvider
}
