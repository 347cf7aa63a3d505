package tx

import (
	"github.com/gagliardetto/solana-go"

	driftpy "github.com/slhermit/driftpy"
)

type TxSigAndSlot struct {
	TxSig solana.Signature
	Slot  uint64
}

type ITxSender interface {
	GetTransaction(
		ixs []solana.Instruction,
		opts *driftpy.ConfirmOptions,
		sign bool,
	) (*solana.Transaction, error)

	Send(
		tx *solana.Transaction,
		opts *driftpy.ConfirmOptions,
		preSigned bool,
	) (*TxSigAndSlot, error)

	SendRawTransaction(
		rawTransaction []byte,
		opts *driftpy.ConfirmOptions,
	) (*TxSigAndSlot, error)
}

type TxSender struct {
	Wallet solana.Wallet
}
