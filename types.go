package driftpy

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type IWallet interface {
	GetPublicKey() solana.PublicKey
	GetPrivateKey() solana.PrivateKey
	GetWallet() solana.Wallet
	SignTransaction(tx *solana.Transaction) *solana.Transaction
	SignAllTransactions(txs []*solana.Transaction) []*solana.Transaction
}

type ConfirmOptions struct {
	rpc.TransactionOpts
	Commitment rpc.CommitmentType
}

func DefaultConfirmOptions() ConfirmOptions {
	return ConfirmOptions{
		TransactionOpts: rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentConfirmed,
		},
		Commitment: rpc.CommitmentConfirmed,
	}
}
