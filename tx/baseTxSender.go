package tx

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/anchor/types"
)

// BaseTxSender assembles, signs and submits transactions. The blockhash is
// fetched on demand when a transaction is built; there is no background
// refresh.
type BaseTxSender struct {
	ITxSender
	TxSender

	connection types.IConnection
	opts       driftpy.ConfirmOptions
}

func CreateBaseTxSender(
	connection types.IConnection,
	wallet solana.Wallet,
	opts *driftpy.ConfirmOptions,
) *BaseTxSender {
	return &BaseTxSender{
		TxSender: TxSender{
			Wallet: wallet,
		},
		connection: connection,
		opts:       *opts,
	}
}

func (p *BaseTxSender) GetTransaction(
	ixs []solana.Instruction,
	opts *driftpy.ConfirmOptions,
	sign bool,
) (*solana.Transaction, error) {
	if opts == nil {
		opts = &p.opts
	}
	out, err := p.connection.GetLatestBlockhash(context.TODO(), rpc.CommitmentFinalized)
	if err != nil {
		return nil, &driftpy.SubmissionError{Err: err}
	}
	tx, err := solana.NewTransaction(
		ixs,
		out.Value.Blockhash,
		solana.TransactionPayer(p.Wallet.PublicKey()),
	)
	if err != nil {
		return nil, err
	}
	if sign {
		_, err = tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
			if p.Wallet.PublicKey().Equals(key) {
				return &p.Wallet.PrivateKey
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (p *BaseTxSender) Send(
	tx *solana.Transaction,
	opts *driftpy.ConfirmOptions,
	preSigned bool,
) (*TxSigAndSlot, error) {
	if opts == nil {
		opts = &p.opts
	}
	signedTx := tx
	if !preSigned {
		_, err := signedTx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
			if p.Wallet.PublicKey().Equals(key) {
				return &p.Wallet.PrivateKey
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return p.SendRawTransaction(rawTx, opts)
}

func (p *BaseTxSender) SendRawTransaction(
	rawTransaction []byte,
	opts *driftpy.ConfirmOptions,
) (*TxSigAndSlot, error) {
	if opts == nil {
		opts = &p.opts
	}
	txSig, err := p.connection.SendRawTransactionWithOpts(
		context.TODO(),
		rawTransaction,
		opts.TransactionOpts,
	)
	if err != nil {
		return nil, &driftpy.SubmissionError{Err: err}
	}
	return &TxSigAndSlot{
		TxSig: txSig,
		Slot:  0,
	}, nil
}
