package tx_test

import (
	"context"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/tx"
)

type stubConnection struct {
	blockhash    solana.Hash
	blockhashErr error
	txSig        solana.Signature
	sendErr      error
	sent         [][]byte
}

func (s *stubConnection) GetAccountInfoWithOpts(
	_ context.Context,
	_ solana.PublicKey,
	_ *rpc.GetAccountInfoOpts,
) (*rpc.GetAccountInfoResult, error) {
	return &rpc.GetAccountInfoResult{}, nil
}

func (s *stubConnection) GetLatestBlockhash(
	_ context.Context,
	_ rpc.CommitmentType,
) (*rpc.GetLatestBlockhashResult, error) {
	if s.blockhashErr != nil {
		return nil, s.blockhashErr
	}
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            s.blockhash,
			LastValidBlockHeight: 100,
		},
	}, nil
}

func (s *stubConnection) SendRawTransactionWithOpts(
	_ context.Context,
	rawTx []byte,
	_ rpc.TransactionOpts,
) (solana.Signature, error) {
	if s.sendErr != nil {
		return solana.Signature{}, s.sendErr
	}
	s.sent = append(s.sent, rawTx)
	return s.txSig, nil
}

func transferIx(from, to solana.PublicKey) solana.Instruction {
	return system.NewTransferInstruction(1, from, to).Build()
}

func TestGetTransactionFetchesBlockhashOnDemand(t *testing.T) {
	wallet := solana.NewWallet()
	conn := &stubConnection{blockhash: solana.Hash(solana.NewWallet().PublicKey())}
	opts := driftpy.DefaultConfirmOptions()
	sender := tx.CreateBaseTxSender(conn, *wallet, &opts)

	transaction, err := sender.GetTransaction(
		[]solana.Instruction{transferIx(wallet.PublicKey(), solana.NewWallet().PublicKey())},
		nil,
		false,
	)
	require.NoError(t, err)
	require.Equal(t, conn.blockhash, transaction.Message.RecentBlockhash)
	require.Equal(t, wallet.PublicKey(), transaction.Message.AccountKeys[0])
}

func TestGetTransactionBlockhashError(t *testing.T) {
	wallet := solana.NewWallet()
	conn := &stubConnection{blockhashErr: context.DeadlineExceeded}
	opts := driftpy.DefaultConfirmOptions()
	sender := tx.CreateBaseTxSender(conn, *wallet, &opts)

	_, err := sender.GetTransaction(
		[]solana.Instruction{transferIx(wallet.PublicKey(), solana.NewWallet().PublicKey())},
		nil,
		false,
	)
	require.Error(t, err)

	var submissionErr *driftpy.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
}

func TestSendSignsAndSubmits(t *testing.T) {
	wallet := solana.NewWallet()
	conn := &stubConnection{
		blockhash: solana.Hash(solana.NewWallet().PublicKey()),
		txSig:     solana.Signature{7},
	}
	opts := driftpy.DefaultConfirmOptions()
	sender := tx.CreateBaseTxSender(conn, *wallet, &opts)

	transaction, err := sender.GetTransaction(
		[]solana.Instruction{transferIx(wallet.PublicKey(), solana.NewWallet().PublicKey())},
		nil,
		false,
	)
	require.NoError(t, err)

	sigAndSlot, err := sender.Send(transaction, nil, false)
	require.NoError(t, err)
	require.Equal(t, conn.txSig, sigAndSlot.TxSig)
	require.Len(t, conn.sent, 1)

	sent, err := solana.TransactionFromDecoder(bin.NewBinDecoder(conn.sent[0]))
	require.NoError(t, err)
	require.Len(t, sent.Signatures, 1)
	require.False(t, sent.Signatures[0].IsZero())
}

func TestSendRawTransactionWrapsError(t *testing.T) {
	wallet := solana.NewWallet()
	conn := &stubConnection{sendErr: context.DeadlineExceeded}
	opts := driftpy.DefaultConfirmOptions()
	sender := tx.CreateBaseTxSender(conn, *wallet, &opts)

	_, err := sender.SendRawTransaction([]byte{1, 2, 3}, nil)
	require.Error(t, err)

	var submissionErr *driftpy.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
