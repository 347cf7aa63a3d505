package accounts_test

import (
	"bytes"
	"context"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/accounts"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
)

type stubConnection struct {
	data []byte
	err  error
}

func (s *stubConnection) GetAccountInfoWithOpts(
	_ context.Context,
	_ solana.PublicKey,
	_ *rpc.GetAccountInfoOpts,
) (*rpc.GetAccountInfoResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.data == nil {
		return &rpc.GetAccountInfoResult{}, nil
	}
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{
			Data: rpc.DataBytesOrJSONFromBytes(s.data),
		},
	}, nil
}

func (s *stubConnection) GetLatestBlockhash(
	_ context.Context,
	_ rpc.CommitmentType,
) (*rpc.GetLatestBlockhashResult, error) {
	return nil, rpc.ErrNotFound
}

func (s *stubConnection) SendRawTransactionWithOpts(
	_ context.Context,
	_ []byte,
	_ rpc.TransactionOpts,
) (solana.Signature, error) {
	return solana.Signature{}, rpc.ErrNotFound
}

func userBytes(t *testing.T, user *chlib.User) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(driftpy.AccountDiscriminator("User"))
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(user))
	return buf.Bytes()
}

func TestFetchUser(t *testing.T) {
	user := chlib.User{
		Authority: solana.NewWallet().PublicKey(),
		Positions: solana.NewWallet().PublicKey(),
	}
	conn := &stubConnection{data: userBytes(t, &user)}

	got, err := accounts.FetchUser(conn, solana.NewWallet().PublicKey(), rpc.CommitmentConfirmed)
	require.NoError(t, err)
	require.Equal(t, user.Authority, got.Authority)
	require.Equal(t, user.Positions, got.Positions)
}

func TestFetchUserNotFound(t *testing.T) {
	address := solana.NewWallet().PublicKey()

	_, err := accounts.FetchUser(&stubConnection{}, address, rpc.CommitmentConfirmed)
	require.Error(t, err)
	require.ErrorIs(t, err, driftpy.ErrAccountNotFound)

	var fetchErr *driftpy.RemoteFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, address, fetchErr.Address)
}

func TestFetchUserTransportError(t *testing.T) {
	conn := &stubConnection{err: rpc.ErrNotFound}

	_, err := accounts.FetchUser(conn, solana.NewWallet().PublicKey(), rpc.CommitmentConfirmed)
	require.Error(t, err)

	var fetchErr *driftpy.RemoteFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.ErrorIs(t, err, rpc.ErrNotFound)
}

func TestFetchUserSchemaMismatch(t *testing.T) {
	user := chlib.User{Authority: solana.NewWallet().PublicKey()}
	conn := &stubConnection{data: userBytes(t, &user)}

	// the bytes carry a User discriminator, not a State one
	_, err := accounts.FetchState(conn, solana.NewWallet().PublicKey(), rpc.CommitmentConfirmed)
	require.Error(t, err)

	var schemaErr *driftpy.SchemaMismatchError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "State", schemaErr.Account)
}
