package clearinghouse_test

import (
	"bytes"
	"context"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/stretchr/testify/require"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/addresses"
	"github.com/slhermit/driftpy/anchor"
	"github.com/slhermit/driftpy/anchor/types"
	"github.com/slhermit/driftpy/clearinghouse"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
	"github.com/slhermit/driftpy/utils"
)

// mockConnection serves canned account bytes and records every address it is
// asked for, so tests can count round trips.
type mockConnection struct {
	accounts  map[solana.PublicKey][]byte
	fetched   []solana.PublicKey
	blockhash solana.Hash
	txSig     solana.Signature
	sent      [][]byte
	sendErr   error
}

func (m *mockConnection) GetAccountInfoWithOpts(
	_ context.Context,
	account solana.PublicKey,
	_ *rpc.GetAccountInfoOpts,
) (*rpc.GetAccountInfoResult, error) {
	m.fetched = append(m.fetched, account)
	data, ok := m.accounts[account]
	if !ok {
		return &rpc.GetAccountInfoResult{}, nil
	}
	return &rpc.GetAccountInfoResult{
		Value: &rpc.Account{
			Data: rpc.DataBytesOrJSONFromBytes(data),
		},
	}, nil
}

func (m *mockConnection) GetLatestBlockhash(
	_ context.Context,
	_ rpc.CommitmentType,
) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            m.blockhash,
			LastValidBlockHeight: 100,
		},
	}, nil
}

func (m *mockConnection) SendRawTransactionWithOpts(
	_ context.Context,
	rawTx []byte,
	_ rpc.TransactionOpts,
) (solana.Signature, error) {
	if m.sendErr != nil {
		return solana.Signature{}, m.sendErr
	}
	m.sent = append(m.sent, rawTx)
	return m.txSig, nil
}

type mockProvider struct {
	conn    *mockConnection
	wallet  driftpy.IWallet
	opts    driftpy.ConfirmOptions
	program types.IProgram
}

func (p *mockProvider) GetConnection(...string) types.IConnection { return p.conn }
func (p *mockProvider) GetWsConnection(...string) *ws.Client      { return nil }
func (p *mockProvider) GetProgram() types.IProgram                { return p.program }
func (p *mockProvider) SetProgram(program types.IProgram)         { p.program = program }
func (p *mockProvider) GetOpts() *driftpy.ConfirmOptions          { return &p.opts }
func (p *mockProvider) GetWallet() driftpy.IWallet                { return p.wallet }

func encodeAccount(t *testing.T, accountName string, obj interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(driftpy.AccountDiscriminator(accountName))
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(obj))
	return buf.Bytes()
}

type fixture struct {
	programId      solana.PublicKey
	statePublicKey solana.PublicKey
	state          chlib.State
	wallet         *driftpy.Wallet
	conn           *mockConnection
	clearingHouse  *clearinghouse.ClearingHouse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	programId := solana.NewWallet().PublicKey()
	statePublicKey := addresses.GetClearingHouseStatePublicKey(programId)

	state := chlib.State{
		Admin:                    solana.NewWallet().PublicKey(),
		CollateralMint:           solana.NewWallet().PublicKey(),
		CollateralVault:          solana.NewWallet().PublicKey(),
		CollateralVaultAuthority: solana.NewWallet().PublicKey(),
		DepositHistory:           solana.NewWallet().PublicKey(),
		TradeHistory:             solana.NewWallet().PublicKey(),
		FundingPaymentHistory:    solana.NewWallet().PublicKey(),
		FundingRateHistory:       solana.NewWallet().PublicKey(),
		LiquidationHistory:       solana.NewWallet().PublicKey(),
		CurveHistory:             solana.NewWallet().PublicKey(),
		InsuranceVault:           solana.NewWallet().PublicKey(),
		InsuranceVaultAuthority:  solana.NewWallet().PublicKey(),
		Markets:                  solana.NewWallet().PublicKey(),
	}

	conn := &mockConnection{
		accounts: map[solana.PublicKey][]byte{
			statePublicKey: encodeAccount(t, "State", &state),
		},
		blockhash: solana.Hash(solana.NewWallet().PublicKey()),
		txSig:     solana.Signature{1, 2, 3},
	}

	wallet := &driftpy.Wallet{PrivateKey: solana.NewWallet().PrivateKey}
	provider := &mockProvider{
		conn:   conn,
		wallet: wallet,
		opts:   driftpy.DefaultConfirmOptions(),
	}
	program := anchor.CreateProgram(programId, provider)

	clearingHouse, err := clearinghouse.Create(program)
	require.NoError(t, err)

	return &fixture{
		programId:      programId,
		statePublicKey: statePublicKey,
		state:          state,
		wallet:         wallet,
		conn:           conn,
		clearingHouse:  clearingHouse,
	}
}

func (f *fixture) serve(t *testing.T, address solana.PublicKey, accountName string, obj interface{}) {
	t.Helper()
	f.conn.accounts[address] = encodeAccount(t, accountName, obj)
}

func (f *fixture) resetFetched() {
	f.conn.fetched = nil
}

func TestCreateLearnsAddressBundle(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, []solana.PublicKey{f.statePublicKey}, f.conn.fetched)

	pdas := f.clearingHouse.PDAs
	require.Equal(t, f.statePublicKey, pdas.State)
	require.Equal(t, f.state.Markets, pdas.Markets)
	require.Equal(t, f.state.TradeHistory, pdas.TradeHistory)
	require.Equal(t, f.state.DepositHistory, pdas.DepositHistory)
	require.Equal(t, f.state.FundingPaymentHistory, pdas.FundingPaymentHistory)
	require.Equal(t, f.state.FundingRateHistory, pdas.FundingRateHistory)
	require.Equal(t, f.state.LiquidationHistory, pdas.LiquidationHistory)
	require.Equal(t, f.state.CurveHistory, pdas.CurveHistory)
}

func TestCreateStateMissing(t *testing.T) {
	programId := solana.NewWallet().PublicKey()
	conn := &mockConnection{accounts: map[solana.PublicKey][]byte{}}
	provider := &mockProvider{
		conn:   conn,
		wallet: &driftpy.Wallet{PrivateKey: solana.NewWallet().PrivateKey},
		opts:   driftpy.DefaultConfirmOptions(),
	}
	program := anchor.CreateProgram(programId, provider)

	_, err := clearinghouse.Create(program)
	require.Error(t, err)
	require.ErrorIs(t, err, driftpy.ErrAccountNotFound)

	var fetchErr *driftpy.RemoteFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, addresses.GetClearingHouseStatePublicKey(programId), fetchErr.Address)
}

func TestAccessorsFetchFreshEachCall(t *testing.T) {
	f := newFixture(t)

	f.serve(t, f.state.Markets, "Markets", &chlib.Markets{})
	f.serve(t, f.state.TradeHistory, "TradeHistory", &chlib.TradeHistory{Head: 1})
	f.serve(t, f.state.DepositHistory, "DepositHistory", &chlib.DepositHistory{Head: 2})
	f.serve(t, f.state.FundingPaymentHistory, "FundingPaymentHistory", &chlib.FundingPaymentHistory{Head: 3})
	f.serve(t, f.state.FundingRateHistory, "FundingRateHistory", &chlib.FundingRateHistory{Head: 4})
	f.serve(t, f.state.LiquidationHistory, "LiquidationHistory", &chlib.LiquidationHistory{Head: 5})
	f.serve(t, f.state.CurveHistory, "CurveHistory", &chlib.CurveHistory{Head: 6})

	f.resetFetched()
	markets, err := f.clearingHouse.GetMarketsAccount()
	require.NoError(t, err)
	require.NotNil(t, markets)
	require.Equal(t, []solana.PublicKey{f.state.Markets}, f.conn.fetched)

	// nothing is cached, a second call is a second round trip
	_, err = f.clearingHouse.GetMarketsAccount()
	require.NoError(t, err)
	require.Equal(t, []solana.PublicKey{f.state.Markets, f.state.Markets}, f.conn.fetched)

	f.resetFetched()
	state, err := f.clearingHouse.GetStateAccount()
	require.NoError(t, err)
	require.Equal(t, f.state.Admin, state.Admin)

	tradeHistory, err := f.clearingHouse.GetTradeHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(1), tradeHistory.Head)

	depositHistory, err := f.clearingHouse.GetDepositHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(2), depositHistory.Head)

	fundingPaymentHistory, err := f.clearingHouse.GetFundingPaymentHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(3), fundingPaymentHistory.Head)

	fundingRateHistory, err := f.clearingHouse.GetFundingRateHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(4), fundingRateHistory.Head)

	liquidationHistory, err := f.clearingHouse.GetLiquidationHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(5), liquidationHistory.Head)

	curveHistory, err := f.clearingHouse.GetCurveHistoryAccount()
	require.NoError(t, err)
	require.Equal(t, uint64(6), curveHistory.Head)

	require.Equal(t, []solana.PublicKey{
		f.statePublicKey,
		f.state.TradeHistory,
		f.state.DepositHistory,
		f.state.FundingPaymentHistory,
		f.state.FundingRateHistory,
		f.state.LiquidationHistory,
		f.state.CurveHistory,
	}, f.conn.fetched)
}

func TestAccessorMissingAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.clearingHouse.GetMarketsAccount()
	require.Error(t, err)
	require.ErrorIs(t, err, driftpy.ErrAccountNotFound)

	var fetchErr *driftpy.RemoteFetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, f.state.Markets, fetchErr.Address)
}

func TestAccessorSchemaMismatch(t *testing.T) {
	f := newFixture(t)

	// a User payload where Markets is expected
	f.conn.accounts[f.state.Markets] = encodeAccount(t, "User", &chlib.User{})

	_, err := f.clearingHouse.GetMarketsAccount()
	require.Error(t, err)

	var schemaErr *driftpy.SchemaMismatchError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "Markets", schemaErr.Account)
}

func TestGetUserPositionsAccountResolvesThroughUser(t *testing.T) {
	f := newFixture(t)

	userPublicKey := f.clearingHouse.GetUserAccountPublicKey()
	positionsPublicKey := solana.NewWallet().PublicKey()

	f.serve(t, userPublicKey, "User", &chlib.User{
		Authority: f.wallet.GetPublicKey(),
		Positions: positionsPublicKey,
	})
	userPositions := chlib.UserPositions{User: userPublicKey}
	userPositions.Positions[0].MarketIndex = 1
	f.serve(t, positionsPublicKey, "UserPositions", &userPositions)

	f.resetFetched()
	got, err := f.clearingHouse.GetUserPositionsAccount()
	require.NoError(t, err)
	require.Equal(t, userPublicKey, got.User)
	require.Equal(t, []solana.PublicKey{userPublicKey, positionsPublicKey}, f.conn.fetched)
}

func TestGetInitializeUserInstructionsIsLocal(t *testing.T) {
	f := newFixture(t)
	f.resetFetched()

	userPositions, userPublicKey, ix, err := f.clearingHouse.GetInitializeUserInstructions(nil)
	require.NoError(t, err)
	require.Empty(t, f.conn.fetched)

	require.Equal(t, f.clearingHouse.GetUserAccountPublicKey(), userPublicKey)

	accounts := ix.Accounts()
	require.Len(t, accounts, 6)
	require.Equal(t, userPublicKey, accounts[0].PublicKey)
	require.Equal(t, f.statePublicKey, accounts[1].PublicKey)
	require.Equal(t, userPositions.PublicKey(), accounts[2].PublicKey)
	require.True(t, accounts[2].IsSigner)
	require.Equal(t, f.wallet.GetPublicKey(), accounts[3].PublicKey)

	data, err := ix.Data()
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, driftpy.InstructionDiscriminator("initialize_user")))

	// a second call draws a fresh positions keypair
	userPositions2, _, _, err := f.clearingHouse.GetInitializeUserInstructions(nil)
	require.NoError(t, err)
	require.NotEqual(t, userPositions.PublicKey(), userPositions2.PublicKey())
}

func TestGetInitializeUserInstructionsWhitelistToken(t *testing.T) {
	f := newFixture(t)

	whitelistToken := solana.Meta(solana.NewWallet().PublicKey())
	_, _, ix, err := f.clearingHouse.GetInitializeUserInstructions(whitelistToken)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 7)
	require.Equal(t, whitelistToken, accounts[6])

	data, err := ix.Data()
	require.NoError(t, err)
	require.Equal(t, byte(1), data[9])
}

func TestGetDepositCollateralIxExplicitPositions(t *testing.T) {
	f := newFixture(t)

	collateralAccount := solana.NewWallet().PublicKey()
	positionsPublicKey := solana.NewWallet().PublicKey()

	f.resetFetched()
	ix, err := f.clearingHouse.GetDepositCollateralIx(
		1_000_000,
		collateralAccount,
		utils.NewPtr(positionsPublicKey),
	)
	require.NoError(t, err)

	// only the state is re-read; the positions address was supplied
	require.Equal(t, []solana.PublicKey{f.statePublicKey}, f.conn.fetched)

	accounts := ix.Accounts()
	require.Len(t, accounts, 10)
	require.Equal(t, f.statePublicKey, accounts[0].PublicKey)
	require.Equal(t, f.clearingHouse.GetUserAccountPublicKey(), accounts[1].PublicKey)
	require.Equal(t, f.state.CollateralVault, accounts[3].PublicKey)
	require.Equal(t, collateralAccount, accounts[4].PublicKey)
	require.Equal(t, positionsPublicKey, accounts[7].PublicKey)
	require.Equal(t, f.state.FundingPaymentHistory, accounts[8].PublicKey)
	require.Equal(t, f.state.DepositHistory, accounts[9].PublicKey)
}

func TestGetDepositCollateralIxResolvesPositions(t *testing.T) {
	f := newFixture(t)

	userPublicKey := f.clearingHouse.GetUserAccountPublicKey()
	positionsPublicKey := solana.NewWallet().PublicKey()
	f.serve(t, userPublicKey, "User", &chlib.User{
		Authority: f.wallet.GetPublicKey(),
		Positions: positionsPublicKey,
	})

	f.resetFetched()
	ix, err := f.clearingHouse.GetDepositCollateralIx(1_000_000, solana.NewWallet().PublicKey(), nil)
	require.NoError(t, err)

	// one extra fetch of the user account to learn the positions address
	require.Equal(t, []solana.PublicKey{userPublicKey, f.statePublicKey}, f.conn.fetched)
	require.Equal(t, positionsPublicKey, ix.Accounts()[7].PublicKey)
}

func TestGetDepositCollateralIxUserMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.clearingHouse.GetDepositCollateralIx(1, solana.NewWallet().PublicKey(), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, driftpy.ErrAccountNotFound)
}

func TestInitializeUserAccountAndDepositCollateral(t *testing.T) {
	f := newFixture(t)
	f.resetFetched()

	collateralAccount := solana.NewWallet().PublicKey()
	sig, userPublicKey, err := f.clearingHouse.InitializeUserAccountAndDepositCollateral(
		5_000_000,
		collateralAccount,
	)
	require.NoError(t, err)
	require.Equal(t, f.conn.txSig, sig)
	require.Equal(t, f.clearingHouse.GetUserAccountPublicKey(), userPublicKey)

	// the deposit leg re-reads the state; the positions address came from the
	// freshly drawn keypair, so the user account is never fetched
	require.Equal(t, []solana.PublicKey{f.statePublicKey}, f.conn.fetched)

	require.Len(t, f.conn.sent, 1)
	transaction, err := solana.TransactionFromDecoder(bin.NewBinDecoder(f.conn.sent[0]))
	require.NoError(t, err)

	require.Len(t, transaction.Message.Instructions, 2)
	require.True(t, bytes.HasPrefix(
		transaction.Message.Instructions[0].Data,
		driftpy.InstructionDiscriminator("initialize_user"),
	))
	require.True(t, bytes.HasPrefix(
		transaction.Message.Instructions[1].Data,
		driftpy.InstructionDiscriminator("deposit_collateral"),
	))

	// fee payer is the authority; both it and the positions keypair signed
	require.Equal(t, f.wallet.GetPublicKey(), transaction.Message.AccountKeys[0])
	require.EqualValues(t, 2, transaction.Message.Header.NumRequiredSignatures)
	require.Len(t, transaction.Signatures, 2)
	for _, signature := range transaction.Signatures {
		require.False(t, signature.IsZero())
	}
}

func TestDepositCollateralSubmits(t *testing.T) {
	f := newFixture(t)

	sig, err := f.clearingHouse.DepositCollateral(
		1_000_000,
		solana.NewWallet().PublicKey(),
		utils.NewPtr(solana.NewWallet().PublicKey()),
	)
	require.NoError(t, err)
	require.Equal(t, f.conn.txSig, sig)
	require.Len(t, f.conn.sent, 1)
}

func TestWithdrawCollateralSubmits(t *testing.T) {
	f := newFixture(t)

	sig, err := f.clearingHouse.WithdrawCollateral(
		500_000,
		solana.NewWallet().PublicKey(),
		utils.NewPtr(solana.NewWallet().PublicKey()),
	)
	require.NoError(t, err)
	require.Equal(t, f.conn.txSig, sig)

	transaction, err := solana.TransactionFromDecoder(bin.NewBinDecoder(f.conn.sent[0]))
	require.NoError(t, err)
	require.Len(t, transaction.Message.Instructions, 1)
	require.True(t, bytes.HasPrefix(
		transaction.Message.Instructions[0].Data,
		driftpy.InstructionDiscriminator("withdraw_collateral"),
	))
}

func TestOpenAndClosePositionSubmit(t *testing.T) {
	f := newFixture(t)

	markets := chlib.Markets{}
	markets.Markets[0].Initialized = true
	markets.Markets[0].Amm.Oracle = solana.NewWallet().PublicKey()
	f.serve(t, f.state.Markets, "Markets", &markets)

	userPublicKey := f.clearingHouse.GetUserAccountPublicKey()
	f.serve(t, userPublicKey, "User", &chlib.User{
		Authority: f.wallet.GetPublicKey(),
		Positions: solana.NewWallet().PublicKey(),
	})

	sig, err := f.clearingHouse.OpenPosition(
		chlib.PositionDirection_Long,
		utils.BigUInt64(1_000_000),
		0,
		nil,
	)
	require.NoError(t, err)
	require.Equal(t, f.conn.txSig, sig)

	transaction, err := solana.TransactionFromDecoder(bin.NewBinDecoder(f.conn.sent[0]))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(
		transaction.Message.Instructions[0].Data,
		driftpy.InstructionDiscriminator("open_position"),
	))

	_, err = f.clearingHouse.ClosePosition(0)
	require.NoError(t, err)
	require.Len(t, f.conn.sent, 2)
}

func TestDeleteUserSubmits(t *testing.T) {
	f := newFixture(t)

	userPublicKey := f.clearingHouse.GetUserAccountPublicKey()
	f.serve(t, userPublicKey, "User", &chlib.User{
		Authority: f.wallet.GetPublicKey(),
		Positions: solana.NewWallet().PublicKey(),
	})

	sig, err := f.clearingHouse.DeleteUser()
	require.NoError(t, err)
	require.Equal(t, f.conn.txSig, sig)
}

func TestSubmissionErrorWrapped(t *testing.T) {
	f := newFixture(t)
	f.conn.sendErr = context.DeadlineExceeded

	_, err := f.clearingHouse.DepositCollateral(
		1,
		solana.NewWallet().PublicKey(),
		utils.NewPtr(solana.NewWallet().PublicKey()),
	)
	require.Error(t, err)

	var submissionErr *driftpy.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetCreateAssociatedTokenAccountIx(t *testing.T) {
	f := newFixture(t)

	mint := solana.NewWallet().PublicKey()
	ata, ix, err := f.clearingHouse.GetCreateAssociatedTokenAccountIx(mint)
	require.NoError(t, err)
	require.NotNil(t, ix)

	expected, _, err := solana.FindAssociatedTokenAddress(f.wallet.GetPublicKey(), mint)
	require.NoError(t, err)
	require.Equal(t, expected, ata)
}
