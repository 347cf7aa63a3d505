package clearinghouse

import (
	"github.com/gagliardetto/solana-go"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/accounts"
	"github.com/slhermit/driftpy/addresses"
	"github.com/slhermit/driftpy/anchor/types"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
	"github.com/slhermit/driftpy/tx"
)

// ClearingHousePDAs is the address bundle learned once at construction. It is
// never mutated; if the state account's dependent addresses change on chain,
// build a fresh client with Create.
type ClearingHousePDAs struct {
	State                 solana.PublicKey
	Markets               solana.PublicKey
	TradeHistory          solana.PublicKey
	DepositHistory        solana.PublicKey
	FundingPaymentHistory solana.PublicKey
	FundingRateHistory    solana.PublicKey
	LiquidationHistory    solana.PublicKey
	CurveHistory          solana.PublicKey
}

// ClearingHouse is the main way to interact with the clearing house program:
// fetching accounts, depositing and withdrawing collateral, opening and
// closing positions. Construct it with Create.
//
// The client holds no mutable state after construction, so concurrent calls
// are independent round trips.
type ClearingHouse struct {
	Program  types.IProgram
	Provider types.IProvider
	Wallet   driftpy.IWallet
	Opts     driftpy.ConfirmOptions
	TxSender tx.ITxSender
	PDAs     ClearingHousePDAs
}

// Create derives the state address, fetches the state account once to learn
// the dependent account addresses, and returns a ready client. A missing or
// undecodable state account is fatal here; nothing is retried.
func Create(program types.IProgram, txSenders ...tx.ITxSender) (*ClearingHouse, error) {
	provider := program.GetProvider()
	opts := *provider.GetOpts()

	statePublicKey, _ := addresses.GetClearingHouseStatePublicKeyAndNonce(program.GetProgramId())
	state, err := accounts.FetchState(provider.GetConnection(), statePublicKey, opts.Commitment)
	if err != nil {
		return nil, err
	}

	var txSender tx.ITxSender
	if len(txSenders) > 0 && txSenders[0] != nil {
		txSender = txSenders[0]
	} else {
		txSender = tx.CreateBaseTxSender(
			provider.GetConnection(),
			provider.GetWallet().GetWallet(),
			&opts,
		)
	}

	return &ClearingHouse{
		Program:  program,
		Provider: provider,
		Wallet:   provider.GetWallet(),
		Opts:     opts,
		TxSender: txSender,
		PDAs: ClearingHousePDAs{
			State:                 statePublicKey,
			Markets:               state.Markets,
			TradeHistory:          state.TradeHistory,
			DepositHistory:        state.DepositHistory,
			FundingPaymentHistory: state.FundingPaymentHistory,
			FundingRateHistory:    state.FundingRateHistory,
			LiquidationHistory:    state.LiquidationHistory,
			CurveHistory:          state.CurveHistory,
		},
	}, nil
}

// GetUserAccountPublicKey derives the caller's user account address. Pure, no
// fetch.
func (p *ClearingHouse) GetUserAccountPublicKey() solana.PublicKey {
	return addresses.GetUserAccountPublicKey(
		p.Program.GetProgramId(),
		p.Wallet.GetPublicKey(),
	)
}

// Each accessor below is one fresh round trip; nothing is cached.

func (p *ClearingHouse) GetStateAccount() (*chlib.State, error) {
	return accounts.FetchState(p.Provider.GetConnection(), p.PDAs.State, p.Opts.Commitment)
}

func (p *ClearingHouse) GetMarketsAccount() (*chlib.Markets, error) {
	return accounts.FetchMarkets(p.Provider.GetConnection(), p.PDAs.Markets, p.Opts.Commitment)
}

func (p *ClearingHouse) GetTradeHistoryAccount() (*chlib.TradeHistory, error) {
	return accounts.FetchTradeHistory(p.Provider.GetConnection(), p.PDAs.TradeHistory, p.Opts.Commitment)
}

func (p *ClearingHouse) GetDepositHistoryAccount() (*chlib.DepositHistory, error) {
	return accounts.FetchDepositHistory(p.Provider.GetConnection(), p.PDAs.DepositHistory, p.Opts.Commitment)
}

func (p *ClearingHouse) GetFundingPaymentHistoryAccount() (*chlib.FundingPaymentHistory, error) {
	return accounts.FetchFundingPaymentHistory(p.Provider.GetConnection(), p.PDAs.FundingPaymentHistory, p.Opts.Commitment)
}

func (p *ClearingHouse) GetFundingRateHistoryAccount() (*chlib.FundingRateHistory, error) {
	return accounts.FetchFundingRateHistory(p.Provider.GetConnection(), p.PDAs.FundingRateHistory, p.Opts.Commitment)
}

func (p *ClearingHouse) GetLiquidationHistoryAccount() (*chlib.LiquidationHistory, error) {
	return accounts.FetchLiquidationHistory(p.Provider.GetConnection(), p.PDAs.LiquidationHistory, p.Opts.Commitment)
}

func (p *ClearingHouse) GetCurveHistoryAccount() (*chlib.CurveHistory, error) {
	return accounts.FetchCurveHistory(p.Provider.GetConnection(), p.PDAs.CurveHistory, p.Opts.Commitment)
}

// GetUserAccount fetches the caller's own user account.
func (p *ClearingHouse) GetUserAccount() (*chlib.User, error) {
	return accounts.FetchUser(
		p.Provider.GetConnection(),
		p.GetUserAccountPublicKey(),
		p.Opts.Commitment,
	)
}

// GetUserPositionsAccount resolves the caller's positions account through the
// user account and fetches it.
func (p *ClearingHouse) GetUserPositionsAccount() (*chlib.UserPositions, error) {
	user, err := p.GetUserAccount()
	if err != nil {
		return nil, err
	}
	return accounts.FetchUserPositions(p.Provider.GetConnection(), user.Positions, p.Opts.Commitment)
}
