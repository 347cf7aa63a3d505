package clearinghouse

import (
	"math/big"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/slhermit/driftpy/accounts"
	"github.com/slhermit/driftpy/addresses"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
	"github.com/slhermit/driftpy/utils"
)

// GetInitializeUserInstructions derives the caller's user account address,
// generates a fresh keypair for the companion positions account and builds
// the initialize_user instruction. The positions keypair must co-sign the
// transaction that carries the instruction. Purely local, no fetch.
//
// whitelistToken rides along as a remaining account when the whitelist gate
// is in use. The discovery path (reading the state's whitelist mint and
// resolving the caller's associated token account) is not wired up; callers
// pass nil until it is.
func (p *ClearingHouse) GetInitializeUserInstructions(
	whitelistToken *solana.AccountMeta,
) (*solana.Wallet, solana.PublicKey, *chlib.Instruction, error) {
	userPublicKey, userAccountNonce := addresses.GetUserAccountPublicKeyAndNonce(
		p.Program.GetProgramId(),
		p.Wallet.GetPublicKey(),
	)
	userPositions := solana.NewWallet()

	optionalAccounts := chlib.InitializeUserOptionalAccounts{
		WhitelistToken: whitelistToken != nil,
	}

	ix, err := chlib.NewInitializeUserInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetUserNonce(userAccountNonce).
		SetOptionalAccounts(optionalAccounts).
		SetUserAccount(userPublicKey).
		SetStateAccount(p.PDAs.State).
		SetUserPositionsAccount(userPositions.PublicKey()).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		SetRentSysvarAccount(solana.SysVarRentPubkey).
		SetSystemProgramAccount(system.ProgramID).
		SetWhitelistTokenAccount(whitelistToken).
		ValidateAndBuild()
	if err != nil {
		return nil, solana.PublicKey{}, nil, err
	}
	return userPositions, userPublicKey, ix, nil
}

// GetDepositCollateralIx builds the deposit_collateral instruction. When
// userPositions is nil it is resolved with one extra fetch of the caller's
// user account.
//
// The state account is re-read on every call instead of trusting the cached
// bundle: the collateral vault and the history addresses it carries can
// rotate underneath a long-lived client. The top-level bundle stays cached.
func (p *ClearingHouse) GetDepositCollateralIx(
	amount uint64,
	collateralAccountPublicKey solana.PublicKey,
	userPositions *solana.PublicKey,
) (*chlib.Instruction, error) {
	userPublicKey := p.GetUserAccountPublicKey()

	var userPositionsPublicKey solana.PublicKey
	if userPositions == nil {
		user, err := accounts.FetchUser(
			p.Provider.GetConnection(),
			userPublicKey,
			p.Opts.Commitment,
		)
		if err != nil {
			return nil, err
		}
		userPositionsPublicKey = user.Positions
	} else {
		userPositionsPublicKey = *userPositions
	}

	state, err := accounts.FetchState(p.Provider.GetConnection(), p.PDAs.State, p.Opts.Commitment)
	if err != nil {
		return nil, err
	}

	return chlib.NewDepositCollateralInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetAmount(amount).
		SetStateAccount(p.PDAs.State).
		SetUserAccount(userPublicKey).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		SetCollateralVaultAccount(state.CollateralVault).
		SetUserCollateralAccount(collateralAccountPublicKey).
		SetTokenProgramAccount(token.ProgramID).
		SetMarketsAccount(state.Markets).
		SetUserPositionsAccount(userPositionsPublicKey).
		SetFundingPaymentHistoryAccount(state.FundingPaymentHistory).
		SetDepositHistoryAccount(state.DepositHistory).
		ValidateAndBuild()
}

// InitializeUserAccountAndDepositCollateral creates the user account and
// funds it in one atomic transaction: [initialize_user, deposit_collateral],
// in that order. Returns the submitted signature and the new user account's
// address.
func (p *ClearingHouse) InitializeUserAccountAndDepositCollateral(
	amount uint64,
	collateralAccountPublicKey solana.PublicKey,
) (solana.Signature, solana.PublicKey, error) {
	userPositions, userPublicKey, initializeUserIx, err := p.GetInitializeUserInstructions(nil)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	depositCollateralIx, err := p.GetDepositCollateralIx(
		amount,
		collateralAccountPublicKey,
		utils.NewPtr(userPositions.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	transaction, err := p.TxSender.GetTransaction(
		[]solana.Instruction{initializeUserIx, depositCollateralIx},
		&p.Opts,
		false,
	)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	positionsKey := userPositions.PrivateKey
	_, err = transaction.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if userPositions.PublicKey().Equals(key) {
			return &positionsKey
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	sigAndSlot, err := p.TxSender.Send(transaction, &p.Opts, false)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}
	return sigAndSlot.TxSig, userPublicKey, nil
}

// DepositCollateral builds and submits a deposit for an existing user.
func (p *ClearingHouse) DepositCollateral(
	amount uint64,
	collateralAccountPublicKey solana.PublicKey,
	userPositions *solana.PublicKey,
) (solana.Signature, error) {
	ix, err := p.GetDepositCollateralIx(amount, collateralAccountPublicKey, userPositions)
	if err != nil {
		return solana.Signature{}, err
	}
	return p.sendIxs(ix)
}

// GetWithdrawCollateralIx builds the withdraw_collateral instruction. Vault
// and insurance addresses are read from a fresh state fetch, same as the
// deposit path.
func (p *ClearingHouse) GetWithdrawCollateralIx(
	amount uint64,
	collateralAccountPublicKey solana.PublicKey,
	userPositions *solana.PublicKey,
) (*chlib.Instruction, error) {
	userPublicKey := p.GetUserAccountPublicKey()

	var userPositionsPublicKey solana.PublicKey
	if userPositions == nil {
		user, err := accounts.FetchUser(
			p.Provider.GetConnection(),
			userPublicKey,
			p.Opts.Commitment,
		)
		if err != nil {
			return nil, err
		}
		userPositionsPublicKey = user.Positions
	} else {
		userPositionsPublicKey = *userPositions
	}

	state, err := accounts.FetchState(p.Provider.GetConnection(), p.PDAs.State, p.Opts.Commitment)
	if err != nil {
		return nil, err
	}

	return chlib.NewWithdrawCollateralInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetAmount(amount).
		SetStateAccount(p.PDAs.State).
		SetUserAccount(userPublicKey).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		SetCollateralVaultAccount(state.CollateralVault).
		SetCollateralVaultAuthorityAccount(state.CollateralVaultAuthority).
		SetInsuranceVaultAccount(state.InsuranceVault).
		SetInsuranceVaultAuthorityAccount(state.InsuranceVaultAuthority).
		SetUserCollateralAccount(collateralAccountPublicKey).
		SetTokenProgramAccount(token.ProgramID).
		SetMarketsAccount(state.Markets).
		SetUserPositionsAccount(userPositionsPublicKey).
		SetFundingPaymentHistoryAccount(state.FundingPaymentHistory).
		SetDepositHistoryAccount(state.DepositHistory).
		ValidateAndBuild()
}

// WithdrawCollateral builds and submits a withdrawal.
func (p *ClearingHouse) WithdrawCollateral(
	amount uint64,
	collateralAccountPublicKey solana.PublicKey,
	userPositions *solana.PublicKey,
) (solana.Signature, error) {
	ix, err := p.GetWithdrawCollateralIx(amount, collateralAccountPublicKey, userPositions)
	if err != nil {
		return solana.Signature{}, err
	}
	return p.sendIxs(ix)
}

// GetOpenPositionIx builds the open_position instruction. The oracle for the
// market is read from a fresh markets fetch.
func (p *ClearingHouse) GetOpenPositionIx(
	direction chlib.PositionDirection,
	quoteAssetAmount *big.Int,
	marketIndex uint64,
	limitPrice *big.Int,
	userPositions *solana.PublicKey,
	discountToken *solana.AccountMeta,
	referrer *solana.AccountMeta,
) (*chlib.Instruction, error) {
	userPublicKey := p.GetUserAccountPublicKey()

	var userPositionsPublicKey solana.PublicKey
	if userPositions == nil {
		user, err := accounts.FetchUser(
			p.Provider.GetConnection(),
			userPublicKey,
			p.Opts.Commitment,
		)
		if err != nil {
			return nil, err
		}
		userPositionsPublicKey = user.Positions
	} else {
		userPositionsPublicKey = *userPositions
	}

	markets, err := accounts.FetchMarkets(p.Provider.GetConnection(), p.PDAs.Markets, p.Opts.Commitment)
	if err != nil {
		return nil, err
	}
	priceOracle := markets.Markets[marketIndex].Amm.Oracle

	if limitPrice == nil {
		limitPrice = big.NewInt(0)
	}

	optionalAccounts := chlib.ManagePositionOptionalAccounts{
		DiscountToken: discountToken != nil,
		Referrer:      referrer != nil,
	}

	return chlib.NewOpenPositionInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetDirection(direction).
		SetQuoteAssetAmount(utils.Uint128(quoteAssetAmount)).
		SetMarketIndex(marketIndex).
		SetLimitPrice(utils.Uint128(limitPrice)).
		SetOptionalAccounts(optionalAccounts).
		SetStateAccount(p.PDAs.State).
		SetUserAccount(userPublicKey).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		SetMarketsAccount(p.PDAs.Markets).
		SetUserPositionsAccount(userPositionsPublicKey).
		SetTradeHistoryAccount(p.PDAs.TradeHistory).
		SetFundingPaymentHistoryAccount(p.PDAs.FundingPaymentHistory).
		SetFundingRateHistoryAccount(p.PDAs.FundingRateHistory).
		SetOracleAccount(priceOracle).
		SetDiscountTokenAccount(discountToken).
		SetReferrerAccount(referrer).
		ValidateAndBuild()
}

// OpenPosition builds and submits an open_position.
func (p *ClearingHouse) OpenPosition(
	direction chlib.PositionDirection,
	quoteAssetAmount *big.Int,
	marketIndex uint64,
	limitPrice *big.Int,
) (solana.Signature, error) {
	ix, err := p.GetOpenPositionIx(direction, quoteAssetAmount, marketIndex, limitPrice, nil, nil, nil)
	if err != nil {
		return solana.Signature{}, err
	}
	return p.sendIxs(ix)
}

// GetClosePositionIx builds the close_position instruction for the caller's
// whole position in a market.
func (p *ClearingHouse) GetClosePositionIx(
	marketIndex uint64,
	userPositions *solana.PublicKey,
	discountToken *solana.AccountMeta,
	referrer *solana.AccountMeta,
) (*chlib.Instruction, error) {
	userPublicKey := p.GetUserAccountPublicKey()

	var userPositionsPublicKey solana.PublicKey
	if userPositions == nil {
		user, err := accounts.FetchUser(
			p.Provider.GetConnection(),
			userPublicKey,
			p.Opts.Commitment,
		)
		if err != nil {
			return nil, err
		}
		userPositionsPublicKey = user.Positions
	} else {
		userPositionsPublicKey = *userPositions
	}

	markets, err := accounts.FetchMarkets(p.Provider.GetConnection(), p.PDAs.Markets, p.Opts.Commitment)
	if err != nil {
		return nil, err
	}
	priceOracle := markets.Markets[marketIndex].Amm.Oracle

	optionalAccounts := chlib.ManagePositionOptionalAccounts{
		DiscountToken: discountToken != nil,
		Referrer:      referrer != nil,
	}

	return chlib.NewClosePositionInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetMarketIndex(marketIndex).
		SetOptionalAccounts(optionalAccounts).
		SetStateAccount(p.PDAs.State).
		SetUserAccount(userPublicKey).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		SetMarketsAccount(p.PDAs.Markets).
		SetUserPositionsAccount(userPositionsPublicKey).
		SetTradeHistoryAccount(p.PDAs.TradeHistory).
		SetFundingPaymentHistoryAccount(p.PDAs.FundingPaymentHistory).
		SetFundingRateHistoryAccount(p.PDAs.FundingRateHistory).
		SetOracleAccount(priceOracle).
		SetDiscountTokenAccount(discountToken).
		SetReferrerAccount(referrer).
		ValidateAndBuild()
}

// ClosePosition builds and submits a close_position.
func (p *ClearingHouse) ClosePosition(marketIndex uint64) (solana.Signature, error) {
	ix, err := p.GetClosePositionIx(marketIndex, nil, nil, nil)
	if err != nil {
		return solana.Signature{}, err
	}
	return p.sendIxs(ix)
}

// DeleteUser closes the caller's user and positions accounts.
func (p *ClearingHouse) DeleteUser() (solana.Signature, error) {
	userPublicKey := p.GetUserAccountPublicKey()
	user, err := accounts.FetchUser(p.Provider.GetConnection(), userPublicKey, p.Opts.Commitment)
	if err != nil {
		return solana.Signature{}, err
	}

	ix, err := chlib.NewDeleteUserInstructionBuilder().
		SetProgramId(p.Program.GetProgramId()).
		SetUserAccount(userPublicKey).
		SetUserPositionsAccount(user.Positions).
		SetAuthorityAccount(p.Wallet.GetPublicKey()).
		ValidateAndBuild()
	if err != nil {
		return solana.Signature{}, err
	}
	return p.sendIxs(ix)
}

// GetCreateAssociatedTokenAccountIx prepares the caller's associated token
// account for a mint, typically the collateral mint before a first deposit.
func (p *ClearingHouse) GetCreateAssociatedTokenAccountIx(
	mint solana.PublicKey,
) (solana.PublicKey, solana.Instruction, error) {
	owner := p.Wallet.GetPublicKey()
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, nil, err
	}
	ix := associatedtokenaccount.NewCreateInstruction(owner, owner, mint).Build()
	return ata, ix, nil
}

func (p *ClearingHouse) sendIxs(ixs ...solana.Instruction) (solana.Signature, error) {
	transaction, err := p.TxSender.GetTransaction(ixs, &p.Opts, false)
	if err != nil {
		return solana.Signature{}, err
	}
	sigAndSlot, err := p.TxSender.Send(transaction, &p.Opts, false)
	if err != nil {
		return solana.Signature{}, err
	}
	return sigAndSlot.TxSig, nil
}
