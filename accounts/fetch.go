package accounts

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/anchor/types"
	chlib "github.com/slhermit/driftpy/lib/clearinghouse"
)

// Every fetch is a single round trip with no retry; cancellation and timeouts
// belong to the transport.

func fetchAccountData(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) ([]byte, error) {
	out, err := connection.GetAccountInfoWithOpts(
		context.TODO(),
		address,
		&rpc.GetAccountInfoOpts{
			Commitment: commitment,
		},
	)
	if err != nil {
		return nil, &driftpy.RemoteFetchError{Address: address, Err: err}
	}
	if out == nil || out.Value == nil {
		return nil, &driftpy.RemoteFetchError{Address: address, Err: driftpy.ErrAccountNotFound}
	}
	return out.Value.Data.GetBinary(), nil
}

func FetchState(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.State, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_State(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "State", Err: err}
	}
	return obj, nil
}

func FetchMarkets(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.Markets, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_Markets(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "Markets", Err: err}
	}
	return obj, nil
}

func FetchUser(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.User, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_User(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "User", Err: err}
	}
	return obj, nil
}

func FetchUserPositions(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.UserPositions, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_UserPositions(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "UserPositions", Err: err}
	}
	return obj, nil
}

func FetchTradeHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.TradeHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_TradeHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "TradeHistory", Err: err}
	}
	return obj, nil
}

func FetchDepositHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.DepositHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_DepositHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "DepositHistory", Err: err}
	}
	return obj, nil
}

func FetchFundingPaymentHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.FundingPaymentHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_FundingPaymentHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "FundingPaymentHistory", Err: err}
	}
	return obj, nil
}

func FetchFundingRateHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.FundingRateHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_FundingRateHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "FundingRateHistory", Err: err}
	}
	return obj, nil
}

func FetchLiquidationHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.LiquidationHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_LiquidationHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "LiquidationHistory", Err: err}
	}
	return obj, nil
}

func FetchCurveHistory(
	connection types.IConnection,
	address solana.PublicKey,
	commitment rpc.CommitmentType,
) (*chlib.CurveHistory, error) {
	data, err := fetchAccountData(connection, address, commitment)
	if err != nil {
		return nil, err
	}
	obj, err := chlib.ParseAccount_CurveHistory(data)
	if err != nil {
		return nil, &driftpy.SchemaMismatchError{Account: "CurveHistory", Err: err}
	}
	return obj, nil
}
