package anchor

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/ws"

	driftpy "github.com/slhermit/driftpy"
	"github.com/slhermit/driftpy/anchor/types"
	"github.com/slhermit/driftpy/connection"
)

type AnchorProvider struct {
	types.IProvider
	Wallet            driftpy.IWallet
	PublicKey         solana.PublicKey
	Opts              driftpy.ConfirmOptions
	ConnectionManager *connection.Manager
	Program           types.IProgram
}

func CreateAnchorProvider(
	wallet driftpy.IWallet,
	publicKey solana.PublicKey,
	opts driftpy.ConfirmOptions,
	connectionManager *connection.Manager,
) *AnchorProvider {
	return &AnchorProvider{
		Wallet:            wallet,
		PublicKey:         publicKey,
		Opts:              opts,
		ConnectionManager: connectionManager,
	}
}

func (p *AnchorProvider) GetWallet() driftpy.IWallet {
	return p.Wallet
}

func (p *AnchorProvider) GetConnection(id ...string) types.IConnection {
	return p.ConnectionManager.GetRpc(id...)
}

func (p *AnchorProvider) GetWsConnection(id ...string) *ws.Client {
	return p.ConnectionManager.GetWs(id...)
}

func (p *AnchorProvider) GetOpts() *driftpy.ConfirmOptions {
	return &p.Opts
}

func (p *AnchorProvider) GetProgram() types.IProgram {
	return p.Program
}

func (p *AnchorProvider) SetProgram(program types.IProgram) {
	p.Program = program
}
