package driftpy

import "github.com/gagliardetto/solana-go"

// Wallet is the single-keypair IWallet used by the clearing house client. It
// signs only for its own key; extra signers (e.g. a fresh positions keypair)
// are added by the caller via PartialSign before submission.
type Wallet struct {
	IWallet
	PrivateKey solana.PrivateKey
}

func NewWallet(privateKey solana.PrivateKey) *Wallet {
	return &Wallet{PrivateKey: privateKey}
}

func NewWalletFromBase58(key string) (*Wallet, error) {
	privateKey, err := solana.PrivateKeyFromBase58(key)
	if err != nil {
		return nil, err
	}
	return &Wallet{PrivateKey: privateKey}, nil
}

func (p *Wallet) GetPublicKey() solana.PublicKey {
	return p.PrivateKey.PublicKey()
}

func (p *Wallet) GetPrivateKey() solana.PrivateKey {
	return p.PrivateKey
}

func (p *Wallet) GetWallet() solana.Wallet {
	return solana.Wallet{PrivateKey: p.PrivateKey}
}

// signer answers PartialSign callbacks for this wallet's key only.
func (p *Wallet) signer(key solana.PublicKey) *solana.PrivateKey {
	if p.PrivateKey.PublicKey().Equals(key) {
		return &p.PrivateKey
	}
	return nil
}

func (p *Wallet) SignTransaction(tx *solana.Transaction) *solana.Transaction {
	_, _ = tx.PartialSign(p.signer)
	return tx
}

func (p *Wallet) SignAllTransactions(txs []*solana.Transaction) []*solana.Transaction {
	for _, tx := range txs {
		_, _ = tx.PartialSign(p.signer)
	}
	return txs
}
