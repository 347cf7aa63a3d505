package driftpy

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/go-errors/errors"
)

// ErrAccountNotFound reports an address with no account behind it.
var ErrAccountNotFound = errors.Errorf("account not found")

// RemoteFetchError wraps a failed account lookup: either the rpc call failed or
// the address holds no account. Never retried by this layer.
type RemoteFetchError struct {
	Address solana.PublicKey
	Err     error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Address, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports account bytes that do not decode against the
// expected layout. Indicates version skew between this client and the program.
type SchemaMismatchError struct {
	Account string
	Err     error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("decode %s account: %v", e.Account, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Err
}

// SubmissionError carries a transaction rejection as reported by the
// transport, with no local interpretation.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("send transaction: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
