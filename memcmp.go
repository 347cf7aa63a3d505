package driftpy

import (
	"crypto/sha256"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/iancoleman/strcase"
)

const DISCRIMINATOR_SIZE = 8

// AccountDiscriminator is the 8-byte anchor account tag for a struct name.
func AccountDiscriminator(accountName string) []byte {
	hash := sha256.Sum256([]byte(fmt.Sprintf("account:%s", strcase.ToCamel(accountName))))
	return hash[0:DISCRIMINATOR_SIZE]
}

// InstructionDiscriminator is the 8-byte anchor method tag; the preimage uses
// the snake_case name of the program handler.
func InstructionDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte(fmt.Sprintf("global:%s", strcase.ToSnake(name))))
	return hash[0:DISCRIMINATOR_SIZE]
}

func GetAccountFilter(accountName string) rpc.RPCFilter {
	hashCut := AccountDiscriminator(accountName)
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: 0,
			Bytes:  hashCut,
		},
	}
}

func GetUserFilter() rpc.RPCFilter {
	return GetAccountFilter("User")
}

func GetUserPositionsFilter() rpc.RPCFilter {
	return GetAccountFilter("UserPositions")
}
