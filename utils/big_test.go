package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint128(t *testing.T) {
	small := Uint128(BigUInt64(42))
	require.Equal(t, uint64(42), small.Lo)
	require.Equal(t, uint64(0), small.Hi)

	wide := new(big.Int).Lsh(big.NewInt(1), 64) // 2^64
	packed := Uint128(wide)
	require.Equal(t, uint64(0), packed.Lo)
	require.Equal(t, uint64(1), packed.Hi)
}

func TestUint128DoesNotMutateArgument(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(3), 64)
	want := new(big.Int).Set(x)

	Uint128(x)
	require.Zero(t, x.Cmp(want))
}

func TestUint128Panics(t *testing.T) {
	require.Panics(t, func() { Uint128(big.NewInt(-1)) })
	require.Panics(t, func() { Uint128(new(big.Int).Lsh(big.NewInt(1), 128)) })
}

func TestInt128(t *testing.T) {
	packed := Int128(big.NewInt(7))
	require.Equal(t, uint64(7), packed.Lo)

	x := new(big.Int).Lsh(big.NewInt(5), 64)
	want := new(big.Int).Set(x)
	Int128(x)
	require.Zero(t, x.Cmp(want))
}

func TestMulDivX(t *testing.T) {
	x := big.NewInt(10)
	require.Zero(t, MulX(x, big.NewInt(3), big.NewInt(2)).Cmp(big.NewInt(60)))
	require.Zero(t, DivX(big.NewInt(60), big.NewInt(3), big.NewInt(2)).Cmp(big.NewInt(10)))
	// arguments are never mutated
	require.Zero(t, x.Cmp(big.NewInt(10)))
}
