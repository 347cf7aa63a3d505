package utils

import (
	"encoding/binary"
	"math/big"

	bin "github.com/gagliardetto/binary"
)

func BigInt64(x int64) *big.Int {
	return big.NewInt(x)
}

func BigUInt64(x uint64) *big.Int {
	return big.NewInt(0).SetUint64(x)
}

func MulX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Mul(z, v)
	}
	return z
}

func DivX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Div(z, v)
	}
	return z
}

func AbsX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Abs(x)
}

// Uint128 packs a non-negative big.Int into the little-endian 128-bit wire
// type without touching the argument.
func Uint128(x *big.Int) (u bin.Uint128) {
	if x.Sign() < 0 {
		panic("value cannot be negative")
	} else if x.BitLen() > 128 {
		panic("value overflows Uint128")
	}
	z := new(big.Int).Set(x)
	u.Lo = z.Uint64()
	u.Hi = z.Rsh(z, 64).Uint64()
	u.Endianness = binary.LittleEndian
	return u
}

func Int128(x *big.Int) (u bin.Int128) {
	if x.BitLen() > 128 {
		panic("value overflows Int128")
	}
	z := new(big.Int).Set(x)
	u.Lo = z.Uint64()
	u.Hi = z.Rsh(z, 64).Uint64()
	u.Endianness = binary.LittleEndian
	return u
}
