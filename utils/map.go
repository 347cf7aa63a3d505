package utils

import "github.com/gagliardetto/solana-go"

func MapKeys[K string | solana.PublicKey | int | int64 | uint16 | uint64, T any](m map[K]T) []K {
	var keys []K
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}

func MapValues[K string | solana.PublicKey | int | int64 | uint16 | uint64, T any](m map[K]T) []T {
	var values []T
	for _, value := range m {
		values = append(values, value)
	}
	return values
}
