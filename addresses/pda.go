package addresses

import (
	"github.com/gagliardetto/solana-go"
)

// Seeds must match the on-chain program byte for byte; a wrong seed derives an
// address the program rejects at execution time.

func GetClearingHouseStatePublicKeyAndNonce(
	programId solana.PublicKey,
) (solana.PublicKey, uint8) {
	address, bumpSeed, err := solana.FindProgramAddress(
		[][]byte{[]byte("clearing_house")},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}, 0
	}
	return address, bumpSeed
}

func GetClearingHouseStatePublicKey(
	programId solana.PublicKey,
) solana.PublicKey {
	address, _ := GetClearingHouseStatePublicKeyAndNonce(programId)
	return address
}

func GetUserAccountPublicKeyAndNonce(
	programId solana.PublicKey,
	authority solana.PublicKey,
) (solana.PublicKey, uint8) {
	address, bumpSeed, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("user"),
			authority.Bytes(),
		},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}, 0
	}
	return address, bumpSeed
}

func GetUserAccountPublicKey(
	programId solana.PublicKey,
	authority solana.PublicKey,
) solana.PublicKey {
	address, _ := GetUserAccountPublicKeyAndNonce(programId, authority)
	return address
}

func GetCollateralVaultAuthorityPublicKey(
	programId solana.PublicKey,
	collateralVault solana.PublicKey,
) solana.PublicKey {
	address, _, err := solana.FindProgramAddress(
		[][]byte{collateralVault.Bytes()},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}
	}
	return address
}

func GetInsuranceVaultAuthorityPublicKey(
	programId solana.PublicKey,
	insuranceVault solana.PublicKey,
) solana.PublicKey {
	address, _, err := solana.FindProgramAddress(
		[][]byte{insuranceVault.Bytes()},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}
	}
	return address
}
