package stakepool

import (
	"github.com/gagliardetto/solana-go"
)

// Authority seed constants of the stake pool program.
var (
	withdrawAuthoritySeed = []byte("withdraw")
	depositAuthoritySeed  = []byte("deposit")
)

// FindWithdrawAuthority derives the pool's withdraw authority address from
// the program id and the pool's own address. The returned bump matches the
// pool's StakeWithdrawBumpSeed for a correctly initialized pool.
func FindWithdrawAuthority(programID solana.PublicKey, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{pool[:], withdrawAuthoritySeed},
		programID,
	)
}

// FindDepositAuthority derives the pool's default stake deposit authority
// address. Pools may override it with a custom authority, in which case the
// decoded StakeDepositAuthority differs from this derivation.
func FindDepositAuthority(programID solana.PublicKey, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{pool[:], depositAuthoritySeed},
		programID,
	)
}
