package stakepool

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func TestFindAuthorities(t *testing.T) {
	programID := solana.MustPublicKeyFromBase58("SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy")
	pool := testPubkey(0x55)

	withdraw, withdrawBump, err := FindWithdrawAuthority(programID, pool)
	assert.NoError(t, err)
	deposit, _, err := FindDepositAuthority(programID, pool)
	assert.NoError(t, err)

	// Distinct seeds, distinct authorities.
	assert.NotEqual(t, withdraw, deposit)

	// Derivation is deterministic.
	withdrawAgain, bumpAgain, err := FindWithdrawAuthority(programID, pool)
	assert.NoError(t, err)
	assert.Equal(t, withdraw, withdrawAgain)
	assert.Equal(t, withdrawBump, bumpAgain)
}
