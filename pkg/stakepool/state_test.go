package stakepool

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"go.stakescope.io/stakescope/pkg/stake"
)

func testPubkey(fill byte) solana.PublicKey {
	var pubkey solana.PublicKey
	for i := range pubkey {
		pubkey[i] = fill
	}
	return pubkey
}

func writePubkey(buf *bytes.Buffer, pubkey solana.PublicKey) {
	buf.Write(pubkey[:])
}

func writeOptionalFee(buf *bytes.Buffer, fee *Fee, junk byte) {
	if fee == nil {
		buf.WriteByte(0)
		buf.Write(bytes.Repeat([]byte{junk}, feeSize))
		return
	}
	buf.WriteByte(1)
	writeFee(buf, *fee)
}

func writeOptionalPubkey(buf *bytes.Buffer, pubkey *solana.PublicKey, junk byte) {
	if pubkey == nil {
		buf.WriteByte(0)
		buf.Write(bytes.Repeat([]byte{junk}, solana.PublicKeyLength))
		return
	}
	buf.WriteByte(1)
	writePubkey(buf, *pubkey)
}

// encodeStakePoolFixture lays out a stake pool account exactly as the
// program stores it. Absent optional fields still occupy their reserved
// spans, filled with junk so tests catch any decoder that interprets them.
func encodeStakePoolFixture(pool *StakePool, junk byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(AccountTypeStakePool))
	writePubkey(&buf, pool.Manager)
	writePubkey(&buf, pool.Staker)
	writePubkey(&buf, pool.StakeDepositAuthority)
	buf.WriteByte(pool.StakeWithdrawBumpSeed)
	writePubkey(&buf, pool.ValidatorList)
	writePubkey(&buf, pool.ReserveStake)
	writePubkey(&buf, pool.PoolMint)
	writePubkey(&buf, pool.ManagerFeeAccount)
	writePubkey(&buf, pool.TokenProgramID)
	writeU64(&buf, pool.TotalLamports)
	writeU64(&buf, pool.PoolTokenSupply)
	writeU64(&buf, pool.LastUpdateEpoch)
	writeU64(&buf, uint64(pool.Lockup.UnixTimestamp))
	writeU64(&buf, pool.Lockup.Epoch)
	writePubkey(&buf, pool.Lockup.Custodian)
	writeFee(&buf, pool.EpochFee)
	writeOptionalFee(&buf, pool.NextEpochFee, junk)
	writeOptionalPubkey(&buf, pool.PreferredDepositValidator, junk)
	writeOptionalPubkey(&buf, pool.PreferredWithdrawValidator, junk)
	writeFee(&buf, pool.StakeDepositFee)
	writeFee(&buf, pool.StakeWithdrawalFee)
	writeOptionalFee(&buf, pool.NextStakeWithdrawalFee, junk)
	buf.WriteByte(pool.StakeReferralFee)
	writeOptionalPubkey(&buf, pool.SolDepositAuthority, junk)
	writeFee(&buf, pool.SolDepositFee)
	buf.WriteByte(pool.SolReferralFee)
	writeOptionalPubkey(&buf, pool.SolWithdrawAuthority, junk)
	writeFee(&buf, pool.SolWithdrawalFee)
	writeOptionalFee(&buf, pool.NextSolWithdrawalFee, junk)
	writeU64(&buf, pool.LastEpochPoolTokenSupply)
	writeU64(&buf, pool.LastEpochTotalLamports)
	return buf.Bytes()
}

func feePtr(numerator, denominator uint64) *Fee {
	return &Fee{Numerator: numerator, Denominator: denominator}
}

func pubkeyPtr(fill byte) *solana.PublicKey {
	pubkey := testPubkey(fill)
	return &pubkey
}

func fullyPopulatedPool() *StakePool {
	return &StakePool{
		Manager:                    testPubkey(0x01),
		Staker:                     testPubkey(0x02),
		StakeDepositAuthority:      testPubkey(0x03),
		StakeWithdrawBumpSeed:      254,
		ValidatorList:              testPubkey(0x04),
		ReserveStake:               testPubkey(0x05),
		PoolMint:                   testPubkey(0x06),
		ManagerFeeAccount:          testPubkey(0x07),
		TokenProgramID:             testPubkey(0x08),
		TotalLamports:              123_456_789_000,
		PoolTokenSupply:            120_000_000_000,
		LastUpdateEpoch:            512,
		Lockup: stake.Lockup{
			UnixTimestamp: -1,
			Epoch:         9,
			Custodian:     testPubkey(0x09),
		},
		EpochFee:                   Fee{Numerator: 3, Denominator: 7},
		NextEpochFee:               feePtr(4, 100),
		PreferredDepositValidator:  pubkeyPtr(0x0A),
		PreferredWithdrawValidator: pubkeyPtr(0x0B),
		StakeDepositFee:            Fee{Numerator: 1, Denominator: 1000},
		StakeWithdrawalFee:         Fee{Numerator: 2, Denominator: 1000},
		NextStakeWithdrawalFee:     feePtr(3, 1000),
		StakeReferralFee:           50,
		SolDepositAuthority:        pubkeyPtr(0x0C),
		SolDepositFee:              Fee{Numerator: 5, Denominator: 10000},
		SolReferralFee:             25,
		SolWithdrawAuthority:       pubkeyPtr(0x0D),
		SolWithdrawalFee:           Fee{Numerator: 6, Denominator: 10000},
		NextSolWithdrawalFee:       feePtr(7, 10000),
		LastEpochPoolTokenSupply:   119_000_000_000,
		LastEpochTotalLamports:     122_000_000_000,
	}
}

func TestDecodeStakePool_AllOptionalsPresent(t *testing.T) {
	want := fullyPopulatedPool()
	data := encodeStakePoolFixture(want, 0x00)

	// The full layout is 611 bytes regardless of which optionals are
	// present, since absent fields keep their reserved spans.
	assert.Equal(t, 611, len(data))

	pool, err := DecodeStakePool(data)
	assert.NoError(t, err)
	assert.Equal(t, want, pool)
}

func TestDecodeStakePool_AllOptionalsAbsent(t *testing.T) {
	want := fullyPopulatedPool()
	want.NextEpochFee = nil
	want.PreferredDepositValidator = nil
	want.PreferredWithdrawValidator = nil
	want.NextStakeWithdrawalFee = nil
	want.SolDepositAuthority = nil
	want.SolWithdrawAuthority = nil
	want.NextSolWithdrawalFee = nil

	// Non-zero junk in every reserved span: the decoder must skip over it
	// and the trailing counters must still come out right.
	data := encodeStakePoolFixture(want, 0xCC)
	assert.Equal(t, 611, len(data))

	pool, err := DecodeStakePool(data)
	assert.NoError(t, err)
	assert.Equal(t, want, pool)
	assert.Equal(t, uint64(119_000_000_000), pool.LastEpochPoolTokenSupply)
	assert.Equal(t, uint64(122_000_000_000), pool.LastEpochTotalLamports)
}

func TestDecodeStakePool_MixedOptionals(t *testing.T) {
	want := fullyPopulatedPool()
	want.NextEpochFee = nil
	want.PreferredWithdrawValidator = nil
	want.SolDepositAuthority = nil

	pool, err := DecodeStakePool(encodeStakePoolFixture(want, 0xEE))
	assert.NoError(t, err)
	assert.Equal(t, want, pool)
}

func TestDecodeStakePool_TruncatedAtEveryOffset(t *testing.T) {
	data := encodeStakePoolFixture(fullyPopulatedPool(), 0x00)
	for n := 0; n < len(data); n++ {
		_, err := DecodeStakePool(data[:n])
		assert.ErrorIs(t, err, ErrTruncatedInput, "prefix of %d bytes", n)
	}
}

func TestDecodeStakePool_WrongAccountType(t *testing.T) {
	data := encodeStakePoolFixture(fullyPopulatedPool(), 0x00)

	data[0] = byte(AccountTypeValidatorList)
	_, err := DecodeStakePool(data)
	assert.ErrorIs(t, err, ErrMalformedLayout)

	data[0] = byte(AccountTypeUninitialized)
	_, err = DecodeStakePool(data)
	assert.ErrorIs(t, err, ErrMalformedLayout)
}

func TestDecodeStakePool_Deterministic(t *testing.T) {
	data := encodeStakePoolFixture(fullyPopulatedPool(), 0x00)

	first, err := DecodeStakePool(data)
	assert.NoError(t, err)
	second, err := DecodeStakePool(data)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
