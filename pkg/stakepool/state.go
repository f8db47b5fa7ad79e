// Package stakepool decodes the on-chain account layouts of the SPL stake
// pool program. It is a read-only layer: given raw account data, it
// reconstructs typed snapshots of a pool's state record and of its
// validator list. Nothing here validates business semantics, and there is
// no serialize direction.
package stakepool

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"go.stakescope.io/stakescope/pkg/stake"
)

// AccountType is the discriminant byte leading every stake pool program
// account, distinguishing the two record kinds sharing the program's
// account space.
type AccountType byte

const (
	AccountTypeUninitialized AccountType = iota
	AccountTypeStakePool
	AccountTypeValidatorList
)

// feeSize is the serialized width of a Fee.
const feeSize = 16

// Fee is a pool fee assessed as numerator/denominator. The denominator may
// be zero here; interpreting the ratio is the caller's concern.
type Fee struct {
	Numerator   uint64
	Denominator uint64
}

// UnmarshalWithDecoder reads a Fee off the wire. The on-chain struct
// declares denominator before numerator, the reverse of this type's field
// order; the wire order is the contract and must not be "corrected".
func (fee *Fee) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	fee.Denominator, err = readU64(decoder)
	if err != nil {
		return err
	}
	fee.Numerator, err = readU64(decoder)
	return err
}

func readFee(decoder *bin.Decoder) (Fee, error) {
	var fee Fee
	err := fee.UnmarshalWithDecoder(decoder)
	return fee, err
}

// StakePool is a decoded stake pool state account. It is a snapshot:
// constructed once from account data and never mutated. Optional fields are
// nil when their presence tag marked them absent on the wire.
type StakePool struct {
	Manager                    solana.PublicKey
	Staker                     solana.PublicKey
	StakeDepositAuthority      solana.PublicKey
	StakeWithdrawBumpSeed      byte
	ValidatorList              solana.PublicKey
	ReserveStake               solana.PublicKey
	PoolMint                   solana.PublicKey
	ManagerFeeAccount          solana.PublicKey
	TokenProgramID             solana.PublicKey
	TotalLamports              uint64
	PoolTokenSupply            uint64
	LastUpdateEpoch            uint64
	Lockup                     stake.Lockup
	EpochFee                   Fee
	NextEpochFee               *Fee
	PreferredDepositValidator  *solana.PublicKey
	PreferredWithdrawValidator *solana.PublicKey
	StakeDepositFee            Fee
	StakeWithdrawalFee         Fee
	NextStakeWithdrawalFee     *Fee
	StakeReferralFee           byte
	SolDepositAuthority        *solana.PublicKey
	SolDepositFee              Fee
	SolReferralFee             byte
	SolWithdrawAuthority       *solana.PublicKey
	SolWithdrawalFee           Fee
	NextSolWithdrawalFee       *Fee
	LastEpochPoolTokenSupply   uint64
	LastEpochTotalLamports     uint64
}

// UnmarshalWithDecoder decodes the full stake pool layout, account-type
// byte included. Fields are read in strict wire order; every optional
// field's reserved span is consumed whether or not the field is present.
func (pool *StakePool) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	accountType, err := readU8(decoder)
	if err != nil {
		return err
	}
	if AccountType(accountType) != AccountTypeStakePool {
		return fmt.Errorf("%w: account type %d, want %d (stake pool)",
			ErrMalformedLayout, accountType, AccountTypeStakePool)
	}

	pool.Manager, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.Staker, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.StakeDepositAuthority, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.StakeWithdrawBumpSeed, err = readU8(decoder)
	if err != nil {
		return err
	}
	pool.ValidatorList, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.ReserveStake, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.PoolMint, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.ManagerFeeAccount, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.TokenProgramID, err = readPubkey(decoder)
	if err != nil {
		return err
	}
	pool.TotalLamports, err = readU64(decoder)
	if err != nil {
		return err
	}
	pool.PoolTokenSupply, err = readU64(decoder)
	if err != nil {
		return err
	}
	pool.LastUpdateEpoch, err = readU64(decoder)
	if err != nil {
		return err
	}

	if decoder.Remaining() < stake.LockupSize {
		return errTruncated(decoder.Position(), stake.LockupSize, decoder.Remaining())
	}
	if err = pool.Lockup.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}

	pool.EpochFee, err = readFee(decoder)
	if err != nil {
		return err
	}
	pool.NextEpochFee, err = readOptional(decoder, feeSize, readFee)
	if err != nil {
		return err
	}
	pool.PreferredDepositValidator, err = readOptional(decoder, solana.PublicKeyLength, readPubkey)
	if err != nil {
		return err
	}
	pool.PreferredWithdrawValidator, err = readOptional(decoder, solana.PublicKeyLength, readPubkey)
	if err != nil {
		return err
	}
	pool.StakeDepositFee, err = readFee(decoder)
	if err != nil {
		return err
	}
	pool.StakeWithdrawalFee, err = readFee(decoder)
	if err != nil {
		return err
	}
	pool.NextStakeWithdrawalFee, err = readOptional(decoder, feeSize, readFee)
	if err != nil {
		return err
	}
	pool.StakeReferralFee, err = readU8(decoder)
	if err != nil {
		return err
	}
	pool.SolDepositAuthority, err = readOptional(decoder, solana.PublicKeyLength, readPubkey)
	if err != nil {
		return err
	}
	pool.SolDepositFee, err = readFee(decoder)
	if err != nil {
		return err
	}
	pool.SolReferralFee, err = readU8(decoder)
	if err != nil {
		return err
	}
	pool.SolWithdrawAuthority, err = readOptional(decoder, solana.PublicKeyLength, readPubkey)
	if err != nil {
		return err
	}
	pool.SolWithdrawalFee, err = readFee(decoder)
	if err != nil {
		return err
	}
	pool.NextSolWithdrawalFee, err = readOptional(decoder, feeSize, readFee)
	if err != nil {
		return err
	}
	pool.LastEpochPoolTokenSupply, err = readU64(decoder)
	if err != nil {
		return err
	}
	pool.LastEpochTotalLamports, err = readU64(decoder)
	return err
}

// DecodeStakePool decodes a stake pool state account from raw account data.
func DecodeStakePool(data []byte) (*StakePool, error) {
	var pool StakePool
	if err := pool.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &pool, nil
}
