package stakepool

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// StakeStatus is the lifecycle state of a validator's stake accounts
// within the pool, stored as a single byte.
type StakeStatus byte

const (
	StakeStatusActive StakeStatus = iota
	StakeStatusDeactivatingTransient
	StakeStatusReadyForRemoval
	StakeStatusDeactivatingValidator

	// The on-chain program assigns code 3 to both the "deactivating
	// validator" and "deactivating all" transitions; the wire value cannot
	// tell them apart. Both names stay addressable, String() reports the
	// first-declared one.
	StakeStatusDeactivatingAll = StakeStatusDeactivatingValidator
)

func (status StakeStatus) String() string {
	switch status {
	case StakeStatusActive:
		return "Active"
	case StakeStatusDeactivatingTransient:
		return "DeactivatingTransient"
	case StakeStatusReadyForRemoval:
		return "ReadyForRemoval"
	case StakeStatusDeactivatingValidator:
		return "DeactivatingValidator"
	default:
		return fmt.Sprintf("StakeStatus(%d)", byte(status))
	}
}

// ValidatorStakeInfoSize is the serialized width of one validator entry.
const ValidatorStakeInfoSize = 8 + 8 + 8 + 8 + 4 + 4 + 1 + solana.PublicKeyLength

// validatorListHeaderSize covers the account-type byte, max_validators and
// validators_len.
const validatorListHeaderSize = 1 + 4 + 4

// ValidatorStakeInfo is one validator's entry in the pool's validator list.
type ValidatorStakeInfo struct {
	// ActiveStakeLamports is the stake delegated to the validator, minus
	// any transient amount.
	ActiveStakeLamports uint64

	// TransientStakeLamports is stake in activation or deactivation.
	TransientStakeLamports uint64

	// LastUpdateEpoch is the epoch the lamport fields were last refreshed.
	LastUpdateEpoch uint64

	// TransientSeedSuffix seeds the validator's transient stake account
	// address.
	TransientSeedSuffix uint64

	// Unused was once meant to bound transient seed suffixes; the program
	// keeps the bytes reserved.
	Unused uint32

	// ValidatorSeedSuffix seeds the validator's stake account address, or
	// is zero for the default derivation.
	ValidatorSeedSuffix uint32

	Status StakeStatus

	// VoteAccountAddress is the validator's vote account.
	VoteAccountAddress solana.PublicKey
}

func (info *ValidatorStakeInfo) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	info.ActiveStakeLamports, err = readU64(decoder)
	if err != nil {
		return err
	}
	info.TransientStakeLamports, err = readU64(decoder)
	if err != nil {
		return err
	}
	info.LastUpdateEpoch, err = readU64(decoder)
	if err != nil {
		return err
	}
	info.TransientSeedSuffix, err = readU64(decoder)
	if err != nil {
		return err
	}
	info.Unused, err = readU32(decoder)
	if err != nil {
		return err
	}
	info.ValidatorSeedSuffix, err = readU32(decoder)
	if err != nil {
		return err
	}
	status, err := readU8(decoder)
	if err != nil {
		return err
	}
	info.Status = StakeStatus(status)
	info.VoteAccountAddress, err = readPubkey(decoder)
	return err
}

// ValidatorList is a decoded validator list account: the pool's declared
// capacity and its current entries in on-chain storage order.
type ValidatorList struct {
	MaxValidators uint32
	Validators    []ValidatorStakeInfo
}

// UnmarshalWithDecoder decodes the full validator list layout. The entry
// count comes off the wire and is bounded against the remaining buffer
// before the slice is allocated, so a corrupt count cannot drive an
// oversized allocation. The count is trusted relative to MaxValidators: the
// program never writes more entries than the capacity, and this layer does
// not second-guess it.
func (list *ValidatorList) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	accountType, err := readU8(decoder)
	if err != nil {
		return err
	}
	if AccountType(accountType) != AccountTypeValidatorList {
		return fmt.Errorf("%w: account type %d, want %d (validator list)",
			ErrMalformedLayout, accountType, AccountTypeValidatorList)
	}

	list.MaxValidators, err = readU32(decoder)
	if err != nil {
		return err
	}
	count, err := readU32(decoder)
	if err != nil {
		return err
	}
	if need := int(count) * ValidatorStakeInfoSize; decoder.Remaining() < need {
		return errTruncated(decoder.Position(), need, decoder.Remaining())
	}

	list.Validators = make([]ValidatorStakeInfo, count)
	for i := range list.Validators {
		if err = list.Validators[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return nil
}

// DecodeValidatorList decodes a validator list account from raw account
// data.
func DecodeValidatorList(data []byte) (*ValidatorList, error) {
	var list ValidatorList
	if err := list.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return &list, nil
}

// ExpectedValidatorListByteSize returns the account size needed to hold a
// validator list sized for maxValidators entries. It is a capacity
// computation for pre-sizing account storage and is independent of how many
// entries a list actually holds.
func ExpectedValidatorListByteSize(maxValidators uint32) int {
	return validatorListHeaderSize + int(maxValidators)*ValidatorStakeInfoSize
}
