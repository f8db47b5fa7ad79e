// Package stake holds the pieces of the stake program's account state that
// the stake pool program embeds in its own accounts.
package stake

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// LockupSize is the serialized width of a Lockup.
const LockupSize = 8 + 8 + solana.PublicKeyLength

// Lockup describes stake withdrawal restrictions: withdrawals are gated
// until the given unix timestamp and epoch have both passed, unless the
// custodian signs.
type Lockup struct {
	UnixTimestamp int64
	Epoch         uint64
	Custodian     solana.PublicKey
}

func (lockup *Lockup) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	lockup.UnixTimestamp, err = decoder.ReadInt64(bin.LE)
	if err != nil {
		return err
	}

	lockup.Epoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(lockup.Custodian[:], pk)

	return nil
}
