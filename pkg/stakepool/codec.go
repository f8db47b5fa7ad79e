package stakepool

import (
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// presenceTag is the only tag value the stake pool program writes for a
// populated optional field. Anything else reads as absent.
const presenceTag = 1

func readU8(decoder *bin.Decoder) (byte, error) {
	if decoder.Remaining() < 1 {
		return 0, errTruncated(decoder.Position(), 1, decoder.Remaining())
	}
	return decoder.ReadByte()
}

func readU32(decoder *bin.Decoder) (uint32, error) {
	if decoder.Remaining() < 4 {
		return 0, errTruncated(decoder.Position(), 4, decoder.Remaining())
	}
	return decoder.ReadUint32(bin.LE)
}

func readU64(decoder *bin.Decoder) (uint64, error) {
	if decoder.Remaining() < 8 {
		return 0, errTruncated(decoder.Position(), 8, decoder.Remaining())
	}
	return decoder.ReadUint64(bin.LE)
}

func readPubkey(decoder *bin.Decoder) (solana.PublicKey, error) {
	var pubkey solana.PublicKey
	if decoder.Remaining() < solana.PublicKeyLength {
		return pubkey, errTruncated(decoder.Position(), solana.PublicKeyLength, decoder.Remaining())
	}
	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return pubkey, err
	}
	copy(pubkey[:], pk)
	return pubkey, nil
}

// readOptional decodes the stake pool program's optional-field convention:
// a one-byte presence tag followed by a reserved payload span of fixed
// width. The span sits on the wire whether or not the value is present, so
// the cursor advances 1+payloadWidth in both branches. An absent field's
// payload bytes are undefined and discarded.
func readOptional[T any](decoder *bin.Decoder, payloadWidth int, decode func(*bin.Decoder) (T, error)) (*T, error) {
	tag, err := readU8(decoder)
	if err != nil {
		return nil, err
	}
	if decoder.Remaining() < payloadWidth {
		return nil, errTruncated(decoder.Position(), payloadWidth, decoder.Remaining())
	}
	if tag != presenceTag {
		if _, err = decoder.ReadBytes(payloadWidth); err != nil {
			return nil, err
		}
		return nil, nil
	}
	val, err := decode(decoder)
	if err != nil {
		return nil, err
	}
	return &val, nil
}
