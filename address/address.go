// Package address implements the fixed-width account identifier used
// throughout the execution core, and its base58check textual form.
package address

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"github.com/mr-tron/base58"
)

// Length is the size in bytes of a TRON account address, including the
// 0x41 network prefix byte.
const Length = 21

// Prefix is the mainnet address prefix byte.
const Prefix byte = 0x41

// ErrInvalidLength is returned when raw bytes cannot form an Address.
var ErrInvalidLength = errors.New("invalid address length")

// Address is a fixed-width binary account identifier.
type Address [Length]byte

// Zero is the all-zero address, used as a sentinel for "no owner"
// (ShieldedTransfer payloads carry an empty owner_address).
var Zero Address

// FromBytes builds an Address from a raw byte slice. An empty slice yields
// Zero, matching ShieldedTransfer's empty owner_address.
func FromBytes(raw []byte) (Address, error) {
	var a Address
	if len(raw) == 0 {
		return a, nil
	}
	if len(raw) != Length {
		return a, ErrInvalidLength
	}
	copy(a[:], raw)
	return a, nil
}

// Bytes returns the raw 21-byte representation.
func (a Address) Bytes() []byte {
	out := make([]byte, Length)
	copy(out, a[:])
	return out
}

// IsZero reports whether a is the empty/zero address.
func (a Address) IsZero() bool {
	return a == Zero
}

// Equal reports byte-wise equality, used by the permission validator's
// linear key search.
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

// String renders the canonical base58check textual form used only for
// diagnostics — it is never part of the consensus contract.
func (a Address) String() string {
	if a.IsZero() {
		return "<empty>"
	}
	sum := checksum(a[:])
	payload := append(a.Bytes(), sum[:4]...)
	return base58.Encode(payload)
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:]
}
