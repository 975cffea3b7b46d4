// Package state defines the typed key-value lookup interface the
// execution core consumes; the store's own storage engine, snapshot and
// commit semantics are an external collaborator (spec.md §1) and are not
// implemented here.
package state

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
)

// ErrQuery ("db query error") marks a backing-store failure of
// Store.GetAccount. The dispatcher's signature check, the bandwidth
// processor and the actuators' Validate methods wrap it with the
// underlying store error via errorsmod.Wrap. It is registered rather than
// a bare sentinel so that errors.Is still matches it after that wrapping.
var ErrQuery = errorsmod.Register("state", 1, "db query error")

// PermissionKey is one signer entry in a Permission: an address and its
// voting weight.
type PermissionKey struct {
	Address address.Address
	Weight  int64
}

// Permission is one owner or active permission on an Account.
type Permission struct {
	Threshold  int64
	Keys       []PermissionKey
	Operations [32]byte // 256-bit bitmap, indexed by Kind.Tag().
}

// OperationAllowed reports whether this permission's bitmap has the bit
// for the given contract tag set, per spec.md §4.2 step 2.
func (p Permission) OperationAllowed(tag int32) bool {
	idx := tag / 8
	bit := uint(tag % 8)
	if idx < 0 || int(idx) >= len(p.Operations) {
		return false
	}
	return p.Operations[idx]&(1<<bit) != 0
}

// Account is the subset of on-chain account state the executor reads.
type Account struct {
	OwnerPermission    *Permission
	ActivePermissions  []Permission // index 0 = permission id 2, index 1 = id 3, ...
	Balance            int64
	FrozenEnergyLimit  int64
	AllowanceBandwidth int64
	AssetBalances      map[string]int64
}

// ActivePermission returns the active permission for permissionID (>= 2),
// mirroring the Rust reference's `active_permissions.get(id - 2)`.
func (a Account) ActivePermission(permissionID int32) (Permission, bool) {
	idx := int(permissionID) - 2
	if idx < 0 || idx >= len(a.ActivePermissions) {
		return Permission{}, false
	}
	return a.ActivePermissions[idx], true
}

// ChainParameter is the closed set of on-chain tunables the core reads.
type ChainParameter int

const (
	AllowMultisig ChainParameter = iota
	MultisigFee
)

// AccountKey addresses an Account record.
type AccountKey struct {
	Owner address.Address
}

// ParameterKey addresses a ChainParameter record.
type ParameterKey struct {
	Parameter ChainParameter
}

// Store is the typed key-value lookup interface consumed by this module.
// GetAccount returns (zero, false, nil) for a missing key, and a non-nil
// error (wrapping ErrQuery) on a backing-store failure. MustGetParameter
// panics if the key is missing, for keys the core assumes always exist
// (chain parameters).
type Store interface {
	GetAccount(AccountKey) (Account, bool, error)
	MustGetParameter(ParameterKey) int64

	// PutAccount and AddBalance are the mutation surface actuators and the
	// bandwidth processor use; the store itself owns persistence.
	PutAccount(AccountKey, Account) error
	AddBalance(address.Address, int64) error
}
