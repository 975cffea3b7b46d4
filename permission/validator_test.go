package permission

import (
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
)

func addrFrom(b byte) address.Address {
	raw := make([]byte, address.Length)
	raw[0] = address.Prefix
	raw[address.Length-1] = b
	a, err := address.FromBytes(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func TestValidateSignaturesDuplicate(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	err := v.ValidateSignatures(owner, state.Account{}, 0, []address.Address{owner, owner}, int32(contract.Transfer), false)
	require.ErrorIs(t, err, ErrDuplicateSignature)
}

func TestValidateSignaturesDefaultOwnerFallback(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	err := v.ValidateSignatures(owner, state.Account{}, 0, []address.Address{owner}, int32(contract.Transfer), false)
	require.NoError(t, err)
}

func TestValidateSignaturesDefaultActiveFallbackExcludesPermissionUpdate(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	err := v.ValidateSignatures(owner, state.Account{}, 2, []address.Address{owner}, int32(contract.AccountPermissionUpdate), false)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateSignaturesDefaultActiveFallback(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	err := v.ValidateSignatures(owner, state.Account{}, 2, []address.Address{owner}, int32(contract.Transfer), false)
	require.NoError(t, err)
}

func TestValidateSignaturesWeightThreshold(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	signerA := addrFrom(1)
	signerC := addrFrom(3)
	acct := state.Account{
		OwnerPermission: &state.Permission{
			Threshold: 2,
			Keys: []state.PermissionKey{
				{Address: signerA, Weight: 1},
				{Address: signerC, Weight: 1},
			},
		},
	}

	err := v.ValidateSignatures(owner, acct, 0, []address.Address{signerA, signerC}, int32(contract.Transfer), true)
	require.NoError(t, err)

	// P3: order of signers must not affect the outcome.
	err = v.ValidateSignatures(owner, acct, 0, []address.Address{signerC, signerA}, int32(contract.Transfer), true)
	require.NoError(t, err)
}

func TestValidateSignaturesInsufficientWeight(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	signerA := addrFrom(1)
	acct := state.Account{
		OwnerPermission: &state.Permission{
			Threshold: 2,
			Keys:      []state.PermissionKey{{Address: signerA, Weight: 1}},
		},
	}
	err := v.ValidateSignatures(owner, acct, 0, []address.Address{signerA}, int32(contract.Transfer), true)
	require.ErrorIs(t, err, ErrInsufficientWeight)
}

func TestValidateSignaturesSignerNotInKeysOwnerWording(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	signerA := addrFrom(1)
	stranger := addrFrom(9)
	acct := state.Account{
		OwnerPermission: &state.Permission{
			Threshold: 1,
			Keys:      []state.PermissionKey{{Address: signerA, Weight: 1}},
		},
	}
	err := v.ValidateSignatures(owner, acct, 0, []address.Address{stranger}, int32(contract.Transfer), true)
	require.ErrorContains(t, err, "signature address")
	require.ErrorContains(t, err, "is not in permission keys")
}

func TestValidateSignaturesOperationBitDisabled(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	signerA := addrFrom(1)
	acct := state.Account{
		ActivePermissions: []state.Permission{
			{
				Threshold: 1,
				Keys:      []state.PermissionKey{{Address: signerA, Weight: 1}},
				// all-zero Operations: no bit set.
			},
		},
	}
	err := v.ValidateSignatures(owner, acct, 2, []address.Address{signerA}, int32(contract.Transfer), true)
	require.ErrorContains(t, err, "operation bit of")
	require.ErrorContains(t, err, "disabled")
}

func TestValidateSignaturesActiveWordingOmitsPrefix(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	signerA := addrFrom(1)
	stranger := addrFrom(9)
	ops := [32]byte{}
	tag := int32(contract.Transfer)
	ops[tag/8] |= 1 << uint(tag%8)
	acct := state.Account{
		ActivePermissions: []state.Permission{
			{
				Threshold:  1,
				Keys:       []state.PermissionKey{{Address: signerA, Weight: 1}},
				Operations: ops,
			},
		},
	}
	err := v.ValidateSignatures(owner, acct, 2, []address.Address{stranger}, tag, true)
	require.ErrorContains(t, err, "is not in permission keys")
	require.NotContains(t, err.Error(), "signature address")
}

func TestValidateSignaturesPermissionIdOneAlwaysInvalid(t *testing.T) {
	v := New(log.NewNopLogger())
	owner := addrFrom(1)
	err := v.ValidateSignatures(owner, state.Account{}, 1, []address.Address{owner}, int32(contract.Transfer), false)
	require.ErrorIs(t, err, ErrInvalidSignature)
}
