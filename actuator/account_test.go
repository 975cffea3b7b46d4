package actuator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

func buildPermissionUpdatePayload(owner, key address.Address) contract.AccountPermissionUpdateContract {
	var payload contract.AccountPermissionUpdateContract
	payload.Owner = owner
	payload.OwnerThreshold = 1
	payload.OwnerKeys = []contract.PermissionKeyArg{{Address: key, Weight: 1}}
	payload.ActivePermissions = []contract.ActivePermissionArg{{
		Threshold: 1,
		Keys:      []contract.PermissionKeyArg{{Address: key, Weight: 1}},
	}}
	return payload
}

func TestAccountPermissionUpdateValidateFailsBelowFee(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	key := testAddr(2)
	store.accounts[owner] = state.Account{Balance: accountPermissionUpdateFee - 1}

	act, err := newAccountPermissionUpdate(buildPermissionUpdatePayload(owner, key))
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.ErrorContains(t, act.Validate(store, ctx), "insufficient balance for permission update fee")
}

func TestAccountPermissionUpdateExecuteDebitsFeeAndUpdatesPermissions(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	key := testAddr(2)
	store.accounts[owner] = state.Account{Balance: accountPermissionUpdateFee + 500}

	act, err := newAccountPermissionUpdate(buildPermissionUpdatePayload(owner, key))
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, act.Validate(store, ctx))
	ctx.ContractFee = act.Fee(store)

	_, err = act.Execute(store, ctx)
	require.NoError(t, err)

	updated := store.accounts[owner]
	require.Equal(t, int64(500), updated.Balance)
	require.NotNil(t, updated.OwnerPermission)
	require.Equal(t, int64(1), updated.OwnerPermission.Threshold)
	require.Len(t, updated.ActivePermissions, 1)
	require.Equal(t, int64(1), updated.ActivePermissions[0].Threshold)
}
