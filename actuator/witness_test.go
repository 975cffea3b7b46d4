package actuator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

func TestWitnessCreateValidateFailsBelowFee(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	store.accounts[owner] = state.Account{Balance: witnessCreateFee - 1}

	var payload contract.WitnessCreateContract
	payload.Owner = owner
	act, err := newWitnessCreate(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.ErrorContains(t, act.Validate(store, ctx), "insufficient balance for witness create fee")
}

func TestWitnessCreateExecuteDebitsFee(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	store.accounts[owner] = state.Account{Balance: witnessCreateFee + 500}

	var payload contract.WitnessCreateContract
	payload.Owner = owner
	act, err := newWitnessCreate(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, act.Validate(store, ctx))
	ctx.ContractFee = act.Fee(store)

	_, err = act.Execute(store, ctx)
	require.NoError(t, err)
	require.Equal(t, int64(500), store.accounts[owner].Balance)
}
