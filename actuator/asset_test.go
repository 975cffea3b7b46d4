package actuator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

func TestAssetIssueValidateFailsBelowFee(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	store.accounts[owner] = state.Account{Balance: assetIssueFee - 1}

	var payload contract.AssetIssueContract
	payload.Owner = owner
	payload.Name = []byte("FOO")
	payload.TotalSupply = 1000
	act, err := newAssetIssue(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.ErrorContains(t, act.Validate(store, ctx), "insufficient balance for asset issue fee")
}

func TestAssetIssueExecuteDebitsFeeAndCreditsSupply(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	store.accounts[owner] = state.Account{Balance: assetIssueFee + 1000}

	var payload contract.AssetIssueContract
	payload.Owner = owner
	payload.Name = []byte("FOO")
	payload.TotalSupply = 1000
	act, err := newAssetIssue(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, act.Validate(store, ctx))
	ctx.ContractFee = act.Fee(store)

	result, err := act.Execute(store, ctx)
	require.NoError(t, err)
	require.Equal(t, "FOO", result.AssetIssueID)
	require.Equal(t, int64(1000), store.accounts[owner].Balance)
	require.Equal(t, int64(1000), store.accounts[owner].AssetBalances["FOO"])
}
