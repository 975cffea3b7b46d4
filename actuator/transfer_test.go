package actuator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

type memStore struct {
	accounts map[address.Address]state.Account
}

func newMemStore() *memStore {
	return &memStore{accounts: map[address.Address]state.Account{}}
}

func (s *memStore) GetAccount(key state.AccountKey) (state.Account, bool, error) {
	acct, ok := s.accounts[key.Owner]
	return acct, ok, nil
}

func (s *memStore) MustGetParameter(state.ParameterKey) int64 { return 0 }

func (s *memStore) PutAccount(key state.AccountKey, acct state.Account) error {
	s.accounts[key.Owner] = acct
	return nil
}

func (s *memStore) AddBalance(addr address.Address, amount int64) error {
	acct := s.accounts[addr]
	acct.Balance += amount
	s.accounts[addr] = acct
	return nil
}

func testAddr(b byte) address.Address {
	raw := make([]byte, address.Length)
	raw[0] = address.Prefix
	raw[address.Length-1] = b
	a, _ := address.FromBytes(raw)
	return a
}

func buildTransferPayload(owner, to address.Address, amount int64) contract.TransferContract {
	var tc contract.TransferContract
	tc.Owner = owner
	tc.To = to
	tc.Amount = amount
	return tc
}

func TestTransferValidateInsufficientBalance(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	to := testAddr(2)
	store.accounts[owner] = state.Account{Balance: 10}

	payload := buildTransferPayload(owner, to, 100)
	act, err := newTransfer(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	err = act.Validate(store, ctx)
	require.ErrorContains(t, err, "balance is not sufficient")
}

func TestTransferExecuteMovesBalance(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	to := testAddr(2)
	store.accounts[owner] = state.Account{Balance: 1000}
	store.accounts[to] = state.Account{Balance: 0}

	payload := buildTransferPayload(owner, to, 100)
	act, err := newTransfer(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, act.Validate(store, ctx))
	_, err = act.Execute(store, ctx)
	require.NoError(t, err)

	require.Equal(t, int64(900), store.accounts[owner].Balance)
	require.Equal(t, int64(100), store.accounts[to].Balance)
}

func TestTransferValidateFlagsNewAccountCreation(t *testing.T) {
	store := newMemStore()
	owner := testAddr(1)
	to := testAddr(2)
	store.accounts[owner] = state.Account{Balance: 1000}

	payload := buildTransferPayload(owner, to, 100)
	act, err := newTransfer(payload)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, act.Validate(store, ctx))
	require.True(t, ctx.NewAccountCreated)
}
