package bandwidth

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

func testOwner() address.Address {
	raw := make([]byte, address.Length)
	raw[0] = address.Prefix
	a, _ := address.FromBytes(raw)
	return a
}

func TestConsumeChargesAllowanceFirst(t *testing.T) {
	owner := testOwner()
	store := &memStore{accounts: map[address.Address]state.Account{
		owner: {AllowanceBandwidth: 1000, Balance: 0},
	}}
	var tc contract.TransferContract
	tc.Owner = owner

	proc, err := NewDefault(store, contract.Envelope{ParameterBytes: make([]byte, 10)}, tc)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, proc.Consume(ctx))

	require.Zero(t, ctx.BandwidthFee)
	require.Greater(t, ctx.BandwidthUsage, int64(0))
	require.Less(t, store.accounts[owner].AllowanceBandwidth, int64(1000))
}

func TestConsumeFallsBackToBalanceFee(t *testing.T) {
	owner := testOwner()
	store := &memStore{accounts: map[address.Address]state.Account{
		owner: {AllowanceBandwidth: 0, Balance: 1_000_000},
	}}
	var tc contract.TransferContract
	tc.Owner = owner

	proc, err := NewDefault(store, contract.Envelope{ParameterBytes: make([]byte, 10)}, tc)
	require.NoError(t, err)

	ctx := txcontext.New(txcontext.BlockHeader{}, [32]byte{}, 0)
	require.NoError(t, proc.Consume(ctx))

	require.Greater(t, ctx.BandwidthFee, int64(0))
	require.Less(t, store.accounts[owner].Balance, int64(1_000_000))
}
