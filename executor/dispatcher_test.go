package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/actuator"
	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/bandwidth"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/permission"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// testPayload is a minimal contract.Payload used to drive the dispatcher
// against kinds without needing their real typed payload structs.
type testPayload struct {
	owner address.Address
	kind  contract.Kind
}

func (p testPayload) OwnerAddress() address.Address { return p.owner }
func (p testPayload) Kind() contract.Kind            { return p.kind }

// spyActuator records the relative order in which Validate/Execute are
// invoked, for P2 stage-ordering assertions.
type spyActuator struct {
	payload testPayload
	log     *[]string
	result  contract.TransactionResult
}

func (a *spyActuator) OwnerAddress() address.Address { return a.payload.owner }
func (a *spyActuator) Kind() contract.Kind            { return a.payload.kind }
func (a *spyActuator) Fee(state.Store) int64          { return 0 }
func (a *spyActuator) Validate(state.Store, *txcontext.ExecutionContext) error {
	*a.log = append(*a.log, "validate")
	return nil
}
func (a *spyActuator) Execute(state.Store, *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	*a.log = append(*a.log, "execute")
	return a.result, nil
}

type spyProcessor struct {
	log *[]string
}

func (p *spyProcessor) Consume(*txcontext.ExecutionContext) error {
	*p.log = append(*p.log, "bandwidth")
	return nil
}

type spyDecoder struct {
	payload contract.Payload
}

func (d spyDecoder) Decode(contract.Kind, []byte) (contract.Payload, error) {
	return d.payload, nil
}

// fakeStore is a minimal, in-memory state.Store: the owner account always
// exists with no owner_permission, and AllowMultisig is disabled so
// signature validation takes the default-owner fallback for a single
// signer equal to owner.
type fakeStore struct {
	accounts map[address.Address]state.Account
}

func newFakeStore(owner address.Address) *fakeStore {
	return &fakeStore{accounts: map[address.Address]state.Account{
		owner: {Balance: 1_000_000_000},
	}}
}

func (s *fakeStore) GetAccount(key state.AccountKey) (state.Account, bool, error) {
	acct, ok := s.accounts[key.Owner]
	return acct, ok, nil
}

func (s *fakeStore) MustGetParameter(state.ParameterKey) int64 { return 0 }

func (s *fakeStore) PutAccount(key state.AccountKey, acct state.Account) error {
	s.accounts[key.Owner] = acct
	return nil
}

func (s *fakeStore) AddBalance(addr address.Address, amount int64) error {
	acct := s.accounts[addr]
	acct.Balance += amount
	s.accounts[addr] = acct
	return nil
}

func buildDispatcher(t *testing.T, kind contract.Kind, owner address.Address, log *[]string, result contract.TransactionResult) (*Dispatcher, *fakeStore) {
	t.Helper()
	store := newFakeStore(owner)
	payload := testPayload{owner: owner, kind: kind}

	registry := actuator.NewRegistry()
	registry.Register(kind, func(contract.Payload) (actuator.Actuator, error) {
		return &spyActuator{payload: payload, log: log, result: result}, nil
	})

	bandwidthFactory := func(state.Store, contract.Envelope, contract.Payload) (bandwidth.Processor, error) {
		return &spyProcessor{log: log}, nil
	}

	d := New(store, spyDecoder{payload: payload}, registry, permission.New(nil), bandwidthFactory, nil)
	return d, store
}

func TestStageOrderA(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	d, _ := buildDispatcher(t, contract.Transfer, owner, &log, contract.TransactionResult{})

	envelope := contract.Envelope{Kind: contract.Transfer}
	_, err := d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"validate", "bandwidth", "execute"}, log)
}

func TestStageOrderB(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	d, _ := buildDispatcher(t, contract.AccountCreate, owner, &log, contract.TransactionResult{})

	envelope := contract.Envelope{Kind: contract.AccountCreate}
	_, err := d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"validate", "execute", "bandwidth"}, log)
}

func TestStageOrderC(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	d, _ := buildDispatcher(t, contract.CreateSmartContract, owner, &log, contract.TransactionResult{})

	envelope := contract.Envelope{Kind: contract.CreateSmartContract}
	_, err := d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"bandwidth", "validate", "execute"}, log)
}

func TestShieldedTransferSkipsSignatureAndBandwidth(t *testing.T) {
	var log []string
	owner := address.Zero
	d, _ := buildDispatcher(t, contract.ShieldedTransfer, owner, &log, contract.TransactionResult{})

	envelope := contract.Envelope{Kind: contract.ShieldedTransfer}
	_, err := d.Execute(envelope, nil, txcontext.BlockHeader{Number: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"validate", "execute"}, log)
}

func TestReplayFatalForVMKindMismatch(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	produced := contract.TransactionResult{ContractStatus: contract.StatusSuccess}
	d, _ := buildDispatcher(t, contract.CreateSmartContract, owner, &log, produced)

	envelope := contract.Envelope{
		Kind: contract.CreateSmartContract,
		Recorded: contract.RecordedResult{
			Present: true,
			Result:  contract.TransactionResult{ContractStatus: contract.StatusRevert},
		},
	}
	_, err := d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	require.ErrorIs(t, err, ErrReplayMismatch)
}

func TestReplayNonFatalForNonVMKindMismatch(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	produced := contract.TransactionResult{ContractStatus: contract.StatusSuccess}
	d, _ := buildDispatcher(t, contract.Transfer, owner, &log, produced)

	envelope := contract.Envelope{
		Kind: contract.Transfer,
		Recorded: contract.RecordedResult{
			Present: true,
			Result:  contract.TransactionResult{ContractStatus: contract.StatusRevert},
		},
	}
	_, err := d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	require.NoError(t, err)
}

func TestObsoleteKindPanics(t *testing.T) {
	owner := addrFromByte(1)
	var log []string
	d, _ := buildDispatcher(t, contract.VoteAssetObsolete, owner, &log, contract.TransactionResult{})

	envelope := contract.Envelope{Kind: contract.VoteAssetObsolete}
	require.Panics(t, func() {
		_, _ = d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	})
}

func TestUnimplementedActuatorPanics(t *testing.T) {
	owner := addrFromByte(1)
	store := newFakeStore(owner)
	payload := testPayload{owner: owner, kind: contract.WitnessCreate}
	registry := actuator.NewRegistry() // nothing registered

	bandwidthFactory := func(state.Store, contract.Envelope, contract.Payload) (bandwidth.Processor, error) {
		return &spyProcessor{log: &[]string{}}, nil
	}
	d := New(store, spyDecoder{payload: payload}, registry, permission.New(nil), bandwidthFactory, nil)

	envelope := contract.Envelope{Kind: contract.WitnessCreate}
	require.Panics(t, func() {
		_, _ = d.Execute(envelope, []address.Address{owner}, txcontext.BlockHeader{Number: 1})
	})
}

func TestExecuteSmartContractQuerySynthesizesNextBlockTimestamp(t *testing.T) {
	owner := addrFromByte(1)
	store := newFakeStore(owner)
	payload := contract.TriggerSmartContractPayload{}

	registry := actuator.NewRegistry()
	registry.Register(contract.TriggerSmartContract, func(contract.Payload) (actuator.Actuator, error) {
		return &spyActuator{payload: testPayload{owner: owner, kind: contract.TriggerSmartContract}, log: &[]string{}}, nil
	})

	bandwidthFactory := func(state.Store, contract.Envelope, contract.Payload) (bandwidth.Processor, error) {
		return &spyProcessor{log: &[]string{}}, nil
	}
	d := New(store, spyDecoder{}, registry, permission.New(nil), bandwidthFactory, nil)

	latest := txcontext.BlockHeader{Number: 100, Timestamp: 1_700_000_000_000}
	receipt, err := d.ExecuteSmartContractQuery(payload, 1000, latest)
	require.NoError(t, err)
	require.Equal(t, latest.Number+1, receipt.BlockNumber)
	require.Equal(t, latest.Timestamp+blockProducingIntervalMillis, receipt.BlockTimestamp)
}

func addrFromByte(b byte) address.Address {
	raw := make([]byte, address.Length)
	raw[0] = address.Prefix
	raw[address.Length-1] = b
	a, err := address.FromBytes(raw)
	if err != nil {
		panic(err)
	}
	return a
}
