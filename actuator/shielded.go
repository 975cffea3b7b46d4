package actuator

import (
	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// shieldedTransferActuator is a deliberate no-op placeholder: the shielded
// pool's zk-SNARK verification and note-commitment bookkeeping are out of
// scope (spec.md §9 design note), so Validate/Execute never reject or
// mutate anything, matching the Rust reference's stub actuator.
type shieldedTransferActuator struct {
	Base
}

func newShieldedTransfer(contract.Payload) (Actuator, error) {
	return &shieldedTransferActuator{}, nil
}

func (shieldedTransferActuator) OwnerAddress() address.Address { return address.Zero }
func (shieldedTransferActuator) Kind() contract.Kind            { return contract.ShieldedTransfer }

func (shieldedTransferActuator) Validate(state.Store, *txcontext.ExecutionContext) error {
	return nil
}

func (shieldedTransferActuator) Execute(state.Store, *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
