package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// witnessCreateFee is the flat fee owed for registering as a witness
// candidate, per the Rust reference.
const witnessCreateFee = 1_000_000_000

type witnessCreateActuator struct {
	payload contract.WitnessCreateContract
}

func newWitnessCreate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.WitnessCreateContract)
	if !ok {
		return nil, fmt.Errorf("witness_create: unexpected payload type")
	}
	return &witnessCreateActuator{payload: p}, nil
}

func (a *witnessCreateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *witnessCreateActuator) Kind() contract.Kind            { return contract.WitnessCreate }
func (a *witnessCreateActuator) Fee(state.Store) int64          { return witnessCreateFee }

func (a *witnessCreateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate WitnessCreateContract error, no owner account")
	}
	if owner.Balance < witnessCreateFee {
		return fmt.Errorf("validate WitnessCreateContract error, insufficient balance for witness create fee")
	}
	return nil
}

func (a *witnessCreateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	owner.Balance -= ctx.ContractFee
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type witnessUpdateActuator struct {
	Base
	payload contract.WitnessUpdateContract
}

func newWitnessUpdate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.WitnessUpdateContract)
	if !ok {
		return nil, fmt.Errorf("witness_update: unexpected payload type")
	}
	return &witnessUpdateActuator{payload: p}, nil
}

func (a *witnessUpdateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *witnessUpdateActuator) Kind() contract.Kind            { return contract.WitnessUpdate }

func (a *witnessUpdateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.UpdateURL) == 0 {
		return fmt.Errorf("url cannot be empty")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate WitnessUpdateContract error, no owner account")
	}
	return nil
}

func (a *witnessUpdateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type updateBrokerageActuator struct {
	Base
	payload contract.UpdateBrokerageContract
}

func newUpdateBrokerage(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UpdateBrokerageContract)
	if !ok {
		return nil, fmt.Errorf("update_brokerage: unexpected payload type")
	}
	return &updateBrokerageActuator{payload: p}, nil
}

func (a *updateBrokerageActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *updateBrokerageActuator) Kind() contract.Kind            { return contract.UpdateBrokerage }

func (a *updateBrokerageActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Brokerage < 0 || a.payload.Brokerage > 100 {
		return fmt.Errorf("validate UpdateBrokerageContract error, brokerage must be between 0 and 100")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UpdateBrokerageContract error, no owner account")
	}
	return nil
}

func (a *updateBrokerageActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
