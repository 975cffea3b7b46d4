package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
	"github.com/opentron-labs/txexec/vm"
)

// smartContractActuator handles both CreateSmartContract and
// TriggerSmartContract by delegating execution to the injected VM, per
// spec.md §6's SmartContractVM boundary. Both kinds share one actuator
// implementation because both merely stage inputs before handing off.
type smartContractActuator struct {
	payload contract.Payload
	kind    contract.Kind
	vm      vm.SmartContractVM
}

// NewSmartContractFactory builds the Factory for CreateSmartContract or
// TriggerSmartContract, closing over the VM implementation the host
// process wires in.
func NewSmartContractFactory(kind contract.Kind, machine vm.SmartContractVM) Factory {
	return func(payload contract.Payload) (Actuator, error) {
		switch kind {
		case contract.CreateSmartContract:
			if _, ok := payload.(contract.CreateSmartContractPayload); !ok {
				return nil, fmt.Errorf("create_smart_contract: unexpected payload type")
			}
		case contract.TriggerSmartContract:
			if _, ok := payload.(contract.TriggerSmartContractPayload); !ok {
				return nil, fmt.Errorf("trigger_smart_contract: unexpected payload type")
			}
		default:
			return nil, fmt.Errorf("smart contract factory registered for non-VM kind %s", kind)
		}
		return &smartContractActuator{payload: payload, kind: kind, vm: machine}, nil
	}
}

func (a *smartContractActuator) OwnerAddress() address.Address { return a.payload.OwnerAddress() }
func (a *smartContractActuator) Kind() contract.Kind            { return a.kind }
func (a *smartContractActuator) Fee(state.Store) int64          { return 0 }

func (a *smartContractActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.OwnerAddress()})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate smart contract error, no owner account")
	}
	// energy_limit is an anticipatory field: when the caller hasn't
	// already pinned one (e.g. ExecuteSmartContractQuery does), derive it
	// from the owner's available frozen energy.
	if ctx.EnergyLimit <= 0 {
		ctx.EnergyLimit = owner.FrozenEnergyLimit
	}
	if ctx.EnergyLimit <= 0 {
		return fmt.Errorf("validate smart contract error, energy limit must be greater than 0")
	}
	if a.vm == nil {
		return fmt.Errorf("validate smart contract error, no VM configured")
	}
	return nil
}

func (a *smartContractActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	result, err := a.vm.Execute(store, a.payload, ctx)
	if err != nil {
		return contract.TransactionResult{}, err
	}
	ctx.ContractStatus = result.ContractStatus
	return result, nil
}

type updateSettingActuator struct {
	Base
	payload contract.UpdateSettingContract
}

func newUpdateSetting(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UpdateSettingContract)
	if !ok {
		return nil, fmt.Errorf("update_setting: unexpected payload type")
	}
	return &updateSettingActuator{payload: p}, nil
}

func (a *updateSettingActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *updateSettingActuator) Kind() contract.Kind            { return contract.UpdateSetting }

func (a *updateSettingActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.ConsumeUserResourcePercent < 0 || a.payload.ConsumeUserResourcePercent > 100 {
		return fmt.Errorf("validate UpdateSettingContract error, percent must be between 0 and 100")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UpdateSettingContract error, no owner account")
	}
	return nil
}

func (a *updateSettingActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type updateEnergyLimitActuator struct {
	Base
	payload contract.UpdateEnergyLimitContract
}

func newUpdateEnergyLimit(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UpdateEnergyLimitContract)
	if !ok {
		return nil, fmt.Errorf("update_energy_limit: unexpected payload type")
	}
	return &updateEnergyLimitActuator{payload: p}, nil
}

func (a *updateEnergyLimitActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *updateEnergyLimitActuator) Kind() contract.Kind            { return contract.UpdateEnergyLimit }

func (a *updateEnergyLimitActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.OriginEnergyLimit <= 0 {
		return fmt.Errorf("validate UpdateEnergyLimitContract error, origin energy limit must be greater than 0")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UpdateEnergyLimitContract error, no owner account")
	}
	return nil
}

func (a *updateEnergyLimitActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type clearAbiActuator struct {
	Base
	payload contract.ClearAbiContract
}

func newClearAbi(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ClearAbiContract)
	if !ok {
		return nil, fmt.Errorf("clear_abi: unexpected payload type")
	}
	return &clearAbiActuator{payload: p}, nil
}

func (a *clearAbiActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *clearAbiActuator) Kind() contract.Kind            { return contract.ClearAbi }

func (a *clearAbiActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ClearABIContract error, no owner account")
	}
	return nil
}

func (a *clearAbiActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
