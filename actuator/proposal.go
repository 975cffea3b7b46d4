package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

type proposalCreateActuator struct {
	Base
	payload contract.ProposalCreateContract
}

func newProposalCreate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ProposalCreateContract)
	if !ok {
		return nil, fmt.Errorf("proposal_create: unexpected payload type")
	}
	return &proposalCreateActuator{payload: p}, nil
}

func (a *proposalCreateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *proposalCreateActuator) Kind() contract.Kind            { return contract.ProposalCreate }

func (a *proposalCreateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.Parameters) == 0 {
		return fmt.Errorf("validate ProposalCreateContract error, no parameter given")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ProposalCreateContract error, no owner account")
	}
	return nil
}

func (a *proposalCreateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type proposalApproveActuator struct {
	Base
	payload contract.ProposalApproveContract
}

func newProposalApprove(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ProposalApproveContract)
	if !ok {
		return nil, fmt.Errorf("proposal_approve: unexpected payload type")
	}
	return &proposalApproveActuator{payload: p}, nil
}

func (a *proposalApproveActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *proposalApproveActuator) Kind() contract.Kind            { return contract.ProposalApprove }

func (a *proposalApproveActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.ProposalID <= 0 {
		return fmt.Errorf("validate ProposalApproveContract error, invalid proposal id")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ProposalApproveContract error, no owner account")
	}
	return nil
}

func (a *proposalApproveActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type proposalDeleteActuator struct {
	Base
	payload contract.ProposalDeleteContract
}

func newProposalDelete(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ProposalDeleteContract)
	if !ok {
		return nil, fmt.Errorf("proposal_delete: unexpected payload type")
	}
	return &proposalDeleteActuator{payload: p}, nil
}

func (a *proposalDeleteActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *proposalDeleteActuator) Kind() contract.Kind            { return contract.ProposalDelete }

func (a *proposalDeleteActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.ProposalID <= 0 {
		return fmt.Errorf("validate ProposalDeleteContract error, invalid proposal id")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ProposalDeleteContract error, no owner account")
	}
	return nil
}

func (a *proposalDeleteActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
