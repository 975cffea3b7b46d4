package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// minFrozenDuration is the minimum lock-up period, in days, accepted for a
// FreezeBalanceContract, per the Rust reference.
const minFrozenDuration = 3

type freezeBalanceActuator struct {
	Base
	payload contract.FreezeBalanceContract
}

func newFreezeBalance(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.FreezeBalanceContract)
	if !ok {
		return nil, fmt.Errorf("freeze_balance: unexpected payload type")
	}
	return &freezeBalanceActuator{payload: p}, nil
}

func (a *freezeBalanceActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *freezeBalanceActuator) Kind() contract.Kind            { return contract.FreezeBalance }

func (a *freezeBalanceActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.FrozenBalance <= 0 {
		return fmt.Errorf("validate FreezeBalanceContract error, frozen balance must be greater than 0")
	}
	if a.payload.FrozenDuration < minFrozenDuration {
		return fmt.Errorf("validate FreezeBalanceContract error, frozen duration must be no less than %d days", minFrozenDuration)
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate FreezeBalanceContract error, no owner account")
	}
	if owner.Balance < a.payload.FrozenBalance {
		return fmt.Errorf("validate FreezeBalanceContract error, balance is not sufficient")
	}
	return nil
}

func (a *freezeBalanceActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	owner.Balance -= a.payload.FrozenBalance
	if a.payload.Resource == contract.ResourceBandwidth {
		owner.AllowanceBandwidth += a.payload.FrozenBalance
	} else {
		owner.FrozenEnergyLimit += a.payload.FrozenBalance
	}
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type unfreezeBalanceActuator struct {
	Base
	payload contract.UnfreezeBalanceContract
}

func newUnfreezeBalance(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UnfreezeBalanceContract)
	if !ok {
		return nil, fmt.Errorf("unfreeze_balance: unexpected payload type")
	}
	return &unfreezeBalanceActuator{payload: p}, nil
}

func (a *unfreezeBalanceActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *unfreezeBalanceActuator) Kind() contract.Kind            { return contract.UnfreezeBalance }

func (a *unfreezeBalanceActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UnfreezeBalanceContract error, no owner account")
	}
	var frozen int64
	if a.payload.Resource == contract.ResourceBandwidth {
		frozen = owner.AllowanceBandwidth
	} else {
		frozen = owner.FrozenEnergyLimit
	}
	if frozen <= 0 {
		return fmt.Errorf("validate UnfreezeBalanceContract error, no frozen balance for this resource")
	}
	ctx.UnfrozenAmount = frozen
	return nil
}

func (a *unfreezeBalanceActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	var amount int64
	if a.payload.Resource == contract.ResourceBandwidth {
		amount = owner.AllowanceBandwidth
		owner.AllowanceBandwidth = 0
	} else {
		amount = owner.FrozenEnergyLimit
		owner.FrozenEnergyLimit = 0
	}
	owner.Balance += amount
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, UnfreezeAmount: amount}, nil
}

type voteWitnessActuator struct {
	Base
	payload contract.VoteWitnessContract
}

func newVoteWitness(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.VoteWitnessContract)
	if !ok {
		return nil, fmt.Errorf("vote_witness: unexpected payload type")
	}
	return &voteWitnessActuator{payload: p}, nil
}

func (a *voteWitnessActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *voteWitnessActuator) Kind() contract.Kind            { return contract.VoteWitness }

func (a *voteWitnessActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.Votes) == 0 {
		return fmt.Errorf("validate VoteWitnessContract error, no vote given")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate VoteWitnessContract error, no owner account")
	}
	var totalVotes int64
	for _, v := range a.payload.Votes {
		if v.VoteCount <= 0 {
			return fmt.Errorf("validate VoteWitnessContract error, vote count must be greater than 0")
		}
		totalVotes += v.VoteCount
	}
	votingPower := owner.AllowanceBandwidth + owner.FrozenEnergyLimit
	if totalVotes > votingPower {
		return fmt.Errorf("validate VoteWitnessContract error, vote count exceeds available voting power")
	}
	return nil
}

func (a *voteWitnessActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type withdrawBalanceActuator struct {
	Base
	payload contract.WithdrawBalanceContract
}

func newWithdrawBalance(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.WithdrawBalanceContract)
	if !ok {
		return nil, fmt.Errorf("withdraw_balance: unexpected payload type")
	}
	return &withdrawBalanceActuator{payload: p}, nil
}

func (a *withdrawBalanceActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *withdrawBalanceActuator) Kind() contract.Kind            { return contract.WithdrawBalance }

// voteRewardRateDivisor derives a deterministic stand-in for accrued
// witness-voting rewards from an account's voting power, since the
// reward-accrual ledger itself lives outside this module's state model.
const voteRewardRateDivisor = 10000

func (a *withdrawBalanceActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate WithdrawBalanceContract error, no owner account")
	}
	votingPower := owner.AllowanceBandwidth + owner.FrozenEnergyLimit
	reward := votingPower / voteRewardRateDivisor
	if reward <= 0 {
		return fmt.Errorf("validate WithdrawBalanceContract error, no reward to withdraw")
	}
	ctx.WithdrawalAmount = reward
	return nil
}

func (a *withdrawBalanceActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	if err := store.AddBalance(a.payload.Owner, ctx.WithdrawalAmount); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, WithdrawAmount: ctx.WithdrawalAmount}, nil
}
