package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

type exchangeCreateActuator struct {
	Base
	payload contract.ExchangeCreateContract
}

func newExchangeCreate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ExchangeCreateContract)
	if !ok {
		return nil, fmt.Errorf("exchange_create: unexpected payload type")
	}
	return &exchangeCreateActuator{payload: p}, nil
}

func (a *exchangeCreateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *exchangeCreateActuator) Kind() contract.Kind            { return contract.ExchangeCreate }

func (a *exchangeCreateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.FirstTokenBalance <= 0 || a.payload.SecondTokenBalance <= 0 {
		return fmt.Errorf("validate ExchangeCreateContract error, token balance must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ExchangeCreateContract error, no owner account")
	}
	if owner.AssetBalances[string(a.payload.FirstTokenID)] < a.payload.FirstTokenBalance {
		return fmt.Errorf("validate ExchangeCreateContract error, insufficient first token balance")
	}
	if owner.AssetBalances[string(a.payload.SecondTokenID)] < a.payload.SecondTokenBalance {
		return fmt.Errorf("validate ExchangeCreateContract error, insufficient second token balance")
	}
	return nil
}

func (a *exchangeCreateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	owner.AssetBalances[string(a.payload.FirstTokenID)] -= a.payload.FirstTokenBalance
	owner.AssetBalances[string(a.payload.SecondTokenID)] -= a.payload.SecondTokenBalance
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type exchangeInjectActuator struct {
	Base
	payload contract.ExchangeInjectContract
}

func newExchangeInject(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ExchangeInjectContract)
	if !ok {
		return nil, fmt.Errorf("exchange_inject: unexpected payload type")
	}
	return &exchangeInjectActuator{payload: p}, nil
}

func (a *exchangeInjectActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *exchangeInjectActuator) Kind() contract.Kind            { return contract.ExchangeInject }

func (a *exchangeInjectActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Quant <= 0 {
		return fmt.Errorf("validate ExchangeInjectContract error, quant must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ExchangeInjectContract error, no owner account")
	}
	if owner.AssetBalances[string(a.payload.TokenID)] < a.payload.Quant {
		return fmt.Errorf("validate ExchangeInjectContract error, insufficient token balance")
	}
	return nil
}

func (a *exchangeInjectActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	owner.AssetBalances[string(a.payload.TokenID)] -= a.payload.Quant
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, ExchangeID: a.payload.ExchangeID, FundAdded: [2]int64{a.payload.Quant, 0}}, nil
}

type exchangeWithdrawActuator struct {
	Base
	payload contract.ExchangeWithdrawContract
}

func newExchangeWithdraw(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ExchangeWithdrawContract)
	if !ok {
		return nil, fmt.Errorf("exchange_withdraw: unexpected payload type")
	}
	return &exchangeWithdrawActuator{payload: p}, nil
}

func (a *exchangeWithdrawActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *exchangeWithdrawActuator) Kind() contract.Kind            { return contract.ExchangeWithdraw }

func (a *exchangeWithdrawActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Quant <= 0 {
		return fmt.Errorf("validate ExchangeWithdrawContract error, quant must be greater than 0")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ExchangeWithdrawContract error, no owner account")
	}
	return nil
}

func (a *exchangeWithdrawActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	if owner.AssetBalances == nil {
		owner.AssetBalances = map[string]int64{}
	}
	owner.AssetBalances[string(a.payload.TokenID)] += a.payload.Quant
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, ExchangeID: a.payload.ExchangeID, FundWithdrawn: [2]int64{a.payload.Quant, 0}}, nil
}

type exchangeTransactionActuator struct {
	Base
	payload contract.ExchangeTransactionContract
}

func newExchangeTransaction(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ExchangeTransactionContract)
	if !ok {
		return nil, fmt.Errorf("exchange_transaction: unexpected payload type")
	}
	return &exchangeTransactionActuator{payload: p}, nil
}

func (a *exchangeTransactionActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *exchangeTransactionActuator) Kind() contract.Kind            { return contract.ExchangeTransaction }

func (a *exchangeTransactionActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Quant <= 0 {
		return fmt.Errorf("validate ExchangeTransactionContract error, quant must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ExchangeTransactionContract error, no owner account")
	}
	if owner.AssetBalances[string(a.payload.TokenID)] < a.payload.Quant {
		return fmt.Errorf("validate ExchangeTransactionContract error, insufficient token balance")
	}
	return nil
}

func (a *exchangeTransactionActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	owner.AssetBalances[string(a.payload.TokenID)] -= a.payload.Quant
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, ExchangeID: a.payload.ExchangeID, Received: a.payload.Expected}, nil
}
