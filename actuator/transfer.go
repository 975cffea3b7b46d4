package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// transferActuator moves TRX from owner to a recipient, creating the
// recipient account on first transfer (ctx.NewAccountCreated), grounded on
// the Rust reference's TransferContract handling in executor/mod.rs.
type transferActuator struct {
	Base
	payload contract.TransferContract
}

func newTransfer(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.TransferContract)
	if !ok {
		return nil, fmt.Errorf("transfer: unexpected payload type")
	}
	return &transferActuator{payload: p}, nil
}

func (a *transferActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *transferActuator) Kind() contract.Kind            { return contract.Transfer }

func (a *transferActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate TransferContract error, no account")
	}
	if owner.Balance < a.payload.Amount {
		return fmt.Errorf("validate TransferContract error, balance is not sufficient")
	}

	_, toExists, err := store.GetAccount(state.AccountKey{Owner: a.payload.To})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !toExists {
		ctx.NewAccountCreated = true
	}
	return nil
}

func (a *transferActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	if err := store.AddBalance(a.payload.Owner, -a.payload.Amount); err != nil {
		return contract.TransactionResult{}, err
	}
	if err := store.AddBalance(a.payload.To, a.payload.Amount); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

// transferAssetActuator moves a named asset's balance from owner to a
// recipient.
type transferAssetActuator struct {
	Base
	payload contract.TransferAssetContract
}

func newTransferAsset(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.TransferAssetContract)
	if !ok {
		return nil, fmt.Errorf("transfer_asset: unexpected payload type")
	}
	return &transferAssetActuator{payload: p}, nil
}

func (a *transferAssetActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *transferAssetActuator) Kind() contract.Kind            { return contract.TransferAsset }

func (a *transferAssetActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate TransferAssetContract error, no owner account")
	}
	if owner.AssetBalances[string(a.payload.AssetName)] < a.payload.Amount {
		return fmt.Errorf("validate TransferAssetContract error, asset balance is not sufficient")
	}
	return nil
}

func (a *transferAssetActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	to, toExists, err := store.GetAccount(state.AccountKey{Owner: a.payload.To})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	if !toExists {
		ctx.NewAccountCreated = true
		to = state.Account{AssetBalances: map[string]int64{}}
	}
	if owner.AssetBalances == nil {
		owner.AssetBalances = map[string]int64{}
	}
	if to.AssetBalances == nil {
		to.AssetBalances = map[string]int64{}
	}
	name := string(a.payload.AssetName)
	owner.AssetBalances[name] -= a.payload.Amount
	to.AssetBalances[name] += a.payload.Amount

	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.To}, to); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
