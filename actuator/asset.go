package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// assetIssueFee is the flat fee owed for issuing a new asset, returned by
// Fee() per spec.md §4.3 ("asset issue fee").
const assetIssueFee = 1024_000_000

type assetIssueActuator struct {
	payload contract.AssetIssueContract
}

func newAssetIssue(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.AssetIssueContract)
	if !ok {
		return nil, fmt.Errorf("asset_issue: unexpected payload type")
	}
	return &assetIssueActuator{payload: p}, nil
}

func (a *assetIssueActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *assetIssueActuator) Kind() contract.Kind            { return contract.AssetIssue }
func (a *assetIssueActuator) Fee(state.Store) int64          { return assetIssueFee }

func (a *assetIssueActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.Name) == 0 {
		return fmt.Errorf("asset name cannot be empty")
	}
	if a.payload.TotalSupply <= 0 {
		return fmt.Errorf("total supply must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate AssetIssueContract error, no owner account")
	}
	if owner.Balance < assetIssueFee {
		return fmt.Errorf("validate AssetIssueContract error, insufficient balance for asset issue fee")
	}
	return nil
}

func (a *assetIssueActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	owner, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	if owner.AssetBalances == nil {
		owner.AssetBalances = map[string]int64{}
	}
	owner.AssetBalances[string(a.payload.Name)] = a.payload.TotalSupply
	owner.Balance -= ctx.ContractFee
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, owner); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault, AssetIssueID: string(a.payload.Name)}, nil
}

type participateAssetIssueActuator struct {
	Base
	payload contract.ParticipateAssetIssueContract
}

func newParticipateAssetIssue(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.ParticipateAssetIssueContract)
	if !ok {
		return nil, fmt.Errorf("participate_asset_issue: unexpected payload type")
	}
	return &participateAssetIssueActuator{payload: p}, nil
}

func (a *participateAssetIssueActuator) OwnerAddress() address.Address {
	return a.payload.Owner
}
func (a *participateAssetIssueActuator) Kind() contract.Kind { return contract.ParticipateAssetIssue }

func (a *participateAssetIssueActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate ParticipateAssetIssueContract error, no owner account")
	}
	if owner.Balance < a.payload.Amount {
		return fmt.Errorf("validate ParticipateAssetIssueContract error, insufficient balance")
	}
	return nil
}

func (a *participateAssetIssueActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	if err := store.AddBalance(a.payload.Owner, -a.payload.Amount); err != nil {
		return contract.TransactionResult{}, err
	}
	to, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.To})
	if err != nil {
		return contract.TransactionResult{}, err
	}
	if !ok {
		to = state.Account{AssetBalances: map[string]int64{}}
		ctx.NewAccountCreated = true
	}
	if to.AssetBalances == nil {
		to.AssetBalances = map[string]int64{}
	}
	to.AssetBalances[string(a.payload.AssetName)] += a.payload.Amount
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.To}, to); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type updateAssetActuator struct {
	Base
	payload contract.UpdateAssetContract
}

func newUpdateAsset(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UpdateAssetContract)
	if !ok {
		return nil, fmt.Errorf("update_asset: unexpected payload type")
	}
	return &updateAssetActuator{payload: p}, nil
}

func (a *updateAssetActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *updateAssetActuator) Kind() contract.Kind            { return contract.UpdateAsset }

func (a *updateAssetActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UpdateAssetContract error, no owner account")
	}
	return nil
}

func (a *updateAssetActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type unfreezeAssetActuator struct {
	Base
	payload contract.UnfreezeAssetContract
}

func newUnfreezeAsset(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.UnfreezeAssetContract)
	if !ok {
		return nil, fmt.Errorf("unfreeze_asset: unexpected payload type")
	}
	return &unfreezeAssetActuator{payload: p}, nil
}

func (a *unfreezeAssetActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *unfreezeAssetActuator) Kind() contract.Kind            { return contract.UnfreezeAsset }

func (a *unfreezeAssetActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate UnfreezeAssetContract error, no owner account")
	}
	return nil
}

func (a *unfreezeAssetActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
