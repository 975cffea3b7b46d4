package actuator

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

type accountCreateActuator struct {
	Base
	payload contract.AccountCreateContract
}

func newAccountCreate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.AccountCreateContract)
	if !ok {
		return nil, fmt.Errorf("account_create: unexpected payload type")
	}
	return &accountCreateActuator{payload: p}, nil
}

func (a *accountCreateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *accountCreateActuator) Kind() contract.Kind            { return contract.AccountCreate }

func (a *accountCreateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.AccountAddress.IsZero() {
		return fmt.Errorf("validate AccountCreateContract error, account address is invalid")
	}
	_, exists, err := store.GetAccount(state.AccountKey{Owner: a.payload.AccountAddress})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if exists {
		return fmt.Errorf("validate AccountCreateContract error, account already exists")
	}
	return nil
}

func (a *accountCreateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	if err := store.PutAccount(state.AccountKey{Owner: a.payload.AccountAddress}, state.Account{}); err != nil {
		return contract.TransactionResult{}, err
	}
	ctx.NewAccountCreated = true
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type accountUpdateActuator struct {
	Base
	payload contract.AccountUpdateContract
}

func newAccountUpdate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.AccountUpdateContract)
	if !ok {
		return nil, fmt.Errorf("account_update: unexpected payload type")
	}
	return &accountUpdateActuator{payload: p}, nil
}

func (a *accountUpdateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *accountUpdateActuator) Kind() contract.Kind            { return contract.AccountUpdate }

func (a *accountUpdateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.AccountName) == 0 {
		return fmt.Errorf("account name cannot be empty")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate AccountUpdateContract error, no owner account")
	}
	return nil
}

func (a *accountUpdateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

type setAccountIDActuator struct {
	Base
	payload contract.SetAccountIdContract
}

func newSetAccountID(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.SetAccountIdContract)
	if !ok {
		return nil, fmt.Errorf("set_account_id: unexpected payload type")
	}
	return &setAccountIDActuator{payload: p}, nil
}

func (a *setAccountIDActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *setAccountIDActuator) Kind() contract.Kind            { return contract.SetAccountId }

func (a *setAccountIDActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if len(a.payload.AccountID) == 0 {
		return fmt.Errorf("account id cannot be empty")
	}
	_, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate SetAccountIdContract error, no owner account")
	}
	return nil
}

func (a *setAccountIDActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}

// accountPermissionUpdateFee is the flat fee owed for replacing an
// account's permission set, spec.md §4.3's own named example of a
// nonzero Fee() override ("account permission update fee").
const accountPermissionUpdateFee = 100_000_000

// accountPermissionUpdateActuator replaces an account's owner permission
// and active permission list, grounded on the Rust reference's
// AccountPermissionUpdateContract handling.
type accountPermissionUpdateActuator struct {
	payload contract.AccountPermissionUpdateContract
}

func newAccountPermissionUpdate(payload contract.Payload) (Actuator, error) {
	p, ok := payload.(contract.AccountPermissionUpdateContract)
	if !ok {
		return nil, fmt.Errorf("account_permission_update: unexpected payload type")
	}
	return &accountPermissionUpdateActuator{payload: p}, nil
}

func (a *accountPermissionUpdateActuator) OwnerAddress() address.Address { return a.payload.Owner }
func (a *accountPermissionUpdateActuator) Kind() contract.Kind {
	return contract.AccountPermissionUpdate
}
func (a *accountPermissionUpdateActuator) Fee(state.Store) int64 { return accountPermissionUpdateFee }

func (a *accountPermissionUpdateActuator) Validate(store state.Store, ctx *txcontext.ExecutionContext) error {
	if a.payload.OwnerThreshold <= 0 {
		return fmt.Errorf("validate AccountPermissionUpdateContract error, owner threshold must be greater than 0")
	}
	if len(a.payload.OwnerKeys) == 0 {
		return fmt.Errorf("validate AccountPermissionUpdateContract error, owner permission must have at least one key")
	}
	owner, ok, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("validate AccountPermissionUpdateContract error, no owner account")
	}
	if owner.Balance < accountPermissionUpdateFee {
		return fmt.Errorf("validate AccountPermissionUpdateContract error, insufficient balance for permission update fee")
	}
	var ownerWeight int64
	for _, k := range a.payload.OwnerKeys {
		ownerWeight += k.Weight
	}
	if ownerWeight < a.payload.OwnerThreshold {
		return fmt.Errorf("validate AccountPermissionUpdateContract error, owner keys total weight less than threshold")
	}
	for _, ap := range a.payload.ActivePermissions {
		if ap.Threshold <= 0 || len(ap.Keys) == 0 {
			return fmt.Errorf("validate AccountPermissionUpdateContract error, active permission must have at least one key and positive threshold")
		}
		var weight int64
		for _, k := range ap.Keys {
			weight += k.Weight
		}
		if weight < ap.Threshold {
			return fmt.Errorf("validate AccountPermissionUpdateContract error, active keys total weight less than threshold")
		}
	}
	return nil
}

func (a *accountPermissionUpdateActuator) Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	acct, _, err := store.GetAccount(state.AccountKey{Owner: a.payload.Owner})
	if err != nil {
		return contract.TransactionResult{}, err
	}

	ownerKeys := make([]state.PermissionKey, 0, len(a.payload.OwnerKeys))
	for _, k := range a.payload.OwnerKeys {
		ownerKeys = append(ownerKeys, state.PermissionKey{Address: k.Address, Weight: k.Weight})
	}
	acct.OwnerPermission = &state.Permission{Threshold: a.payload.OwnerThreshold, Keys: ownerKeys}

	active := make([]state.Permission, 0, len(a.payload.ActivePermissions))
	for _, ap := range a.payload.ActivePermissions {
		keys := make([]state.PermissionKey, 0, len(ap.Keys))
		for _, k := range ap.Keys {
			keys = append(keys, state.PermissionKey{Address: k.Address, Weight: k.Weight})
		}
		active = append(active, state.Permission{Threshold: ap.Threshold, Keys: keys, Operations: ap.Operations})
	}
	acct.ActivePermissions = active
	acct.Balance -= ctx.ContractFee

	if err := store.PutAccount(state.AccountKey{Owner: a.payload.Owner}, acct); err != nil {
		return contract.TransactionResult{}, err
	}
	return contract.TransactionResult{ContractStatus: contract.StatusDefault}, nil
}
