package actuator

import (
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/vm"
)

// NewDefaultRegistry builds the Registry with one Factory registered per
// non-obsolete contract.Kind. machine backs the two VM-dispatched kinds
// (CreateSmartContract, TriggerSmartContract); callers that never execute
// smart contracts may pass nil, but Validate on those two kinds will then
// always fail.
func NewDefaultRegistry(machine vm.SmartContractVM) *Registry {
	r := NewRegistry()

	r.Register(contract.AccountCreate, newAccountCreate)
	r.Register(contract.Transfer, newTransfer)
	r.Register(contract.TransferAsset, newTransferAsset)
	r.Register(contract.VoteWitness, newVoteWitness)
	r.Register(contract.WitnessCreate, newWitnessCreate)
	r.Register(contract.AssetIssue, newAssetIssue)
	r.Register(contract.WitnessUpdate, newWitnessUpdate)
	r.Register(contract.ParticipateAssetIssue, newParticipateAssetIssue)
	r.Register(contract.AccountUpdate, newAccountUpdate)
	r.Register(contract.FreezeBalance, newFreezeBalance)
	r.Register(contract.UnfreezeBalance, newUnfreezeBalance)
	r.Register(contract.WithdrawBalance, newWithdrawBalance)
	r.Register(contract.UnfreezeAsset, newUnfreezeAsset)
	r.Register(contract.UpdateAsset, newUpdateAsset)
	r.Register(contract.ProposalCreate, newProposalCreate)
	r.Register(contract.ProposalApprove, newProposalApprove)
	r.Register(contract.ProposalDelete, newProposalDelete)
	r.Register(contract.SetAccountId, newSetAccountID)
	r.Register(contract.CreateSmartContract, NewSmartContractFactory(contract.CreateSmartContract, machine))
	r.Register(contract.TriggerSmartContract, NewSmartContractFactory(contract.TriggerSmartContract, machine))
	r.Register(contract.UpdateSetting, newUpdateSetting)
	r.Register(contract.ExchangeCreate, newExchangeCreate)
	r.Register(contract.ExchangeInject, newExchangeInject)
	r.Register(contract.ExchangeWithdraw, newExchangeWithdraw)
	r.Register(contract.ExchangeTransaction, newExchangeTransaction)
	r.Register(contract.UpdateEnergyLimit, newUpdateEnergyLimit)
	r.Register(contract.AccountPermissionUpdate, newAccountPermissionUpdate)
	r.Register(contract.ClearAbi, newClearAbi)
	r.Register(contract.UpdateBrokerage, newUpdateBrokerage)
	r.Register(contract.ShieldedTransfer, newShieldedTransfer)

	return r
}
