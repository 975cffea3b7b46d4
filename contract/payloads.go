package contract

import "github.com/opentron-labs/txexec/address"

// owned is embedded by every payload except ShieldedTransfer to implement
// the common OwnerAddress() accessor.
type owned struct {
	Owner address.Address
}

func (o owned) OwnerAddress() address.Address { return o.Owner }

// TransferContract moves TRX from owner to To.
type TransferContract struct {
	owned
	To     address.Address
	Amount int64
}

func (TransferContract) Kind() Kind { return Transfer }

// TransferAssetContract moves a named asset from owner to To.
type TransferAssetContract struct {
	owned
	AssetName []byte
	To        address.Address
	Amount    int64
}

func (TransferAssetContract) Kind() Kind { return TransferAsset }

// AssetIssueContract issues a new asset.
type AssetIssueContract struct {
	owned
	Name             []byte
	Abbr             []byte
	TotalSupply      int64
	FrozenSupply     []FrozenSupply
	TRXNum           int64
	Num              int64
	StartTime        int64
	EndTime          int64
	VoteScore        int32
	Description      []byte
	URL              []byte
	FreeAssetNetLimit int64
	PublicFreeAssetNetLimit int64
}

func (AssetIssueContract) Kind() Kind { return AssetIssue }

// FrozenSupply is one issuance-time frozen-supply entry.
type FrozenSupply struct {
	FrozenAmount int64
	FrozenDays   int64
}

// ParticipateAssetIssueContract buys into an existing asset issuance.
type ParticipateAssetIssueContract struct {
	owned
	To        address.Address
	AssetName []byte
	Amount    int64
}

func (ParticipateAssetIssueContract) Kind() Kind { return ParticipateAssetIssue }

// UpdateAssetContract updates a previously issued asset's parameters.
type UpdateAssetContract struct {
	owned
	Description             []byte
	URL                     []byte
	NewLimit                int64
	NewPublicLimit          int64
}

func (UpdateAssetContract) Kind() Kind { return UpdateAsset }

// UnfreezeAssetContract releases an asset issuer's frozen supply.
type UnfreezeAssetContract struct {
	owned
}

func (UnfreezeAssetContract) Kind() Kind { return UnfreezeAsset }

// AccountCreateContract creates a new account at AccountAddress.
type AccountCreateContract struct {
	owned
	AccountAddress address.Address
	Type           int32
}

func (AccountCreateContract) Kind() Kind { return AccountCreate }

// AccountUpdateContract sets an account's display name (once).
type AccountUpdateContract struct {
	owned
	AccountName []byte
}

func (AccountUpdateContract) Kind() Kind { return AccountUpdate }

// SetAccountIdContract sets an account's fixed id (once).
type SetAccountIdContract struct {
	owned
	AccountID []byte
}

func (SetAccountIdContract) Kind() Kind { return SetAccountId }

// AccountPermissionUpdateContract replaces an account's owner/active
// permission set.
type AccountPermissionUpdateContract struct {
	owned
	OwnerThreshold    int64
	OwnerKeys         []PermissionKeyArg
	ActivePermissions []ActivePermissionArg
}

func (AccountPermissionUpdateContract) Kind() Kind { return AccountPermissionUpdate }

// PermissionKeyArg is one {address, weight} pair in a requested
// permission update.
type PermissionKeyArg struct {
	Address address.Address
	Weight  int64
}

// ActivePermissionArg is one requested active permission.
type ActivePermissionArg struct {
	Threshold  int64
	Keys       []PermissionKeyArg
	Operations [32]byte
}

// WitnessCreateContract registers owner as a witness candidate.
type WitnessCreateContract struct {
	owned
	URL []byte
}

func (WitnessCreateContract) Kind() Kind { return WitnessCreate }

// WitnessUpdateContract updates a witness's announced URL.
type WitnessUpdateContract struct {
	owned
	UpdateURL []byte
}

func (WitnessUpdateContract) Kind() Kind { return WitnessUpdate }

// UpdateBrokerageContract updates a witness's brokerage (commission) rate.
type UpdateBrokerageContract struct {
	owned
	Brokerage int32
}

func (UpdateBrokerageContract) Kind() Kind { return UpdateBrokerage }

// VoteWitnessContract casts owner's votes across one or more witnesses.
type VoteWitnessContract struct {
	owned
	Votes []Vote
}

func (VoteWitnessContract) Kind() Kind { return VoteWitness }

// Vote is one witness-address/vote-count pair.
type Vote struct {
	VoteAddress address.Address
	VoteCount   int64
}

// WithdrawBalanceContract withdraws owner's accrued witness/voting
// rewards.
type WithdrawBalanceContract struct {
	owned
}

func (WithdrawBalanceContract) Kind() Kind { return WithdrawBalance }

// ResourceCode distinguishes bandwidth from energy for freeze/unfreeze.
type ResourceCode int32

const (
	ResourceBandwidth ResourceCode = iota
	ResourceEnergy
)

// FreezeBalanceContract locks balance in exchange for bandwidth or
// energy.
type FreezeBalanceContract struct {
	owned
	FrozenBalance    int64
	FrozenDuration   int64
	Resource         ResourceCode
	ReceiverAddress  address.Address
}

func (FreezeBalanceContract) Kind() Kind { return FreezeBalance }

// UnfreezeBalanceContract releases a prior freeze once its duration has
// elapsed.
type UnfreezeBalanceContract struct {
	owned
	Resource        ResourceCode
	ReceiverAddress address.Address
}

func (UnfreezeBalanceContract) Kind() Kind { return UnfreezeBalance }

// ProposalCreateContract proposes changes to one or more chain
// parameters.
type ProposalCreateContract struct {
	owned
	Parameters map[int64]int64
}

func (ProposalCreateContract) Kind() Kind { return ProposalCreate }

// ProposalApproveContract casts owner's (a witness's) vote on a pending
// proposal.
type ProposalApproveContract struct {
	owned
	ProposalID int64
	IsApproval bool
}

func (ProposalApproveContract) Kind() Kind { return ProposalApprove }

// ProposalDeleteContract withdraws a proposal its creator no longer wants
// considered.
type ProposalDeleteContract struct {
	owned
	ProposalID int64
}

func (ProposalDeleteContract) Kind() Kind { return ProposalDelete }

// ExchangeCreateContract opens a new bancor-style token exchange pair.
type ExchangeCreateContract struct {
	owned
	FirstTokenID      []byte
	FirstTokenBalance int64
	SecondTokenID     []byte
	SecondTokenBalance int64
}

func (ExchangeCreateContract) Kind() Kind { return ExchangeCreate }

// ExchangeInjectContract adds liquidity to an existing exchange pair.
type ExchangeInjectContract struct {
	owned
	ExchangeID int64
	TokenID    []byte
	Quant      int64
}

func (ExchangeInjectContract) Kind() Kind { return ExchangeInject }

// ExchangeWithdrawContract removes liquidity from an exchange pair.
type ExchangeWithdrawContract struct {
	owned
	ExchangeID int64
	TokenID    []byte
	Quant      int64
}

func (ExchangeWithdrawContract) Kind() Kind { return ExchangeWithdraw }

// ExchangeTransactionContract trades through an exchange pair.
type ExchangeTransactionContract struct {
	owned
	ExchangeID int64
	TokenID    []byte
	Quant      int64
	Expected   int64
}

func (ExchangeTransactionContract) Kind() Kind { return ExchangeTransaction }

// NewContract is the bytecode/ABI bundle deployed by CreateSmartContract.
type NewContract struct {
	Bytecode          []byte
	Name              string
	OriginEnergyLimit int64
	ConsumeUserResourcePercent int64
	CallValue         int64
	TokenID           []byte
	TokenValue        int64
}

// CreateSmartContractPayload deploys a new smart contract. Named with a
// Payload suffix to avoid colliding with the Kind constant of the same
// conceptual name (contract.CreateSmartContract).
type CreateSmartContractPayload struct {
	owned
	NewContract NewContract
}

func (CreateSmartContractPayload) Kind() Kind { return CreateSmartContract }

// TriggerSmartContractPayload invokes an already-deployed smart contract.
type TriggerSmartContractPayload struct {
	owned
	ContractAddress address.Address
	Data            []byte
	CallValue       int64
	TokenID         []byte
	TokenValue      int64
}

func (TriggerSmartContractPayload) Kind() Kind { return TriggerSmartContract }

// UpdateSettingContract updates a deployed contract's resource-consumption
// percentage.
type UpdateSettingContract struct {
	owned
	ContractAddress            address.Address
	ConsumeUserResourcePercent int64
}

func (UpdateSettingContract) Kind() Kind { return UpdateSetting }

// UpdateEnergyLimitContract updates a deployed contract's
// origin-energy-limit.
type UpdateEnergyLimitContract struct {
	owned
	ContractAddress  address.Address
	OriginEnergyLimit int64
}

func (UpdateEnergyLimitContract) Kind() Kind { return UpdateEnergyLimit }

// ClearAbiContract removes a deployed contract's stored ABI.
type ClearAbiContract struct {
	owned
	ContractAddress address.Address
}

func (ClearAbiContract) Kind() Kind { return ClearAbi }

// ShieldedTransferContract is the placeholder shielded-pool transfer.
// OwnerAddress is always address.Zero, per spec.md §3.
type ShieldedTransferContract struct{}

func (ShieldedTransferContract) OwnerAddress() address.Address { return address.Zero }
func (ShieldedTransferContract) Kind() Kind                    { return ShieldedTransfer }
