// Package contract defines the closed set of TRON contract kinds, their
// opaque envelope/payload shapes, and the type_url codec boundary.
package contract

// Kind is the closed enumeration of builtin contract tags. The numeric
// values match the on-chain ContractType tag exactly: PermissionValidator's
// operation bitmap is indexed by this number, so it must never be
// renumbered.
type Kind int32

const (
	AccountCreate Kind = iota
	Transfer
	TransferAsset
	VoteAssetObsolete // Obsolete: VoteAssetContract, unused even in java-tron.
	VoteWitness
	WitnessCreate
	AssetIssue
	WitnessUpdate
	ParticipateAssetIssue
	AccountUpdate
	FreezeBalance
	UnfreezeBalance
	WithdrawBalance
	UnfreezeAsset
	UpdateAsset
	ProposalCreate
	ProposalApprove
	ProposalDelete
	SetAccountId
	CustomContractObsolete // Obsolete: CustomContract, never implemented.
	CreateSmartContract
	TriggerSmartContract
	GetContractObsolete // Obsolete: GetContract, replaced by state queries.
	UpdateSetting
	ExchangeCreate
	ExchangeInject
	ExchangeWithdraw
	ExchangeTransaction
	UpdateEnergyLimit
	AccountPermissionUpdate
	ClearAbi
	UpdateBrokerage
	ShieldedTransfer
)

var kindNames = map[Kind]string{
	AccountCreate:           "AccountCreateContract",
	Transfer:                "TransferContract",
	TransferAsset:           "TransferAssetContract",
	VoteAssetObsolete:       "VoteAssetContract",
	VoteWitness:             "VoteWitnessContract",
	WitnessCreate:           "WitnessCreateContract",
	AssetIssue:              "AssetIssueContract",
	WitnessUpdate:           "WitnessUpdateContract",
	ParticipateAssetIssue:   "ParticipateAssetIssueContract",
	AccountUpdate:           "AccountUpdateContract",
	FreezeBalance:           "FreezeBalanceContract",
	UnfreezeBalance:         "UnfreezeBalanceContract",
	WithdrawBalance:         "WithdrawBalanceContract",
	UnfreezeAsset:           "UnfreezeAssetContract",
	UpdateAsset:             "UpdateAssetContract",
	ProposalCreate:          "ProposalCreateContract",
	ProposalApprove:         "ProposalApproveContract",
	ProposalDelete:          "ProposalDeleteContract",
	SetAccountId:            "SetAccountIdContract",
	CustomContractObsolete:  "CustomContract",
	CreateSmartContract:     "CreateSmartContract",
	TriggerSmartContract:    "TriggerSmartContract",
	GetContractObsolete:     "GetContract",
	UpdateSetting:           "UpdateSettingContract",
	ExchangeCreate:          "ExchangeCreateContract",
	ExchangeInject:          "ExchangeInjectContract",
	ExchangeWithdraw:        "ExchangeWithdrawContract",
	ExchangeTransaction:     "ExchangeTransactionContract",
	UpdateEnergyLimit:       "UpdateEnergyLimitContract",
	AccountPermissionUpdate: "AccountPermissionUpdateContract",
	ClearAbi:                "ClearAbiContract",
	UpdateBrokerage:         "UpdateBrokerageContract",
	ShieldedTransfer:        "ShieldedTransferContract",
}

var obsoleteKinds = map[Kind]bool{
	VoteAssetObsolete:      true,
	CustomContractObsolete: true,
	GetContractObsolete:    true,
}

// String returns the protobuf-style type name for the kind, used both for
// diagnostics and as the basis of the type_url codec.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownContract"
}

// Obsolete reports whether this tag must never reach dispatch.
func (k Kind) Obsolete() bool {
	return obsoleteKinds[k]
}

// Known reports whether k is a tag this module recognizes at all (obsolete
// tags are "known" but unreachable).
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// Tag returns the numeric tag used to index a permission's operation
// bitmap: byte index tag/8, bit tag%8.
func (k Kind) Tag() int32 {
	return int32(k)
}
