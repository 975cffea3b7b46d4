package contract

import "github.com/opentron-labs/txexec/address"

// Payload is the per-kind typed record decoded from a transaction's
// contract parameter. OwnerAddress is empty (address.Zero) only for
// ShieldedTransfer.
type Payload interface {
	OwnerAddress() address.Address
	Kind() Kind
}

// ContractStatus mirrors the on-chain enum carried by a recorded
// TransactionResult and surfaced on the receipt's vm_status field.
type ContractStatus int32

const (
	StatusDefault ContractStatus = iota
	StatusSuccess
	StatusRevert
	StatusBadJumpDestination
	StatusOutOfTime
	StatusOutOfEnergy
	StatusTransferFailed
	StatusInvalidCode
	StatusStackTooSmall
	StatusStackTooLarge
	StatusIllegalOperation
	StatusStackOverflow
	StatusJvmStackOverFlow
	StatusUnknown
)

// TransactionResult is the per-execution outcome produced by an actuator's
// Execute and, for VM kinds, cross-checked against the recorded result.
type TransactionResult struct {
	ContractStatus  ContractStatus
	ContractAddress address.Address
	AssetIssueID    string
	WithdrawAmount  int64
	UnfreezeAmount  int64
	ExchangeID      int64
	FundAdded       [2]int64
	FundWithdrawn   [2]int64
	Received        int64
}

// Equal performs the structural comparison used for replay
// cross-checking.
func (r TransactionResult) Equal(other TransactionResult) bool {
	return r == other
}

// RecordedResult is the optional on-chain recorded outcome carried by a
// TransactionEnvelope, used only for replay cross-checking.
type RecordedResult struct {
	Present        bool
	ContractStatus ContractStatus
	Result         TransactionResult
}

// Envelope carries the decoded contract tag, the owner's requested
// permission id, the opaque parameter payload, the fee limit and the
// optional recorded result used during replay.
type Envelope struct {
	Kind           Kind
	PermissionID   int32
	ParameterURL   string
	ParameterBytes []byte
	TransactionHash [32]byte
	FeeLimit       int64
	Recorded       RecordedResult
}

// PayloadDecoder turns a decoded parameter's raw bytes into the kind's
// typed Payload. The wire format itself (protobuf, in the real system) is
// an out-of-scope external collaborator per spec.md §1/§6; this module
// only owns the type_url construction/parsing and the protobuf-bug
// byte-trimming around the decode call, both of which are
// consensus-critical.
type PayloadDecoder interface {
	Decode(kind Kind, raw []byte) (Payload, error)
}
