// Package txcontext implements the per-transaction ExecutionContext and
// its projection into a Receipt, per spec.md §3 and §4.4.
package txcontext

import "github.com/opentron-labs/txexec/contract"

// DummyFeeLimit is the synthesized fee_limit used by Dummy contexts
// (simulated, eth-call-style executions), per spec.md §3.
const DummyFeeLimit = 1_000_000_000

// BlockHeader is the subset of block-header fields the core reads.
type BlockHeader struct {
	Number    int64
	Timestamp int64
}

// ExecutionContext carries all meters, flags and produced outputs of a
// single transaction's execution. It must never be shared across
// transactions (spec.md §3 invariants).
type ExecutionContext struct {
	// static
	BlockHeader     BlockHeader
	TransactionHash [32]byte
	FeeLimit        int64

	// meters — non-decreasing during a transaction.
	BandwidthUsage    int64
	BandwidthFee      int64
	ContractFee       int64
	MultisigFee       int64
	Energy            int64
	EnergyLimit       int64
	EnergyUsage       int64
	OriginEnergyUsage int64
	EnergyFee         int64

	// flags / outputs
	NewAccountCreated bool
	WithdrawalAmount  int64
	UnfrozenAmount    int64
	ResultBytes       []byte
	Logs              []TransactionLog
	ContractStatus    contract.ContractStatus
}

// TransactionLog is one VM-emitted log entry, surfaced on the receipt only
// for smart-contract kinds.
type TransactionLog struct {
	Address [21]byte
	Topics  [][32]byte
	Data    []byte
}

// New constructs a fresh context for a real transaction. All meters
// default to zero; FeeLimit is copied from the envelope; ContractStatus
// defaults to StatusDefault.
func New(header BlockHeader, txHash [32]byte, feeLimit int64) *ExecutionContext {
	return &ExecutionContext{
		BlockHeader:     header,
		TransactionHash: txHash,
		FeeLimit:        feeLimit,
		ContractStatus:  contract.StatusDefault,
	}
}

// Dummy constructs a context for a simulated execution (e.g. an eth-call
// style query), with a synthesized header and the default large fee
// limit.
func Dummy(header BlockHeader) *ExecutionContext {
	return &ExecutionContext{
		BlockHeader:    header,
		FeeLimit:       DummyFeeLimit,
		ContractStatus: contract.StatusDefault,
	}
}

// ResourceReceipt is the metered-resource portion of a Receipt.
type ResourceReceipt struct {
	BandwidthUsage    int64
	BandwidthFee      int64
	ContractFee       int64
	Energy            int64
	EnergyUsage       int64
	EnergyFee         int64
	OriginEnergyUsage int64
}

// Receipt is the finalized, chain-visible record of a successful
// transaction execution. Failure paths never produce a Receipt — they
// return an error from the dispatcher instead (spec.md §4.4).
type Receipt struct {
	Success         bool
	Hash            [32]byte
	BlockNumber     int64
	BlockTimestamp  int64
	ResourceReceipt ResourceReceipt

	VMResult []byte
	VMStatus int32
	VMLogs   []TransactionLog
}

// ToReceipt projects a finished ExecutionContext into a Receipt. VM fields
// are populated only when EnergyLimit > 0, per spec.md §4.4 (P6).
// MultisigFee, WithdrawalAmount, UnfrozenAmount and NewAccountCreated are
// internal-only and never surfaced here.
func (ctx *ExecutionContext) ToReceipt() Receipt {
	receipt := Receipt{
		Success:        true,
		Hash:           ctx.TransactionHash,
		BlockNumber:    ctx.BlockHeader.Number,
		BlockTimestamp: ctx.BlockHeader.Timestamp,
		ResourceReceipt: ResourceReceipt{
			BandwidthUsage: ctx.BandwidthUsage,
			BandwidthFee:   ctx.BandwidthFee,
			ContractFee:    ctx.ContractFee,
		},
	}

	if ctx.EnergyLimit > 0 {
		receipt.ResourceReceipt.Energy = ctx.Energy
		receipt.ResourceReceipt.EnergyUsage = ctx.EnergyUsage
		receipt.ResourceReceipt.EnergyFee = ctx.EnergyFee
		receipt.ResourceReceipt.OriginEnergyUsage = ctx.OriginEnergyUsage
		receipt.VMResult = ctx.ResultBytes
		receipt.VMStatus = int32(ctx.ContractStatus)
		receipt.VMLogs = ctx.Logs
	}

	return receipt
}
