// Package bandwidth declares the BandwidthProcessor boundary of spec.md
// §4.3/§6: the call contract every contract kind's pipeline invokes
// identically. The production accounting rules (free-bandwidth buckets,
// staked-bandwidth buckets, the per-byte fee schedule) belong to the
// external state/resource subsystem; DefaultProcessor in this package is a
// minimal, deterministic stand-in for them.
package bandwidth

import (
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// Processor mutates bandwidth_usage, bandwidth_fee and contract_fee on the
// context, and account balances/bandwidth buckets in state.
type Processor interface {
	Consume(ctx *txcontext.ExecutionContext) error
}

// Factory constructs a Processor scoped to one transaction's envelope and
// decoded payload, per spec.md §6: `new(manager, txn, payload)`.
type Factory func(store state.Store, envelope contract.Envelope, payload contract.Payload) (Processor, error)
