// Package vm declares the smart-contract VM boundary the execution core
// calls into. The VM itself is out of scope (spec.md §1); this package
// only fixes its call contract.
package vm

import (
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// SmartContractVM executes CreateSmartContract/TriggerSmartContract
// payloads against state, deterministically, per spec.md §6.
type SmartContractVM interface {
	Execute(store state.Store, payload contract.Payload, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error)
}
