// Package actuator defines the per-contract-kind capability set of
// spec.md §4.3 — {OwnerAddress, Kind, Validate, Execute, Fee} — as a
// uniform interface with one implementor per contract.Kind, registered in
// a table rather than resolved through a class hierarchy, per the design
// note in spec.md §9.
package actuator

import (
	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// Actuator is the capability set every contract kind implements.
type Actuator interface {
	// OwnerAddress returns the 21-byte owner address (address.Zero for
	// ShieldedTransfer).
	OwnerAddress() address.Address
	// Kind returns the contract kind this actuator handles.
	Kind() contract.Kind
	// Validate performs a pure check against state; it may populate
	// anticipatory fields on ctx (NewAccountCreated, WithdrawalAmount,
	// UnfrozenAmount, EnergyLimit) but must not mutate state.
	Validate(store state.Store, ctx *txcontext.ExecutionContext) error
	// Execute applies state mutations deterministically and, for
	// smart-contract kinds, sets ctx.ContractStatus.
	Execute(store state.Store, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error)
	// Fee returns any extra flat fee owed by this contract kind.
	Fee(store state.Store) int64
}

// Base provides the default Fee() = 0 implementation most actuators
// inherit by embedding it, matching the Rust reference's default trait
// method.
type Base struct{}

// Fee returns 0. Actuators that owe a flat extra fee override it.
func (Base) Fee(state.Store) int64 { return 0 }

// Factory builds the Actuator for a decoded payload. Exactly one Factory
// is registered per contract.Kind.
type Factory func(payload contract.Payload) (Actuator, error)

// Registry maps each supported contract.Kind to its Factory. An
// unregistered kind means "unimplemented actuator", which per spec.md
// §4.3 must abort the dispatcher rather than silently succeed.
type Registry struct {
	factories map[contract.Kind]Factory
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[contract.Kind]Factory)}
}

// Register installs the Factory for kind, overwriting any previous
// registration.
func (r *Registry) Register(kind contract.Kind, factory Factory) {
	r.factories[kind] = factory
}

// Build constructs the Actuator for payload's kind. ok is false when no
// Factory is registered for that kind.
func (r *Registry) Build(payload contract.Payload) (Actuator, bool, error) {
	factory, ok := r.factories[payload.Kind()]
	if !ok {
		return nil, false, nil
	}
	act, err := factory(payload)
	return act, true, err
}
