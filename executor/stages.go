package executor

import "github.com/opentron-labs/txexec/contract"

// stageOrder is the closed set of pipeline orderings spec.md §4.1 names. It
// is a table lookup keyed by kind, not a class hierarchy, per the design
// note in spec.md §9.
type stageOrder int

const (
	orderA stageOrder = iota // signature -> validate -> bandwidth -> execute
	orderB                   // signature -> validate -> execute -> bandwidth
	orderC                   // signature -> bandwidth -> validate -> execute
)

// orderBKinds compute bandwidth over state that reflects the executed
// effect (a newly created account, asset, or exchange pair).
var orderBKinds = map[contract.Kind]bool{
	contract.AssetIssue:      true,
	contract.UpdateAsset:     true,
	contract.UnfreezeAsset:   true,
	contract.AccountCreate:   true,
	contract.ExchangeCreate:  true,
	contract.ExchangeWithdraw: true,
}

// orderCKinds charge bandwidth before contract validation/execution so
// that, for the smart-contract kinds, remaining balance after the
// bandwidth fee is what funds energy.
var orderCKinds = map[contract.Kind]bool{
	contract.CreateSmartContract:  true,
	contract.TriggerSmartContract: true,
	contract.ExchangeInject:       true,
	contract.ExchangeTransaction:  true,
}

// orderForKind reports the stage order for kind. ShieldedTransfer is
// handled as a special case by the dispatcher before this is consulted: it
// skips signature validation and bandwidth consumption entirely.
func orderForKind(kind contract.Kind) stageOrder {
	switch {
	case orderBKinds[kind]:
		return orderB
	case orderCKinds[kind]:
		return orderC
	default:
		return orderA
	}
}
