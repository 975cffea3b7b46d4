// Package executor implements the dispatcher of spec.md §4.1: it decodes a
// transaction's contract envelope, selects the registered actuator, and
// sequences signature validation, per-contract validation, bandwidth
// accounting and actuator execution in the kind-specific order the
// consensus surface requires.
package executor

import "errors"

// ErrReplayMismatch is returned, fatally, when a VM kind's produced
// TransactionResult disagrees with the envelope's recorded result.
var ErrReplayMismatch = errors.New("result check not passed!")

// ErrUnimplementedActuator is the panic message prefix used when no Factory
// is registered for a known, non-obsolete contract kind; it is never
// returned as an error.
var ErrUnimplementedActuator = errors.New("unimplemented actuator")
