package executor

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/opentron-labs/txexec/actuator"
	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/bandwidth"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/permission"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// blockProducingIntervalMillis is the chain's block-production cadence, in
// milliseconds, used to synthesize the next block's timestamp for a
// simulated query (spec.md §4.6; BLOCK_PRODUCING_INTERVAL in the Rust
// reference's executor).
const blockProducingIntervalMillis = 3000

// vmKinds pre-load contract_status from any recorded result so the VM can
// reproduce it during replay, and are the only kinds whose replay mismatch
// is fatal (spec.md §4.1 step 4, §4.5).
var vmKinds = map[contract.Kind]bool{
	contract.CreateSmartContract:  true,
	contract.TriggerSmartContract: true,
}

// Dispatcher ties together payload decoding, permission validation,
// bandwidth accounting and actuator execution into the single
// execute(txn, recovered_signers, block_header) operation of spec.md §4.1,
// grounded on the teacher's MsgServer/ante-decorator composition
// (x/vm/keeper/msg_server.go dispatches by message type; the mono
// decorator chain runs a fixed stage sequence per transaction).
type Dispatcher struct {
	store             state.Store
	decoder           contract.PayloadDecoder
	registry          *actuator.Registry
	validator         permission.Validator
	bandwidthFactory  bandwidth.Factory
	logger            log.Logger
}

// New constructs a Dispatcher. A nil logger is replaced with a no-op one.
func New(
	store state.Store,
	decoder contract.PayloadDecoder,
	registry *actuator.Registry,
	validator permission.Validator,
	bandwidthFactory bandwidth.Factory,
	logger log.Logger,
) *Dispatcher {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Dispatcher{
		store:            store,
		decoder:          decoder,
		registry:         registry,
		validator:        validator,
		bandwidthFactory: bandwidthFactory,
		logger:           logger,
	}
}

// Execute runs the full dispatch pipeline for one transaction envelope and
// returns its receipt, or an error if any stage fails. No receipt is
// returned on failure (spec.md §4.4, §7).
func (d *Dispatcher) Execute(envelope contract.Envelope, signers []address.Address, header txcontext.BlockHeader) (txcontext.Receipt, error) {
	kind := envelope.Kind

	// Step 1: obsolete tags must never reach dispatch; this is a
	// programmer error, not a recoverable transaction failure.
	if kind.Obsolete() {
		panic(fmt.Sprintf("executor: obsolete contract kind %s reached dispatch", kind))
	}
	if !kind.Known() {
		panic(fmt.Sprintf("executor: unknown contract kind tag %d reached dispatch", kind.Tag()))
	}

	// Step 2: decode the opaque parameter bytes into the typed payload.
	payload, err := d.decodePayload(kind, envelope)
	if err != nil {
		return txcontext.Receipt{}, err
	}

	// Step 3: fresh context.
	ctx := txcontext.New(header, envelope.TransactionHash, envelope.FeeLimit)

	// Step 4: VM kinds pre-load contract_status from the recorded result.
	if vmKinds[kind] && envelope.Recorded.Present {
		ctx.ContractStatus = envelope.Recorded.ContractStatus
	}

	act, ok, err := d.registry.Build(payload)
	if err != nil {
		return txcontext.Receipt{}, err
	}
	if !ok {
		d.logger.Error("dispatch error, unimplemented actuator", "kind", kind.String())
		panic(fmt.Sprintf("%v: %s", ErrUnimplementedActuator, kind))
	}

	proc, err := d.bandwidthFactory(d.store, envelope, payload)
	if err != nil {
		return txcontext.Receipt{}, err
	}

	// Step 5: run the pipeline stages in the kind-specific order.
	result, err := d.runPipeline(kind, envelope, signers, act, proc, ctx)
	if err != nil {
		return txcontext.Receipt{}, err
	}

	// Step 6: replay cross-check.
	if envelope.Recorded.Present && !envelope.Recorded.Result.Equal(result) {
		if vmKinds[kind] {
			return txcontext.Receipt{}, ErrReplayMismatch
		}
		d.logger.Info("replay result mismatch, continuing", "kind", kind.String(), "hash", hexutil.Encode(envelope.TransactionHash[:]))
	}

	// Step 7: fold context into a receipt.
	return ctx.ToReceipt(), nil
}

func (d *Dispatcher) decodePayload(kind contract.Kind, envelope contract.Envelope) (contract.Payload, error) {
	if kind == contract.CreateSmartContract {
		return contract.DecodeCreateSmartContract(d.decoder, envelope.TransactionHash, envelope.ParameterBytes)
	}
	return d.decoder.Decode(kind, envelope.ParameterBytes)
}

// runPipeline sequences signature_validate, contract_validate,
// bandwidth_consume and actuator_execute per the stage-order matrix of
// spec.md §4.1. ShieldedTransfer is special-cased: it skips signature
// validation and bandwidth consumption entirely.
func (d *Dispatcher) runPipeline(
	kind contract.Kind,
	envelope contract.Envelope,
	signers []address.Address,
	act actuator.Actuator,
	proc bandwidth.Processor,
	ctx *txcontext.ExecutionContext,
) (contract.TransactionResult, error) {
	if kind == contract.ShieldedTransfer {
		if err := act.Validate(d.store, ctx); err != nil {
			return contract.TransactionResult{}, err
		}
		return d.executeActuator(act, ctx)
	}

	signatureValidate := func() error {
		return d.validateSignatures(envelope, signers, act.OwnerAddress(), kind, ctx)
	}
	contractValidate := func() error { return act.Validate(d.store, ctx) }
	bandwidthConsume := func() error { return proc.Consume(ctx) }

	switch orderForKind(kind) {
	case orderB:
		if err := signatureValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		if err := contractValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		result, err := d.executeActuator(act, ctx)
		if err != nil {
			return contract.TransactionResult{}, err
		}
		if err := bandwidthConsume(); err != nil {
			return contract.TransactionResult{}, err
		}
		return result, nil

	case orderC:
		if err := signatureValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		if err := bandwidthConsume(); err != nil {
			return contract.TransactionResult{}, err
		}
		if err := contractValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		return d.executeActuator(act, ctx)

	default: // orderA
		if err := signatureValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		if err := contractValidate(); err != nil {
			return contract.TransactionResult{}, err
		}
		if err := bandwidthConsume(); err != nil {
			return contract.TransactionResult{}, err
		}
		return d.executeActuator(act, ctx)
	}
}

// executeActuator populates contract_fee from the actuator's own flat fee
// schedule before running Execute, per spec.md §4.3's `fee(state) -> i64`
// ("extra flat fee owed by this contract kind"); actuators that owe a
// nonzero fee debit it from the owner's balance inside their own Execute.
func (d *Dispatcher) executeActuator(act actuator.Actuator, ctx *txcontext.ExecutionContext) (contract.TransactionResult, error) {
	ctx.ContractFee = act.Fee(d.store)
	return act.Execute(d.store, ctx)
}

// validateSignatures resolves the owner account and chain parameters and
// delegates weight evaluation to the permission validator, per spec.md
// §4.2.
func (d *Dispatcher) validateSignatures(
	envelope contract.Envelope,
	signers []address.Address,
	owner address.Address,
	kind contract.Kind,
	ctx *txcontext.ExecutionContext,
) error {
	if owner.IsZero() {
		return permission.ErrInvalidOwnerAddress
	}

	acct, ok, err := d.store.GetAccount(state.AccountKey{Owner: owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return permission.ErrOwnerAccountMissing
	}

	allowMultisig := d.store.MustGetParameter(state.ParameterKey{Parameter: state.AllowMultisig}) != 0

	if err := d.validator.ValidateSignatures(owner, acct, envelope.PermissionID, signers, kind.Tag(), allowMultisig); err != nil {
		return err
	}

	if len(signers) > 1 {
		ctx.MultisigFee = d.store.MustGetParameter(state.ParameterKey{Parameter: state.MultisigFee})
	}
	return nil
}

// ExecuteSmartContractQuery implements spec.md §4.6: a read-only,
// signature- and bandwidth-free invocation used to service simulated
// (eth-call style) queries against a deployed contract.
func (d *Dispatcher) ExecuteSmartContractQuery(payload contract.TriggerSmartContractPayload, energyLimit int64, latestBlock txcontext.BlockHeader) (txcontext.Receipt, error) {
	header := txcontext.BlockHeader{
		Number:    latestBlock.Number + 1,
		Timestamp: latestBlock.Timestamp + blockProducingIntervalMillis,
	}
	ctx := txcontext.Dummy(header)
	ctx.EnergyLimit = energyLimit

	act, ok, err := d.registry.Build(payload)
	if err != nil {
		return txcontext.Receipt{}, err
	}
	if !ok {
		panic(fmt.Sprintf("%v: %s", ErrUnimplementedActuator, payload.Kind()))
	}

	if err := act.Validate(d.store, ctx); err != nil {
		return txcontext.Receipt{}, err
	}
	result, err := d.executeActuator(act, ctx)
	if err != nil {
		return txcontext.Receipt{}, err
	}
	ctx.ContractStatus = result.ContractStatus
	return ctx.ToReceipt(), nil
}
