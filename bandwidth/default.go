package bandwidth

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
	"github.com/opentron-labs/txexec/txcontext"
)

// BytesPerUnitFee is the fee, in sun, charged per byte of bandwidth once an
// account's free/staked bandwidth allowance is exhausted.
const BytesPerUnitFee = 1000

// DefaultProcessor is a minimal, deterministic bandwidth accounting
// implementation: it charges a flat per-byte fee against the owner's
// staked bandwidth allowance, falling back to a balance-funded fee.
type DefaultProcessor struct {
	store   state.Store
	owner   address.Address
	rawSize int64
}

// NewDefault builds the default Processor. It satisfies the
// bandwidth.Factory signature.
func NewDefault(store state.Store, envelope contract.Envelope, payload contract.Payload) (Processor, error) {
	return &DefaultProcessor{
		store:   store,
		owner:   payload.OwnerAddress(),
		rawSize: int64(len(envelope.ParameterBytes)) + 64, // approximate signature/header overhead
	}, nil
}

// Consume implements Processor.
func (p *DefaultProcessor) Consume(ctx *txcontext.ExecutionContext) error {
	if p.owner.IsZero() {
		// ShieldedTransfer never reaches here (bandwidth is skipped for
		// it), but guard anyway: no owner means nothing to charge.
		return nil
	}

	acct, ok, err := p.store.GetAccount(state.AccountKey{Owner: p.owner})
	if err != nil {
		return errorsmod.Wrap(state.ErrQuery, err.Error())
	}
	if !ok {
		return fmt.Errorf("owner account not exists")
	}

	usage := p.rawSize
	ctx.BandwidthUsage += usage

	if acct.AllowanceBandwidth >= usage {
		acct.AllowanceBandwidth -= usage
		return p.store.PutAccount(state.AccountKey{Owner: p.owner}, acct)
	}

	remaining := usage - acct.AllowanceBandwidth
	acct.AllowanceBandwidth = 0
	fee := remaining * BytesPerUnitFee
	ctx.BandwidthFee += fee

	if err := p.store.PutAccount(state.AccountKey{Owner: p.owner}, acct); err != nil {
		return err
	}
	return p.store.AddBalance(p.owner, -fee)
}
