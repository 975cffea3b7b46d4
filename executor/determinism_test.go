package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/txcontext"
)

// TestExecuteIsDeterministic re-runs the same envelope against fresh,
// identically-seeded stores and checks the resulting receipts are
// byte-for-byte equal (P1): the dispatcher itself introduces no
// nondeterminism beyond what the actuator and bandwidth processor do.
func TestExecuteIsDeterministic(t *testing.T) {
	owner := addrFromByte(7)
	header := txcontext.BlockHeader{Number: 42, Timestamp: 1000}
	envelope := contract.Envelope{Kind: contract.Transfer, TransactionHash: [32]byte{1, 2, 3}}

	run := func() txcontext.Receipt {
		var log []string
		d, _ := buildDispatcher(t, contract.Transfer, owner, &log, contract.TransactionResult{})
		receipt, err := d.Execute(envelope, []address.Address{owner}, header)
		require.NoError(t, err)
		return receipt
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}
