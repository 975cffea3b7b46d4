package txcontext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opentron-labs/txexec/contract"
)

func TestToReceiptOmitsVMFieldsWhenNoEnergyLimit(t *testing.T) {
	ctx := New(BlockHeader{Number: 10, Timestamp: 100}, [32]byte{1}, 5000)
	ctx.BandwidthUsage = 200
	ctx.BandwidthFee = 10
	ctx.EnergyUsage = 999 // must not surface: EnergyLimit is 0

	receipt := ctx.ToReceipt()

	require.True(t, receipt.Success)
	require.Equal(t, int64(10), receipt.BlockNumber)
	require.Equal(t, int64(200), receipt.ResourceReceipt.BandwidthUsage)
	require.Zero(t, receipt.ResourceReceipt.Energy)
	require.Zero(t, receipt.ResourceReceipt.EnergyUsage)
	require.Nil(t, receipt.VMResult)
}

func TestToReceiptIncludesVMFieldsWhenEnergyLimitPositive(t *testing.T) {
	ctx := New(BlockHeader{Number: 10, Timestamp: 100}, [32]byte{1}, 5000)
	ctx.EnergyLimit = 1000
	ctx.Energy = 500
	ctx.EnergyUsage = 400
	ctx.ContractStatus = contract.StatusSuccess
	ctx.ResultBytes = []byte{0xAA}

	receipt := ctx.ToReceipt()

	require.Equal(t, int64(500), receipt.ResourceReceipt.Energy)
	require.Equal(t, int64(400), receipt.ResourceReceipt.EnergyUsage)
	require.Equal(t, int32(contract.StatusSuccess), receipt.VMStatus)
	require.Equal(t, []byte{0xAA}, receipt.VMResult)
}

func TestDummyContextUsesDefaultFeeLimit(t *testing.T) {
	ctx := Dummy(BlockHeader{Number: 1})
	require.Equal(t, int64(DummyFeeLimit), ctx.FeeLimit)
	require.Equal(t, contract.StatusDefault, ctx.ContractStatus)
}

func TestToReceiptIsDeterministic(t *testing.T) {
	build := func() Receipt {
		ctx := New(BlockHeader{Number: 3, Timestamp: 30}, [32]byte{9}, 100)
		ctx.BandwidthUsage = 50
		ctx.EnergyLimit = 10
		ctx.Energy = 10
		return ctx.ToReceipt()
	}
	require.Equal(t, build(), build())
}
