package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// addBlockAt appends an empty block with the given timestamp, moving the
// chain time forward. The next test invoke is done with +1 timestamp.
func addBlockAt(t *testing.T, e *neotest.Executor, ts uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = ts
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// findEvent returns the arguments of the single named notification produced
// by the transaction.
func findEvent(t *testing.T, aer *state.AppExecResult, name string) []stackitem.Item {
	for _, ev := range aer.Events {
		if ev.Name == name {
			return ev.Item.Value().([]stackitem.Item)
		}
	}
	require.FailNow(t, "notification not found", "name: %s", name)
	return nil
}

func requireNoEvent(t *testing.T, aer *state.AppExecResult, name string) {
	for _, ev := range aer.Events {
		require.NotEqual(t, name, ev.Name)
	}
}

// stackInt runs a test invoke of a method returning an integer.
func stackInt(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) int64 {
	res, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return res.Top().Item().Value().(*big.Int).Int64()
}

// stackIntSlice runs a test invoke of a method returning an array of
// integers. A Null result reads as an empty slice.
func stackIntSlice(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) []int64 {
	res, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)

	itm := res.Top().Item()
	if _, ok := itm.(stackitem.Null); ok {
		return nil
	}

	items := itm.Value().([]stackitem.Item)
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].Value().(*big.Int).Int64()
	}
	return ids
}

// stackStructFields runs a test invoke of a method returning a struct and
// flattens it into its field items.
func stackStructFields(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	res, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return res.Top().Item().Value().([]stackitem.Item)
}

func itemBytes(t *testing.T, itm stackitem.Item) []byte {
	b, err := itm.TryBytes()
	require.NoError(t, err)
	return b
}

func itemInt(t *testing.T, itm stackitem.Item) int64 {
	v, err := itm.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}
