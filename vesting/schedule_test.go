package vesting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVestedLinear(t *testing.T) {
	const start, end = 1000, 2000

	require.Equal(t, 0, Vested(100, start, end, start-1))
	require.Equal(t, 0, Vested(100, start, end, start))
	require.Equal(t, 50, Vested(100, start, end, start+500))
	require.Equal(t, 100, Vested(100, start, end, end))
	require.Equal(t, 100, Vested(100, start, end, end+12345))
}

func TestVestedTruncation(t *testing.T) {
	// A window of 3 over a deposit of 100 does not divide evenly, the
	// intermediate points truncate down.
	require.Equal(t, 33, Vested(100, 0, 3, 1))
	require.Equal(t, 66, Vested(100, 0, 3, 2))
	require.Equal(t, 100, Vested(100, 0, 3, 3))
}

func TestVestedCliff(t *testing.T) {
	// start == end is a single-unlock lock.
	require.Equal(t, 0, Vested(500, 1000, 1000, 999))
	require.Equal(t, 500, Vested(500, 1000, 1000, 1000))
	require.Equal(t, 500, Vested(500, 1000, 1000, 1001))
}

func TestVestedMonotone(t *testing.T) {
	const deposit, start, end = 999983, 100, 7433

	prev := 0
	for now := 0; now <= end+100; now++ {
		v := Vested(deposit, start, end, now)
		require.GreaterOrEqual(t, v, prev, "release curve decreased at %d", now)
		require.LessOrEqual(t, v, deposit)
		prev = v
	}
	require.Equal(t, deposit, prev)
}

func TestClaimable(t *testing.T) {
	const start, end = 0, 1000

	// Deposit 100 over [T, T+1000]: 50 claimable halfway, remainder at end.
	require.Equal(t, 50, Claimable(100, 0, start, end, 500))
	require.Equal(t, 50, Claimable(100, 50, start, end, 1000))
	require.Equal(t, 0, Claimable(100, 100, start, end, 1000))

	// Withdrawn ahead of the curve floors at zero instead of going negative.
	require.Equal(t, 0, Claimable(100, 60, start, end, 500))
}

func TestClaimableMonotone(t *testing.T) {
	const deposit, withdrawn, start, end = 1234567, 4321, 50, 5000

	prev := 0
	for now := 0; now <= end+10; now++ {
		c := Claimable(deposit, withdrawn, start, end, now)
		require.GreaterOrEqual(t, c, prev)
		prev = c
	}
	require.Equal(t, deposit-withdrawn, prev)
}

func TestSplitByShares(t *testing.T) {
	require.Equal(t, []int{600_000, 400_000}, SplitByShares(1_000_000, []int{6000, 4000}))

	// Remainder goes to the last recipient, the sum is exact.
	amounts := SplitByShares(100, []int{3333, 3333, 3334})
	require.Equal(t, []int{33, 33, 34}, amounts)

	amounts = SplitByShares(7, []int{5000, 5000})
	require.Equal(t, []int{3, 4}, amounts)
	require.Equal(t, 7, amounts[0]+amounts[1])
}

func TestSplitBySharesRejectsBadSums(t *testing.T) {
	require.PanicsWithValue(t, "validation: shares must sum to 10000 basis points", func() {
		SplitByShares(100, []int{5000, 4999})
	})
	require.PanicsWithValue(t, "validation: shares must sum to 10000 basis points", func() {
		SplitByShares(100, []int{5000, 5001})
	})
	require.PanicsWithValue(t, "validation: share must be positive", func() {
		SplitByShares(100, []int{10001, -1})
	})
	require.PanicsWithValue(t, "validation: empty share list", func() {
		SplitByShares(100, nil)
	})
	require.PanicsWithValue(t, "validation: total amount must be positive", func() {
		SplitByShares(0, []int{10000})
	})
}

func TestSplitBySharesSumProperty(t *testing.T) {
	shares := []int{1, 2497, 2, 7000, 500}
	for total := 1; total < 3000; total += 7 {
		amounts := SplitByShares(total, shares)
		sum := 0
		for _, a := range amounts {
			sum += a
		}
		require.Equal(t, total, sum, "allocation dropped part of total %d", total)
	}
}
