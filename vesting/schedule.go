/*
Package vesting implements the release-schedule arithmetic shared by every
lock kind of the locker contract: outright time locks, linear vesting and
percentage-based batch allocation.

All arithmetic is performed on integers in the asset's smallest unit,
division truncates toward zero. Timestamps are block timestamps in
milliseconds. The package imports nothing so that it both compiles under the
neo-go compiler as part of the locker contract and runs as a plain library
in host-side tests and tooling.
*/
package vesting

// BasisPointsDenom is the denominator of all percentage values: 10000 basis
// points make 100%.
const BasisPointsDenom = 10000

// Vested returns the portion of deposit released by the schedule at the
// given moment. The release curve is zero before start, the full deposit at
// and after end, and a linear interpolation in between. A schedule with
// start == end is a single-unlock (cliff) lock: nothing is released before
// end and everything at it.
//
// The result is monotone non-decreasing in now for a fixed schedule. For a
// duration that does not evenly divide deposit*(now-start) the intermediate
// value truncates down, so the curve reaches deposit exactly at end and
// never overshoots.
func Vested(deposit, start, end, now int) int {
	if now < start {
		return 0
	}
	if now >= end {
		return deposit
	}

	return deposit * (now - start) / (end - start)
}

// Claimable returns the amount withdrawable right now from a record with the
// given deposit, cumulative withdrawn amount and schedule. It floors at zero
// so that truncation in Vested can never make the result negative after a
// maximal withdrawal.
func Claimable(deposit, withdrawn, start, end, now int) int {
	vested := Vested(deposit, start, end, now)
	if vested <= withdrawn {
		return 0
	}

	return vested - withdrawn
}

// SplitByShares allocates total between len(shares) recipients proportionally
// to shares expressed in basis points. The shares must be positive and sum
// to exactly BasisPointsDenom; any mismatch panics instead of being silently
// normalized. The integer-division remainder goes to the last recipient, so
// the allocated amounts always sum to exactly total.
func SplitByShares(total int, shares []int) []int {
	if total <= 0 {
		panic("validation: total amount must be positive")
	}
	if len(shares) == 0 {
		panic("validation: empty share list")
	}

	sum := 0
	for i := 0; i < len(shares); i++ {
		if shares[i] <= 0 {
			panic("validation: share must be positive")
		}
		sum += shares[i]
	}
	if sum != BasisPointsDenom {
		panic("validation: shares must sum to 10000 basis points")
	}

	amounts := make([]int, len(shares))
	allocated := 0
	for i := 0; i < len(shares)-1; i++ {
		amounts[i] = total * shares[i] / BasisPointsDenom
		allocated += amounts[i]
	}
	amounts[len(shares)-1] = total - allocated

	return amounts
}
