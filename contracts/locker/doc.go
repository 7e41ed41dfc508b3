/*
Package locker contains implementation of the Locker contract, the custody
ledger of the module.

Locker contract escrows fungible NEP-17 assets for a bounded period: outright
time locks (start == end), linear vesting schedules and percentage-based
batch allocation. Deposits are created in batches through one of the fee
paths (flat GAS fee, GAS fee with referral discount, fee denominated in the
locked asset) and withdrawn later against a pure, monotone release schedule.
Assets whitelisted in the Whitelist contract pay no creation fee on any path.

Every lock record keeps its original depositor, its current beneficiary, the
deposited and already withdrawn amounts and the schedule boundaries. Records
are indexed by owner and by asset, identified by monotonically increasing
integers that are never reused, and stay queryable forever once exhausted.

Configuration (fee rates, referral discount, batch limit, treasury, the
creation kill-switch) is owner-gated. Collected fees accumulate per asset in
the contract and are swept to the configured treasury on demand.

# Contract notifications

LockCreated notification. This notification is produced when a batch of lock
records is created. All identifiers of the batch are recoverable from one
event: they are firstRecordId up to firstRecordId + batchCount - 1.

	LockCreated:
	  - name: creator
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: batchCount
	    type: Integer
	  - name: firstRecordId
	    type: Integer

TokensWithdrawn notification. This notification is produced when a record
owner releases vested assets.

	TokensWithdrawn:
	  - name: owner
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: recordId
	    type: Integer
	  - name: amount
	    type: Integer

LockOwnershipTransferred notification. This notification is produced when a
record owner reassigns the record to a new beneficiary.

	LockOwnershipTransferred:
	  - name: recordId
	    type: Integer
	  - name: oldOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160

FeesSwept notification. This notification is produced when the contract
owner moves collected fees of one asset to the treasury.

	FeesSwept:
	  - name: asset
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: treasury
	    type: Hash160
*/
package locker
