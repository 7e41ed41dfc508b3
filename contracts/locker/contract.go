package locker

import (
	"github.com/lockvault/lockvault-contract/common"
	"github.com/lockvault/lockvault-contract/vesting"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// LockRecord is a single escrowed deposit with its release schedule.
	// Deposit and Withdrawn are amounts in the asset's smallest unit,
	// Start and End are block timestamps in milliseconds. A record with
	// Withdrawn == Deposit is exhausted but stays in storage forever.
	LockRecord struct {
		Asset     interop.Hash160
		Owner     interop.Hash160
		Creator   interop.Hash160
		Deposit   int
		Withdrawn int
		Start     int
		End       int
	}
)

const (
	lockPrefix       = 'l'
	ownerIndexPrefix = 'o'
	assetIndexPrefix = 'a'
	custodyPrefix    = 't'
	feePrefix        = 'f'

	counterKey = "lockCounter"
	enabledKey = "creationEnabled"

	nativeFeeKey    = "nativeFee"
	assetFeeBPKey   = "assetFeeBP"
	referenceFeeKey = "referenceFee"
	discountBPKey   = "discountBP"
	maxBatchKey     = "maxBatch"
	treasuryKey     = "treasury"
	migratorKey     = "migrator"

	referralContractKey  = "referralScriptHash"
	whitelistContractKey = "whitelistScriptHash"
	oracleContractKey    = "oracleScriptHash"
)

// Fee and authorization failure messages exposed to callers.
const (
	errDisabled       = "disabled: lock creation is disabled"
	errEscrowPull     = "insufficient funds: escrow pull failed"
	errFeePull        = "insufficient funds: fee payment failed"
	errExceedsClaim   = "insufficient funds: amount exceeds claimable"
	errTransferFailed = "insufficient funds: asset transfer failed"
	errUnknownLock    = "validation: unknown lock record"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner      interop.Hash160
		treasury   interop.Hash160
		referral   interop.Hash160
		whitelist  interop.Hash160
		oracle     interop.Hash160
		nativeFee  int
		assetFeeBP int
		discountBP int
		maxBatch   int
	})

	if !common.IsUsableHash(args.treasury) {
		panic("validation: invalid treasury script hash")
	}
	if len(args.referral) != interop.Hash160Len ||
		len(args.whitelist) != interop.Hash160Len ||
		len(args.oracle) != interop.Hash160Len {
		panic("validation: incorrect length of contract script hash")
	}
	checkFeeParameters(args.nativeFee, args.assetFeeBP, 0, args.discountBP)
	if args.maxBatch <= 0 {
		panic("validation: max batch size must be positive")
	}

	common.SetContractOwner(ctx, args.owner)
	storage.Put(ctx, treasuryKey, args.treasury)
	storage.Put(ctx, migratorKey, args.owner)
	storage.Put(ctx, referralContractKey, args.referral)
	storage.Put(ctx, whitelistContractKey, args.whitelist)
	storage.Put(ctx, oracleContractKey, args.oracle)
	storage.Put(ctx, nativeFeeKey, args.nativeFee)
	storage.Put(ctx, assetFeeBPKey, args.assetFeeBP)
	storage.Put(ctx, referenceFeeKey, 0)
	storage.Put(ctx, discountBPKey, args.discountBP)
	storage.Put(ctx, maxBatchKey, args.maxBatch)
	storage.Put(ctx, counterKey, 0)
	storage.Put(ctx, enabledKey, true)

	runtime.Log("locker contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("locker contract updated")
}

// CreateLocks escrows a batch of deposits of the given asset, paying the flat
// native-currency fee per batch item in GAS. Each batch item i locks
// amounts[i] for recipients[i] over the [starts[i], ends[i]] schedule;
// starts[i] == ends[i] makes a single-unlock lock. The whole batch is applied
// atomically or not at all.
//
// Produces LockCreated notification.
func CreateLocks(creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int) {
	createWithNativeFee(creator, asset, recipients, amounts, starts, ends, "")
}

// CreateLocksWithCode is CreateLocks with a referral code: an active code
// reduces the native fee by the configured discount and the paid fee amount
// is recorded as the code's reward in the referral contract. An unknown or
// deactivated code fails the batch.
//
// Produces LockCreated notification.
func CreateLocksWithCode(creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int, code string) {
	if len(code) == 0 {
		panic("validation: empty referral code")
	}
	createWithNativeFee(creator, asset, recipients, amounts, starts, ends, code)
}

// CreateLocksAssetFee escrows a batch of deposits paying the fee in the
// locked asset itself. The fee is deducted from every deposit: a proportional
// cut of assetFeeRate basis points, or, when a reference fee is configured,
// a flat per-item amount quoted by the oracle contract. Records store the
// net amounts.
//
// Produces LockCreated notification.
func CreateLocksAssetFee(creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int) {
	ctx := storage.GetContext()
	requireEnabled(ctx)
	common.CheckOwnerWitness(creator)
	validateBatch(ctx, asset, recipients, amounts, starts, ends, false)

	gross := 0
	for i := 0; i < len(amounts); i++ {
		gross += amounts[i]
	}

	feeTotal := 0
	net := amounts
	if !isWhitelisted(ctx, asset) {
		perItem := 0
		referenceFee := common.GetInt(ctx, referenceFeeKey)
		if referenceFee > 0 {
			perItem = quoteAssetFee(ctx, asset, referenceFee)
		}

		rate := common.GetInt(ctx, assetFeeBPKey)
		net = make([]int, len(amounts))
		for i := 0; i < len(amounts); i++ {
			fee := perItem
			if referenceFee == 0 {
				fee = amounts[i] * rate / vesting.BasisPointsDenom
			}
			if fee >= amounts[i] {
				panic("validation: fee exceeds deposit")
			}
			net[i] = amounts[i] - fee
			feeTotal += fee
		}
	}

	pullAsset(asset, creator, gross)
	if feeTotal > 0 {
		addCollected(ctx, asset, feeTotal)
	}

	firstID := appendRecords(ctx, creator, asset, recipients, net, starts, ends)
	runtime.Notify("LockCreated", creator, asset, len(net), firstID)
}

// CreateLocksByShares escrows a single total amount split between recipients
// proportionally to shares expressed in basis points. The shares must sum to
// exactly 10000; the integer remainder of the split goes to the last
// recipient. The flat native fee is charged per resulting record.
//
// Produces LockCreated notification.
func CreateLocksByShares(creator, asset interop.Hash160, total int, recipients []interop.Hash160, shares, starts, ends []int) {
	amounts := vesting.SplitByShares(total, shares)
	createWithNativeFee(creator, asset, recipients, amounts, starts, ends, "")
}

// MigrateLocks imports lock records carried over from a predecessor locker.
// It pulls the escrow like the regular creation paths but charges no fee and
// accepts schedules that are already in flight or expired. It can be invoked
// only by the configured migrator identity.
//
// Produces LockCreated notification.
func MigrateLocks(creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int) {
	ctx := storage.GetContext()
	requireEnabled(ctx)

	migrator := storage.Get(ctx, migratorKey).(interop.Hash160)
	common.CheckOwnerWitness(migrator)
	common.CheckOwnerWitness(creator)
	validateBatch(ctx, asset, recipients, amounts, starts, ends, true)

	total := 0
	for i := 0; i < len(amounts); i++ {
		total += amounts[i]
	}
	pullAsset(asset, creator, total)

	firstID := appendRecords(ctx, creator, asset, recipients, amounts, starts, ends)
	runtime.Notify("LockCreated", creator, asset, len(amounts), firstID)
}

// Withdraw releases amount units from the lock record to its current owner.
// The amount must not exceed the currently claimable portion of the record's
// schedule; passing exactly the claimable amount is the claim-all case.
// It can be invoked only by the record owner.
//
// Produces TokensWithdrawn notification.
func Withdraw(id, amount int) {
	ctx := storage.GetContext()
	rec := getRecord(ctx, id)
	common.CheckOwnerWitness(rec.Owner)

	if amount <= 0 {
		panic("validation: amount must be positive")
	}

	claimable := vesting.Claimable(rec.Deposit, rec.Withdrawn, rec.Start, rec.End, runtime.GetTime())
	if amount > claimable {
		panic(errExceedsClaim)
	}

	rec.Withdrawn += amount
	common.SetSerialized(ctx, lockKey(id), rec)
	addCustody(ctx, rec.Asset, -amount)

	if !transferAsset(rec.Asset, runtime.GetExecutingScriptHash(), rec.Owner, amount) {
		panic(errTransferFailed)
	}

	runtime.Notify("TokensWithdrawn", rec.Owner, rec.Asset, id, amount)
}

// TransferLockOwnership reassigns the lock record to a new beneficiary. Only
// the owner changes: the schedule, the creator and the accounting stay as
// they are. It can be invoked only by the current record owner.
//
// Produces LockOwnershipTransferred notification.
func TransferLockOwnership(id int, newOwner interop.Hash160) {
	ctx := storage.GetContext()
	rec := getRecord(ctx, id)
	common.CheckOwnerWitness(rec.Owner)

	if !common.IsUsableHash(newOwner) {
		panic("validation: invalid new owner")
	}

	oldOwner := rec.Owner
	rec.Owner = newOwner
	common.SetSerialized(ctx, lockKey(id), rec)

	storage.Delete(ctx, indexKey(ownerIndexPrefix, oldOwner, id))
	storage.Put(ctx, indexKey(ownerIndexPrefix, newOwner, id), []byte{})

	runtime.Notify("LockOwnershipTransferred", id, oldOwner, newOwner)
}

// GetLock returns the lock record by its identifier. Exhausted records stay
// available forever.
func GetLock(id int) LockRecord {
	ctx := storage.GetReadOnlyContext()
	return getRecord(ctx, id)
}

// GetClaimable returns the amount currently withdrawable from the lock
// record at the latest block time.
func GetClaimable(id int) int {
	ctx := storage.GetReadOnlyContext()
	rec := getRecord(ctx, id)
	return vesting.Claimable(rec.Deposit, rec.Withdrawn, rec.Start, rec.End, runtime.GetTime())
}

// LocksOfOwner returns identifiers of all lock records currently owned by
// the given address.
func LocksOfOwner(owner interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()
	return listIndex(ctx, ownerIndexPrefix, owner)
}

// LocksOfAsset returns identifiers of all lock records, live or exhausted,
// holding the given asset.
func LocksOfAsset(asset interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()
	return listIndex(ctx, assetIndexPrefix, asset)
}

// TotalLocked returns the outstanding custody of the asset: the sum of
// deposit minus withdrawn over all its records.
func TotalLocked(asset interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, custodyKey(asset))
}

// CollectedFees returns the fee amount collected in the given asset and not
// yet swept to the treasury. Native GAS fees are reported for the GAS
// contract hash.
func CollectedFees(asset interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, feeKey(asset))
}

// IsEnabled returns false when the creation kill-switch is engaged.
func IsEnabled() bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, enabledKey).(bool)
}

// NativeFee returns the flat per-item lock creation fee in GAS.
func NativeFee() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, nativeFeeKey)
}

// AssetFeeRate returns the asset-denominated fee rate in basis points.
func AssetFeeRate() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, assetFeeBPKey)
}

// DiscountRate returns the referral discount in basis points.
func DiscountRate() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, discountBPKey)
}

// MaxBatch returns the maximum number of items accepted in one creation
// batch.
func MaxBatch() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, maxBatchKey)
}

// Treasury returns the account collected fees are swept to.
func Treasury() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, treasuryKey).(interop.Hash160)
}

// SetEnabled engages or releases the lock creation kill-switch. Existing
// records are not affected, withdrawal always stays available. It can be
// invoked only by the contract owner.
func SetEnabled(enabled bool) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	storage.Put(ctx, enabledKey, enabled)
	if enabled {
		runtime.Log("lock creation enabled")
	} else {
		runtime.Log("lock creation disabled")
	}
}

// SetFeeParameters updates the fee configuration: the flat native fee per
// item, the asset-denominated rate in basis points, the reference-currency
// fee quoted through the oracle (zero disables the quoted shape) and the
// referral discount in basis points. It can be invoked only by the contract
// owner.
func SetFeeParameters(nativeFee, assetFeeBP, referenceFee, discountBP int) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	checkFeeParameters(nativeFee, assetFeeBP, referenceFee, discountBP)

	storage.Put(ctx, nativeFeeKey, nativeFee)
	storage.Put(ctx, assetFeeBPKey, assetFeeBP)
	storage.Put(ctx, referenceFeeKey, referenceFee)
	storage.Put(ctx, discountBPKey, discountBP)
	runtime.Log("fee parameters updated")
}

// SetMaxBatch updates the maximum creation batch size. It can be invoked
// only by the contract owner.
func SetMaxBatch(n int) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	if n <= 0 {
		panic("validation: max batch size must be positive")
	}
	storage.Put(ctx, maxBatchKey, n)
}

// SetTreasury updates the account collected fees are swept to. It can be
// invoked only by the contract owner.
func SetTreasury(treasury interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	if !common.IsUsableHash(treasury) {
		panic("validation: invalid treasury script hash")
	}
	storage.Put(ctx, treasuryKey, treasury)
}

// SetMigrator updates the identity allowed to import records through
// MigrateLocks. It can be invoked only by the contract owner.
func SetMigrator(migrator interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	if !common.IsUsableHash(migrator) {
		panic("validation: invalid migrator script hash")
	}
	storage.Put(ctx, migratorKey, migrator)
}

// SweepFees transfers all collected fees of the given asset to the treasury.
// Native GAS fees are swept by passing the GAS contract hash. It can be
// invoked only by the contract owner.
//
// Produces FeesSwept notification.
func SweepFees(asset interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	amount := common.GetInt(ctx, feeKey(asset))
	if amount == 0 {
		panic("validation: nothing to sweep")
	}
	storage.Delete(ctx, feeKey(asset))

	treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)
	if !transferAsset(asset, runtime.GetExecutingScriptHash(), treasury, amount) {
		panic(errTransferFailed)
	}

	runtime.Notify("FeesSwept", asset, amount, treasury)
}

// TransferContractOwnership hands administrative control to a new owner. It
// can be invoked only by the current contract owner.
func TransferContractOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	common.SetContractOwner(ctx, newOwner)
	runtime.Log("contract ownership transferred")
}

// OnNEP17Payment reacts to incoming NEP-17 transfers. The contract holds
// escrowed assets and collected GAS fees, so transfers from the native GAS
// contract and asset contracts performing an escrow pull are accepted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func createWithNativeFee(creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int, code string) {
	ctx := storage.GetContext()
	requireEnabled(ctx)
	common.CheckOwnerWitness(creator)
	validateBatch(ctx, asset, recipients, amounts, starts, ends, false)

	fee := resolveNativeFee(ctx, asset, len(amounts), code)
	if fee > 0 {
		if !gas.Transfer(creator, runtime.GetExecutingScriptHash(), fee, nil) {
			panic(errFeePull)
		}
		addCollected(ctx, interop.Hash160(gas.Hash), fee)
		if len(code) != 0 {
			recordReward(ctx, code, fee)
		}
	}

	total := 0
	for i := 0; i < len(amounts); i++ {
		total += amounts[i]
	}
	pullAsset(asset, creator, total)

	firstID := appendRecords(ctx, creator, asset, recipients, amounts, starts, ends)
	runtime.Notify("LockCreated", creator, asset, len(amounts), firstID)
}

// resolveNativeFee computes the GAS fee owed for a batch of n items.
// Whitelisted assets pay nothing on any path. An active referral code
// reduces the fee by the configured discount; a supplied but inactive code
// fails the batch.
func resolveNativeFee(ctx storage.Context, asset interop.Hash160, n int, code string) int {
	if isWhitelisted(ctx, asset) {
		return 0
	}

	fee := common.GetInt(ctx, nativeFeeKey) * n
	if len(code) != 0 {
		referralContract := storage.Get(ctx, referralContractKey).(interop.Hash160)
		if !contract.Call(referralContract, "isCodeActive", contract.ReadOnly, code).(bool) {
			panic("validation: inactive referral code")
		}
		fee -= fee * common.GetInt(ctx, discountBPKey) / vesting.BasisPointsDenom
	}

	return fee
}

func recordReward(ctx storage.Context, code string, amount int) {
	referralContract := storage.Get(ctx, referralContractKey).(interop.Hash160)
	contract.Call(referralContract, "recordReward", contract.All, code, amount)
}

func quoteAssetFee(ctx storage.Context, asset interop.Hash160, referenceFee int) int {
	oracleContract := storage.Get(ctx, oracleContractKey).(interop.Hash160)
	quoted := contract.Call(oracleContract, "quote", contract.ReadOnly, referenceFee, asset).(int)
	if quoted <= 0 {
		panic("validation: oracle returned non-positive fee")
	}
	return quoted
}

func isWhitelisted(ctx storage.Context, asset interop.Hash160) bool {
	whitelistContract := storage.Get(ctx, whitelistContractKey).(interop.Hash160)
	return contract.Call(whitelistContract, "isAssetWhitelisted", contract.ReadOnly, asset).(bool)
}

// validateBatch rejects a malformed creation batch before any asset movement
// is attempted. The migration path accepts schedules lying in the past,
// regular creation requires the end to be at or after the current block
// time.
func validateBatch(ctx storage.Context, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int, allowPast bool) {
	if len(asset) != interop.Hash160Len {
		panic("validation: invalid asset script hash")
	}

	n := len(recipients)
	if n == 0 {
		panic("validation: empty batch")
	}
	if n > common.GetInt(ctx, maxBatchKey) {
		panic("validation: batch exceeds maximum size")
	}
	if len(amounts) != n || len(starts) != n || len(ends) != n {
		panic("validation: mismatched batch field lengths")
	}

	now := runtime.GetTime()
	for i := 0; i < n; i++ {
		if !common.IsUsableHash(recipients[i]) {
			panic("validation: invalid recipient")
		}
		if amounts[i] <= 0 {
			panic("validation: amount must be positive")
		}
		if ends[i] < starts[i] {
			panic("validation: end before start")
		}
		if !allowPast && ends[i] < now {
			panic("validation: end before current time")
		}
	}
}

// appendRecords writes the batch into the arena, updates both reverse
// indexes and the custody total and returns the first minted identifier.
// Identifiers are monotonically increasing and never reused.
func appendRecords(ctx storage.Context, creator, asset interop.Hash160, recipients []interop.Hash160, amounts, starts, ends []int) int {
	firstID := storage.Get(ctx, counterKey).(int)
	id := firstID
	total := 0

	for i := 0; i < len(amounts); i++ {
		rec := LockRecord{
			Asset:     asset,
			Owner:     recipients[i],
			Creator:   creator,
			Deposit:   amounts[i],
			Withdrawn: 0,
			Start:     starts[i],
			End:       ends[i],
		}
		common.SetSerialized(ctx, lockKey(id), rec)
		storage.Put(ctx, indexKey(ownerIndexPrefix, recipients[i], id), []byte{})
		storage.Put(ctx, indexKey(assetIndexPrefix, asset, id), []byte{})
		total += amounts[i]
		id++
	}

	storage.Put(ctx, counterKey, id)
	addCustody(ctx, asset, total)

	return firstID
}

func pullAsset(asset, from interop.Hash160, amount int) {
	if !transferAsset(asset, from, runtime.GetExecutingScriptHash(), amount) {
		panic(errEscrowPull)
	}
}

func transferAsset(asset, from, to interop.Hash160, amount int) bool {
	if asset.Equals(gas.Hash) {
		return gas.Transfer(from, to, amount, nil)
	}
	return contract.Call(asset, "transfer", contract.All, from, to, amount, nil).(bool)
}

func requireEnabled(ctx storage.Context) {
	if !storage.Get(ctx, enabledKey).(bool) {
		panic(errDisabled)
	}
}

func checkFeeParameters(nativeFee, assetFeeBP, referenceFee, discountBP int) {
	if nativeFee < 0 || referenceFee < 0 {
		panic("validation: negative fee")
	}
	if assetFeeBP < 0 || assetFeeBP >= vesting.BasisPointsDenom {
		panic("validation: asset fee rate out of range")
	}
	if discountBP < 0 || discountBP > vesting.BasisPointsDenom {
		panic("validation: discount out of range")
	}
}

func getRecord(ctx storage.Context, id int) LockRecord {
	data := storage.Get(ctx, lockKey(id))
	if data == nil {
		panic(errUnknownLock)
	}
	return std.Deserialize(data.([]byte)).(LockRecord)
}

func addCustody(ctx storage.Context, asset interop.Hash160, delta int) {
	total := common.GetInt(ctx, custodyKey(asset)) + delta
	if total < 0 {
		panic("insufficient funds: custody underflow")
	}
	storage.Put(ctx, custodyKey(asset), total)
}

func addCollected(ctx storage.Context, asset interop.Hash160, amount int) {
	storage.Put(ctx, feeKey(asset), common.GetInt(ctx, feeKey(asset))+amount)
}

func listIndex(ctx storage.Context, prefix byte, hash interop.Hash160) []int {
	var ids []int

	it := storage.Find(ctx, append([]byte{prefix}, hash...), storage.KeysOnly)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // it MUST BE `storage.KeysOnly`
		ids = append(ids, convert.ToInteger(key[1+interop.Hash160Len:]))
	}

	return ids
}

func lockKey(id int) []byte {
	return append([]byte{lockPrefix}, convert.ToBytes(id)...)
}

func indexKey(prefix byte, hash interop.Hash160, id int) []byte {
	key := append([]byte{prefix}, hash...)
	return append(key, convert.ToBytes(id)...)
}

func custodyKey(asset interop.Hash160) []byte {
	return append([]byte{custodyPrefix}, asset...)
}

func feeKey(asset interop.Hash160) []byte {
	return append([]byte{feePrefix}, asset...)
}
