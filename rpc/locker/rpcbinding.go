// Package locker contains RPC wrappers for LockVault Locker contract.
package locker

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// LockerLockRecord is a contract-specific locker.LockRecord type used by its methods.
type LockerLockRecord struct {
	Asset util.Uint160
	Owner util.Uint160
	Creator util.Uint160
	Deposit *big.Int
	Withdrawn *big.Int
	Start *big.Int
	End *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AssetFeeRate invokes `assetFeeRate` method of contract.
func (c *ContractReader) AssetFeeRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "assetFeeRate"))
}

// CollectedFees invokes `collectedFees` method of contract.
func (c *ContractReader) CollectedFees(asset util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "collectedFees", asset))
}

// DiscountRate invokes `discountRate` method of contract.
func (c *ContractReader) DiscountRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "discountRate"))
}

// GetClaimable invokes `getClaimable` method of contract.
func (c *ContractReader) GetClaimable(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getClaimable", id))
}

// GetLock invokes `getLock` method of contract.
func (c *ContractReader) GetLock(id *big.Int) (*LockerLockRecord, error) {
	return itemToLockerLockRecord(unwrap.Item(c.invoker.Call(c.hash, "getLock", id)))
}

// IsEnabled invokes `isEnabled` method of contract.
func (c *ContractReader) IsEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isEnabled"))
}

// LocksOfAsset invokes `locksOfAsset` method of contract.
func (c *ContractReader) LocksOfAsset(asset util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "locksOfAsset", asset))
}

// LocksOfOwner invokes `locksOfOwner` method of contract.
func (c *ContractReader) LocksOfOwner(owner util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "locksOfOwner", owner))
}

// MaxBatch invokes `maxBatch` method of contract.
func (c *ContractReader) MaxBatch() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxBatch"))
}

// NativeFee invokes `nativeFee` method of contract.
func (c *ContractReader) NativeFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "nativeFee"))
}

// TotalLocked invokes `totalLocked` method of contract.
func (c *ContractReader) TotalLocked(asset util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalLocked", asset))
}

// Treasury invokes `treasury` method of contract.
func (c *ContractReader) Treasury() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasury"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateLocks creates a transaction invoking `createLocks` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateLocks(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createLocks", creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksTransaction creates a transaction invoking `createLocks` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateLocksTransaction(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createLocks", creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksUnsigned creates a transaction invoking `createLocks` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateLocksUnsigned(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createLocks", nil, creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksWithCode creates a transaction invoking `createLocksWithCode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateLocksWithCode(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int, code string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createLocksWithCode", creator, asset, recipients, amounts, starts, ends, code)
}

// CreateLocksWithCodeTransaction creates a transaction invoking `createLocksWithCode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateLocksWithCodeTransaction(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int, code string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createLocksWithCode", creator, asset, recipients, amounts, starts, ends, code)
}

// CreateLocksWithCodeUnsigned creates a transaction invoking `createLocksWithCode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateLocksWithCodeUnsigned(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int, code string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createLocksWithCode", nil, creator, asset, recipients, amounts, starts, ends, code)
}

// CreateLocksAssetFee creates a transaction invoking `createLocksAssetFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateLocksAssetFee(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createLocksAssetFee", creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksAssetFeeTransaction creates a transaction invoking `createLocksAssetFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateLocksAssetFeeTransaction(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createLocksAssetFee", creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksAssetFeeUnsigned creates a transaction invoking `createLocksAssetFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateLocksAssetFeeUnsigned(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createLocksAssetFee", nil, creator, asset, recipients, amounts, starts, ends)
}

// CreateLocksByShares creates a transaction invoking `createLocksByShares` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateLocksByShares(creator util.Uint160, asset util.Uint160, total *big.Int, recipients []util.Uint160, shares []*big.Int, starts []*big.Int, ends []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createLocksByShares", creator, asset, total, recipients, shares, starts, ends)
}

// CreateLocksBySharesTransaction creates a transaction invoking `createLocksByShares` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateLocksBySharesTransaction(creator util.Uint160, asset util.Uint160, total *big.Int, recipients []util.Uint160, shares []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createLocksByShares", creator, asset, total, recipients, shares, starts, ends)
}

// CreateLocksBySharesUnsigned creates a transaction invoking `createLocksByShares` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateLocksBySharesUnsigned(creator util.Uint160, asset util.Uint160, total *big.Int, recipients []util.Uint160, shares []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createLocksByShares", nil, creator, asset, total, recipients, shares, starts, ends)
}

// MigrateLocks creates a transaction invoking `migrateLocks` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MigrateLocks(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "migrateLocks", creator, asset, recipients, amounts, starts, ends)
}

// MigrateLocksTransaction creates a transaction invoking `migrateLocks` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MigrateLocksTransaction(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "migrateLocks", creator, asset, recipients, amounts, starts, ends)
}

// MigrateLocksUnsigned creates a transaction invoking `migrateLocks` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MigrateLocksUnsigned(creator util.Uint160, asset util.Uint160, recipients []util.Uint160, amounts []*big.Int, starts []*big.Int, ends []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "migrateLocks", nil, creator, asset, recipients, amounts, starts, ends)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(id *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", id, amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", id, amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, id, amount)
}

// TransferLockOwnership creates a transaction invoking `transferLockOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferLockOwnership(id *big.Int, newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferLockOwnership", id, newOwner)
}

// TransferLockOwnershipTransaction creates a transaction invoking `transferLockOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferLockOwnershipTransaction(id *big.Int, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferLockOwnership", id, newOwner)
}

// TransferLockOwnershipUnsigned creates a transaction invoking `transferLockOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferLockOwnershipUnsigned(id *big.Int, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferLockOwnership", nil, id, newOwner)
}

// SetEnabled creates a transaction invoking `setEnabled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetEnabled(enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setEnabled", enabled)
}

// SetEnabledTransaction creates a transaction invoking `setEnabled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetEnabledTransaction(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setEnabled", enabled)
}

// SetEnabledUnsigned creates a transaction invoking `setEnabled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetEnabledUnsigned(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setEnabled", nil, enabled)
}

// SetFeeParameters creates a transaction invoking `setFeeParameters` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeeParameters(nativeFee *big.Int, assetFeeBP *big.Int, referenceFee *big.Int, discountBP *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeParameters", nativeFee, assetFeeBP, referenceFee, discountBP)
}

// SetFeeParametersTransaction creates a transaction invoking `setFeeParameters` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeParametersTransaction(nativeFee *big.Int, assetFeeBP *big.Int, referenceFee *big.Int, discountBP *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeeParameters", nativeFee, assetFeeBP, referenceFee, discountBP)
}

// SetFeeParametersUnsigned creates a transaction invoking `setFeeParameters` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeParametersUnsigned(nativeFee *big.Int, assetFeeBP *big.Int, referenceFee *big.Int, discountBP *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeeParameters", nil, nativeFee, assetFeeBP, referenceFee, discountBP)
}

// SetMaxBatch creates a transaction invoking `setMaxBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMaxBatch(n *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMaxBatch", n)
}

// SetMaxBatchTransaction creates a transaction invoking `setMaxBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMaxBatchTransaction(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMaxBatch", n)
}

// SetMaxBatchUnsigned creates a transaction invoking `setMaxBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMaxBatchUnsigned(n *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMaxBatch", nil, n)
}

// SetTreasury creates a transaction invoking `setTreasury` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTreasury(treasury util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTreasury", treasury)
}

// SetTreasuryTransaction creates a transaction invoking `setTreasury` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTreasuryTransaction(treasury util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTreasury", treasury)
}

// SetTreasuryUnsigned creates a transaction invoking `setTreasury` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTreasuryUnsigned(treasury util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTreasury", nil, treasury)
}

// SetMigrator creates a transaction invoking `setMigrator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMigrator(migrator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMigrator", migrator)
}

// SetMigratorTransaction creates a transaction invoking `setMigrator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMigratorTransaction(migrator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMigrator", migrator)
}

// SetMigratorUnsigned creates a transaction invoking `setMigrator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMigratorUnsigned(migrator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMigrator", nil, migrator)
}

// SweepFees creates a transaction invoking `sweepFees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SweepFees(asset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sweepFees", asset)
}

// SweepFeesTransaction creates a transaction invoking `sweepFees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SweepFeesTransaction(asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sweepFees", asset)
}

// SweepFeesUnsigned creates a transaction invoking `sweepFees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SweepFeesUnsigned(asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sweepFees", nil, asset)
}

// TransferContractOwnership creates a transaction invoking `transferContractOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferContractOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferContractOwnership", newOwner)
}

// TransferContractOwnershipTransaction creates a transaction invoking `transferContractOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferContractOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferContractOwnership", newOwner)
}

// TransferContractOwnershipUnsigned creates a transaction invoking `transferContractOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferContractOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferContractOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToLockerLockRecord converts stack item into *LockerLockRecord.
func itemToLockerLockRecord(item stackitem.Item, err error) (*LockerLockRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(LockerLockRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of LockerLockRecord from the given
// stackitem.Item or returns an error if it's not possible to do to due
// to type mismatch.
func (res *LockerLockRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.Deposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deposit: %w", err)
	}

	index++
	res.Withdrawn, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Withdrawn: %w", err)
	}

	index++
	res.Start, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Start: %w", err)
	}

	index++
	res.End, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field End: %w", err)
	}

	return nil
}
