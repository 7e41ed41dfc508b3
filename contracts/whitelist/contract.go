package whitelist

import (
	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	assetPrefix = 'w'

	referenceTokenKey = "referenceToken"
	priceKey          = "whitelistPrice"
	treasuryKey       = "treasury"
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
		owner          interop.Hash160
		referenceToken interop.Hash160
		treasury       interop.Hash160
		price          int
	})

	if len(args.referenceToken) != interop.Hash160Len {
		panic("validation: incorrect length of contract script hash")
	}
	if !common.IsUsableHash(args.treasury) {
		panic("validation: invalid treasury script hash")
	}
	if args.price <= 0 {
		panic("validation: price must be positive")
	}

	common.SetContractOwner(ctx, args.owner)
	storage.Put(ctx, referenceTokenKey, args.referenceToken)
	storage.Put(ctx, treasuryKey, args.treasury)
	storage.Put(ctx, priceKey, args.price)

	runtime.Log("whitelist contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("whitelist contract updated")
}

// IsAssetWhitelisted returns true if locks of the asset are currently exempt
// from creation fees.
func IsAssetWhitelisted(asset interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, assetKey(asset)) != nil
}

// AddAsset whitelists the asset without payment. It can be invoked only by
// the contract owner.
//
// Produces AssetWhitelisted notification.
func AddAsset(asset interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	putAsset(ctx, asset)
}

// RemoveAsset withdraws the asset's fee exemption. It can be invoked only by
// the contract owner.
//
// Produces AssetRemoved notification.
func RemoveAsset(asset interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	if storage.Get(ctx, assetKey(asset)) == nil {
		panic("validation: asset is not whitelisted")
	}

	storage.Delete(ctx, assetKey(asset))
	runtime.Notify("AssetRemoved", asset)
}

// PurchaseWhitelist whitelists the asset for the configured price in the
// reference token, paid by the buyer straight to the treasury.
//
// Produces AssetWhitelisted notification.
func PurchaseWhitelist(buyer, asset interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(buyer)

	if storage.Get(ctx, assetKey(asset)) != nil {
		panic("validation: asset is already whitelisted")
	}

	referenceToken := storage.Get(ctx, referenceTokenKey).(interop.Hash160)
	treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)
	price := common.GetInt(ctx, priceKey)

	if !contract.Call(referenceToken, "transfer", contract.All, buyer, treasury, price, nil).(bool) {
		panic("insufficient funds: whitelist payment failed")
	}

	putAsset(ctx, asset)
}

// Price returns the whitelist purchase price in the reference token's
// smallest unit.
func Price() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, priceKey)
}

// SetPrice updates the whitelist purchase price. It can be invoked only by
// the contract owner.
func SetPrice(price int) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	if price <= 0 {
		panic("validation: price must be positive")
	}

	storage.Put(ctx, priceKey, price)
	runtime.Log("whitelist price updated")
}

// Assets returns all currently whitelisted assets.
func Assets() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	var result []interop.Hash160

	it := storage.Find(ctx, []byte{assetPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // it MUST BE `storage.KeysOnly`
		result = append(result, key[1:])
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func putAsset(ctx storage.Context, asset interop.Hash160) {
	if len(asset) != interop.Hash160Len {
		panic("validation: invalid asset script hash")
	}

	storage.Put(ctx, assetKey(asset), []byte{1})
	runtime.Notify("AssetWhitelisted", asset)
}

func assetKey(asset interop.Hash160) []byte {
	return append([]byte{assetPrefix}, asset...)
}
