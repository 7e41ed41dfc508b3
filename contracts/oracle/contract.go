package oracle

import (
	"github.com/lockvault/lockvault-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// rate converts reference-currency amounts into asset amounts as
// amount * Num / Denom.
type rate struct {
	Num   int
	Denom int
}

const ratePrefix = 'q'

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
	})

	common.SetContractOwner(ctx, args.owner)
	runtime.Log("oracle contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("oracle contract updated")
}

// SetRate publishes the conversion rate from the reference currency into the
// given asset. It can be invoked only by the contract owner.
func SetRate(asset interop.Hash160, num, denom int) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	if len(asset) != interop.Hash160Len {
		panic("validation: invalid asset script hash")
	}
	if num <= 0 || denom <= 0 {
		panic("validation: rate must be positive")
	}

	common.SetSerialized(ctx, rateKey(asset), rate{Num: num, Denom: denom})
	runtime.Log("conversion rate updated")
}

// Quote converts an amount denominated in the reference currency into the
// asset's smallest unit at the published rate. It panics for an asset
// without a published rate.
func Quote(referenceAmount int, asset interop.Hash160) int {
	if referenceAmount <= 0 {
		panic("validation: amount must be positive")
	}

	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, rateKey(asset))
	if data == nil {
		panic("validation: no rate for asset")
	}

	r := std.Deserialize(data.([]byte)).(rate)
	return referenceAmount * r.Num / r.Denom
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func rateKey(asset interop.Hash160) []byte {
	return append([]byte{ratePrefix}, asset...)
}
