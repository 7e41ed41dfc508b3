package referral

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
	codePrefix   = 'c'
	rewardPrefix = 'r'
	callerPrefix = 'x'

	maxCodeLength = 32
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
		owner interop.Hash160
	})

	common.SetContractOwner(ctx, args.owner)
	runtime.Log("referral contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("referral contract updated")
}

// CreateCode registers a referral code for the given owner. Codes are
// case-sensitive, at most 32 characters and unique forever: a removed code
// cannot be taken over by another owner.
//
// Produces CodeCreated notification.
func CreateCode(owner interop.Hash160, code string) {
	common.CheckOwnerWitness(owner)
	checkCode(code)

	ctx := storage.GetContext()
	if storage.Get(ctx, codeKey(code)) != nil {
		panic("validation: code already registered")
	}

	storage.Put(ctx, codeKey(code), owner)
	runtime.Notify("CodeCreated", owner, code)
}

// RemoveCode deactivates a referral code. It can be invoked by the code
// owner or by the contract owner. Accumulated reward accounting stays
// readable after removal.
func RemoveCode(code string) {
	ctx := storage.GetContext()

	data := storage.Get(ctx, codeKey(code))
	if data == nil {
		panic("validation: unknown code")
	}

	codeOwner := data.(interop.Hash160)
	if !runtime.CheckWitness(codeOwner) {
		common.CheckContractOwner(ctx)
	}

	storage.Delete(ctx, codeKey(code))
	runtime.Log("referral code removed")
}

// IsCodeActive returns true if the code is currently registered.
func IsCodeActive(code string) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, codeKey(code)) != nil
}

// CodeOwner returns the account the code's rewards are attributed to.
func CodeOwner(code string) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, codeKey(code))
	if data == nil {
		panic("validation: unknown code")
	}

	return data.(interop.Hash160)
}

// RecordReward adds amount to the code's accumulated reward. It can be
// invoked only by locker contracts registered through AddCaller: reward
// attribution is part of a fee payment and must not be forgeable.
//
// Produces RewardRecorded notification.
func RecordReward(code string, amount int) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	if storage.Get(ctx, callerKey(caller)) == nil {
		panic("witness: caller is not a registered locker contract")
	}
	if storage.Get(ctx, codeKey(code)) == nil {
		panic("validation: unknown code")
	}
	if amount <= 0 {
		panic("validation: amount must be positive")
	}

	storage.Put(ctx, rewardKey(code), common.GetInt(ctx, rewardKey(code))+amount)
	runtime.Notify("RewardRecorded", code, amount)
}

// RewardsEarned returns the total reward recorded for the code.
func RewardsEarned(code string) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, rewardKey(code))
}

// AddCaller allows a locker contract to record rewards. It can be invoked
// only by the contract owner.
func AddCaller(hash interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)

	if len(hash) != interop.Hash160Len {
		panic("validation: incorrect length of contract script hash")
	}

	storage.Put(ctx, callerKey(hash), []byte{1})
	runtime.Log("reward caller registered")
}

// RemoveCaller revokes a locker contract's right to record rewards. It can
// be invoked only by the contract owner.
func RemoveCaller(hash interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckContractOwner(ctx)
	storage.Delete(ctx, callerKey(hash))
	runtime.Log("reward caller removed")
}

// Codes returns all currently active referral codes.
func Codes() []string {
	ctx := storage.GetReadOnlyContext()

	var result []string

	it := storage.Find(ctx, []byte{codePrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		key := iterator.Value(it).([]byte) // it MUST BE `storage.KeysOnly`
		result = append(result, string(key[1:]))
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkCode(code string) {
	if len(code) == 0 {
		panic("validation: empty code")
	}
	if len(code) > maxCodeLength {
		panic("validation: code too long")
	}
}

func codeKey(code string) []byte {
	return append([]byte{codePrefix}, []byte(code)...)
}

func rewardKey(code string) []byte {
	return append([]byte{rewardPrefix}, []byte(code)...)
}

func callerKey(hash interop.Hash160) []byte {
	return append([]byte{callerPrefix}, hash...)
}
