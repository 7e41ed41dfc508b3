package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by an owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrAdminWitnessFailed appears when the method must be called
	// by the contract owner but was not.
	ErrAdminWitnessFailed = "contract owner witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller interop.Hash160) {
	if !runtime.CheckWitness(caller) {
		panic(ErrOwnerWitnessFailed)
	}
}

// CheckContractOwner checks witness of the administrative owner stored
// under OwnerKey. It panics with ErrAdminWitnessFailed message on fail.
func CheckContractOwner(ctx storage.Context) {
	owner := storage.Get(ctx, OwnerKey).(interop.Hash160)
	if !runtime.CheckWitness(owner) {
		panic(ErrAdminWitnessFailed)
	}
}

// ContractOwner returns the administrative owner stored under OwnerKey.
func ContractOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, OwnerKey).(interop.Hash160)
}

// SetContractOwner stores the administrative owner under OwnerKey. The hash
// must be a proper Hash160, zero owners are rejected.
func SetContractOwner(ctx storage.Context, owner interop.Hash160) {
	if !IsUsableHash(owner) {
		panic("validation: invalid owner script hash")
	}
	storage.Put(ctx, OwnerKey, owner)
}

// IsUsableHash reports whether h is a correctly sized, non-zero script hash.
func IsUsableHash(h interop.Hash160) bool {
	if len(h) != interop.Hash160Len {
		return false
	}

	zero := true
	for i := 0; i < len(h); i++ {
		if h[i] != 0 {
			zero = false
			break
		}
	}

	return !zero
}
