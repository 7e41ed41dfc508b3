package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OwnerKey is the storage key under which every contract of this module
// keeps the script hash of its administrative owner.
const OwnerKey = "contractOwner"

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt reads an integer value from contract storage. Missing keys read as
// zero.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// BytesEqual compares two slices of bytes by wrapping them into strings.
func BytesEqual(a []byte, b []byte) bool {
	return string(a) == string(b)
}
