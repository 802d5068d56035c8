package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns integer stored by the key or 0 if there is none.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// PutInt stores positive value by the key and deletes the key for zero, so
// that empty balances do not occupy storage.
func PutInt(ctx storage.Context, key any, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, value)
}

// GetHash160 returns script hash stored by the key or nil if there is none.
// The value is read as a string, so it stays an immutable ByteString on the
// stack and is returned to callers as is.
func GetHash160(ctx storage.Context, key any) interop.Hash160 {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}
	return interop.Hash160(data.(string))
}
