// Package manager replaces Roto manager contract in update tests. It keeps the storage
// of the replaced contract and records the version it was updated from.
package manager

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	ownerKey        = 'o'
	upgradedFromKey = 'u'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if !isUpdate {
		return
	}
	args := data.([]any)
	storage.Put(storage.GetContext(), upgradedFromKey, args[len(args)-1].(int))
}

// UpgradedFrom returns version passed by the replaced contract.
func UpgradedFrom() int {
	return storage.Get(storage.GetReadOnlyContext(), upgradedFromKey).(int)
}

// Owner returns owner stored by the replaced contract.
func Owner() interop.Hash160 {
	return interop.Hash160(storage.Get(storage.GetReadOnlyContext(), ownerKey).(string))
}
