package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrUnauthorized message on fail.
func CheckOwnerWitness(owner interop.Hash160) {
	checkWitnessWithPanic(owner, ErrUnauthorized)
}

// CheckWitness checks witness of the passed account. The account is also
// considered witnessed when it is the contract calling the current one.
// It panics with ErrUnauthorized message on fail.
func CheckWitness(account interop.Hash160) {
	if runtime.GetCallingScriptHash().Equals(account) {
		return
	}
	checkWitnessWithPanic(account, ErrUnauthorized)
}

// CheckCaller panics with ErrUnauthorized if the current method is invoked by
// any contract other than the trusted one. Unset trusted hash rejects every
// caller.
func CheckCaller(trusted interop.Hash160) {
	if len(trusted) != interop.Hash160Len {
		panic(ErrUnauthorized)
	}
	if !runtime.GetCallingScriptHash().Equals(trusted) {
		panic(ErrUnauthorized)
	}
}

func checkWitnessWithPanic(caller interop.Hash160, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
