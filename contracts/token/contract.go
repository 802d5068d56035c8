package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/roto-network/roto-contract/common"
)

const (
	symbol   = "ROTO"
	decimals = 18

	// initialSupply is the amount of whole tokens minted to the treasury
	// on deployment.
	initialSupply = 21_000_000

	ownerKey       = 'o'
	managerKey     = 'm'
	totalSupplyKey = 's'

	balancePrefix   = 'a'
	allowancePrefix = 'l'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	tx := runtime.GetScriptContainer()
	storage.Put(ctx, ownerKey, tx.Sender)

	supply := initialSupply * math.Pow(10, decimals)
	storage.Put(ctx, totalSupplyKey, supply)

	treasury := runtime.GetExecutingScriptHash()
	storage.Put(ctx, balanceKey(treasury), supply)

	var none interop.Hash160
	runtime.Notify("Transfer", none, treasury, supply)

	runtime.Log("roto token initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(Owner())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("roto token updated")
}

// Symbol is a NEP-17 standard method that returns ROTO token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns precision of ROTO
// balances.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the fixed amount of
// ROTO minted on deployment.
func TotalSupply() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalSupplyKey)
}

// BalanceOf is a NEP-17 standard method that returns ROTO balance of the
// specified account. Treasury balance is the balance of the contract itself.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic(common.ErrInvalidRecipient)
	}
	return common.GetInt(storage.GetReadOnlyContext(), balanceKey(account))
}

// Owner returns the account that deployed the contract.
func Owner() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), ownerKey)
}

// Transfer is a NEP-17 standard method that transfers ROTO from one account
// to another. It can be invoked only by the account owner or by the contract
// which holds the balance.
//
// Insufficient balance and invalid recipient abort the invocation.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	common.CheckWitness(from)

	transfer(ctx, from, to, amount, data)
	return true
}

// Approve allows spender to transfer up to amount of owner's ROTO with
// TransferFrom. It replaces any previous allowance. It can be invoked only by
// the owner.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckWitness(owner)

	if len(spender) != interop.Hash160Len {
		panic(common.ErrInvalidRecipient)
	}
	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}

	common.PutInt(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount spender is still allowed to transfer from
// owner's balance.
func Allowance(owner, spender interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), allowanceKey(owner, spender))
}

// TransferFrom transfers ROTO from owner to recipient using allowance given
// to spender. It can be invoked only by the spender. Allowance is decreased
// by the transferred amount.
func TransferFrom(owner, spender, to interop.Hash160, amount int) bool {
	ctx := storage.GetContext()

	common.CheckWitness(spender)

	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}

	key := allowanceKey(owner, spender)
	allowed := common.GetInt(ctx, key)
	if allowed < amount {
		panic(common.ErrInsufficientAllowance)
	}
	common.PutInt(ctx, key, allowed-amount)

	transfer(ctx, owner, to, amount, nil)
	return true
}

// TransferFromContract transfers ROTO from the treasury to the recipient. It
// can be invoked only by the contract owner.
func TransferFromContract(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(Owner())

	transfer(ctx, runtime.GetExecutingScriptHash(), to, amount, nil)
}

// SetManagerContract registers the only contract allowed to call the stake
// methods. It can be set once and only by the contract owner.
//
// It produces ManagerSet notification.
func SetManagerContract(manager interop.Hash160) {
	ctx := storage.GetContext()

	if storage.Get(ctx, managerKey) != nil {
		panic(common.ErrAlreadySet)
	}

	common.CheckOwnerWitness(Owner())

	if len(manager) != interop.Hash160Len {
		panic(common.ErrInvalidRecipient)
	}

	storage.Put(ctx, managerKey, manager)

	runtime.Log("manager contract registered")
	runtime.Notify("ManagerSet", manager)
}

// GetManager returns the registered manager contract or nil.
func GetManager() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), managerKey)
}

// CanStake checks whether staker holds at least amount. It can be invoked
// only by the manager contract.
func CanStake(staker interop.Hash160, amount int) bool {
	ctx := storage.GetReadOnlyContext()

	common.CheckCaller(getManager(ctx))

	return common.GetInt(ctx, balanceKey(staker)) >= amount
}

// StakeRoto moves amount from the staker to the treasury. It can be invoked
// only by the manager contract.
func StakeRoto(staker interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCaller(getManager(ctx))

	transfer(ctx, staker, runtime.GetExecutingScriptHash(), amount, nil)
}

// ReleaseRoto returns previously staked amount from the treasury to the
// staker. It can be invoked only by the manager contract.
func ReleaseRoto(staker interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCaller(getManager(ctx))

	transfer(ctx, runtime.GetExecutingScriptHash(), staker, amount, nil)
}

// DestroyRoto records forfeiture of the staked amount. Staked ROTO is
// already held by the treasury, so balances stay as they are. It can be
// invoked only by the manager contract.
//
// It produces Destroyed notification.
func DestroyRoto(staker interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCaller(getManager(ctx))

	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}

	runtime.Notify("Destroyed", staker, amount)
}

// RewardRoto transfers amount from the treasury to the recipient without any
// prior stake. It can be invoked only by the manager contract.
func RewardRoto(recipient interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckCaller(getManager(ctx))

	transfer(ctx, runtime.GetExecutingScriptHash(), recipient, amount, nil)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// transfer moves amount between balances and produces Transfer notification.
// Recipient contracts other than the treasury receive onNEP17Payment call
// after balances are stored.
func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) {
	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}
	if len(to) != interop.Hash160Len {
		panic(common.ErrInvalidRecipient)
	}

	fromKey := balanceKey(from)
	fromBalance := common.GetInt(ctx, fromKey)
	if fromBalance < amount {
		panic(common.ErrInsufficientBalance)
	}

	if !from.Equals(to) && amount != 0 {
		common.PutInt(ctx, fromKey, fromBalance-amount)

		toKey := balanceKey(to)
		common.PutInt(ctx, toKey, common.GetInt(ctx, toKey)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)

	if to.Equals(runtime.GetExecutingScriptHash()) {
		return
	}
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func getManager(ctx storage.Context) interop.Hash160 {
	return common.GetHash160(ctx, managerKey)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}
