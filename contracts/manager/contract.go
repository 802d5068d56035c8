package manager

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/roto-network/roto-contract/common"
)

// Tournament structure stores escrow state of a single tournament.
type Tournament struct {
	// Declared GAS prize, informational unless strict funding is enabled
	EtherPrize int
	// Declared ROTO prize, informational
	RotoPrize int
	// GAS held by the contract for this tournament
	Pool int
	// Sum of active stakes
	Staked int
}

const (
	ownerKey         = 'o'
	tokenKey         = 't'
	strictFundingKey = 'f'
	pendingPullKey   = 'p'

	tournamentPrefix = 'T'
	stakePrefix      = 'S'

	// fundingMarker is passed as transfer data when the contract pulls
	// tournament funds from the owner. OnNEP17Payment accepts it only for
	// the pull pending in CreateTournament.
	fundingMarker = "\x52\x4f\x54\x4f"
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

	if data != nil {
		args := data.(struct {
			strictFunding bool
		})
		storage.Put(ctx, strictFundingKey, args.strictFunding)
	}

	runtime.Log("roto manager initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(Owner())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("roto manager updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Data must contain ID of the existing tournament, transferred GAS is added
// to its prize pool. Funding marker data is accepted only from the owner
// while CreateTournament pulls attached GAS.
//
// It produces TournamentFunded notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS can be accepted for tournament funding")
	}

	if data == nil {
		panic(common.ErrInvalidTournamentID)
	}

	id := data.(interop.Hash256)
	if string(id) == fundingMarker {
		ctx := storage.GetContext()
		if !from.Equals(Owner()) || common.GetInt(ctx, pendingPullKey) != amount {
			panic(common.ErrInvalidTournamentID)
		}
		storage.Delete(ctx, pendingPullKey)
		return
	}

	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	t := getTournament(ctx, id)
	t.Pool += amount
	common.SetSerialized(ctx, tournamentKey(id), t)

	runtime.Notify("TournamentFunded", id, amount)
}

// Owner returns the account that deployed the contract.
func Owner() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), ownerKey)
}

// SetTokenContract registers Roto token contract which holds staked units.
// It can be set once and only by the contract owner.
//
// It produces TokenChanged notification.
func SetTokenContract(token interop.Hash160) {
	ctx := storage.GetContext()

	if storage.Get(ctx, tokenKey) != nil {
		panic(common.ErrAlreadySet)
	}

	common.CheckOwnerWitness(Owner())

	if len(token) != interop.Hash160Len {
		panic(common.ErrInvalidRecipient)
	}

	storage.Put(ctx, tokenKey, token)

	runtime.Log("token contract registered")
	runtime.Notify("TokenChanged", token)
}

// GetToken returns the registered token contract or nil.
func GetToken() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), tokenKey)
}

// CreateTournament registers a new tournament and moves attached GAS from the
// owner account to the contract as the tournament prize pool. It can be
// invoked only by the contract owner.
//
// Non-zero attached amount is transferred by the GAS contract on behalf of
// the owner, so the owner's witness must be valid there too: Global scope or
// CalledByEntry with GAS in CustomContracts. CalledByEntry alone fails with
// ErrAttachedFundsTransfer. Alternatively, create the tournament with zero
// attached amount and transfer GAS with the tournament ID as data.
//
// If the contract is deployed with strict funding, attached GAS must cover
// etherPrize.
//
// It produces TournamentCreated notification.
func CreateTournament(id interop.Hash256, etherPrize, rotoPrize, attached int) {
	ctx := storage.GetContext()
	owner := Owner()

	common.CheckOwnerWitness(owner)

	checkTournamentID(id)
	if etherPrize < 0 || rotoPrize < 0 || attached < 0 {
		panic(common.ErrInvalidAmount)
	}

	key := tournamentKey(id)
	if storage.Get(ctx, key) != nil {
		panic(common.ErrDuplicateTournament)
	}

	strict := storage.Get(ctx, strictFundingKey)
	if strict != nil && strict.(bool) && attached < etherPrize {
		panic(common.ErrInsufficientAttachedFunds)
	}

	common.SetSerialized(ctx, key, Tournament{
		EtherPrize: etherPrize,
		RotoPrize:  rotoPrize,
		Pool:       attached,
	})

	if attached > 0 {
		storage.Put(ctx, pendingPullKey, attached)
		if !gas.Transfer(owner, runtime.GetExecutingScriptHash(), attached, fundingMarker) {
			panic(common.ErrAttachedFundsTransfer)
		}
	}

	runtime.Log("tournament created")
	runtime.Notify("TournamentCreated", id, etherPrize, rotoPrize)
}

// GetTournament returns escrow state of the tournament.
func GetTournament(id interop.Hash256) Tournament {
	return getTournament(storage.GetReadOnlyContext(), id)
}

// StakeOf returns ROTO amount currently staked by the staker in the
// tournament.
func StakeOf(tournamentID interop.Hash256, staker interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), stakeKey(tournamentID, staker))
}

// Stake moves amount of staker's ROTO into the token treasury against the
// tournament. It can be invoked only by the staker. Stakes are cumulative
// until resolved, the new total is returned.
//
// It produces StakeProcessed notification.
func Stake(staker interop.Hash160, amount int, tournamentID interop.Hash256) int {
	ctx := storage.GetContext()

	common.CheckWitness(staker)

	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}

	t := getTournament(ctx, tournamentID)
	token := getToken(ctx)

	if !contract.Call(token, "canStake", contract.ReadOnly, staker, amount).(bool) {
		panic(common.ErrInsufficientBalance)
	}

	key := stakeKey(tournamentID, staker)
	total := common.GetInt(ctx, key) + amount
	common.PutInt(ctx, key, total)

	t.Staked += amount
	common.SetSerialized(ctx, tournamentKey(tournamentID), t)

	contract.Call(token, "stakeRoto", contract.All, staker, amount)

	runtime.Notify("StakeProcessed", tournamentID, staker, total)
	return total
}

// ReleaseRoto returns the whole stake of the staker and pays etherReward GAS
// from the tournament pool. It can be invoked only by the contract owner.
//
// It produces StakeReleased notification.
func ReleaseRoto(staker interop.Hash160, tournamentID interop.Hash256, etherReward int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(Owner())

	if etherReward < 0 {
		panic(common.ErrInvalidAmount)
	}

	t := getTournament(ctx, tournamentID)
	token := getToken(ctx)

	key := stakeKey(tournamentID, staker)
	staked := common.GetInt(ctx, key)
	if staked == 0 {
		panic(common.ErrNoActiveStake)
	}

	if etherReward > t.Pool {
		panic(common.ErrInsufficientEscrow)
	}

	// state is finalized before any external call
	storage.Delete(ctx, key)
	t.Pool -= etherReward
	t.Staked -= staked
	common.SetSerialized(ctx, tournamentKey(tournamentID), t)

	contract.Call(token, "releaseRoto", contract.All, staker, staked)

	if etherReward > 0 {
		if !gas.Transfer(runtime.GetExecutingScriptHash(), staker, etherReward, nil) {
			panic("failed to transfer GAS reward, aborting")
		}
	}

	runtime.Notify("StakeReleased", tournamentID, staker, etherReward, staked)
}

// DestroyRoto forfeits the whole stake of the staker. Forfeited ROTO stays
// in the token treasury. It can be invoked only by the contract owner.
//
// It produces StakeDestroyed notification.
func DestroyRoto(staker interop.Hash160, tournamentID interop.Hash256) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(Owner())

	t := getTournament(ctx, tournamentID)
	token := getToken(ctx)

	key := stakeKey(tournamentID, staker)
	staked := common.GetInt(ctx, key)
	if staked == 0 {
		panic(common.ErrNoActiveStake)
	}

	storage.Delete(ctx, key)
	t.Staked -= staked
	common.SetSerialized(ctx, tournamentKey(tournamentID), t)

	contract.Call(token, "destroyRoto", contract.All, staker, staked)

	runtime.Notify("StakeDestroyed", tournamentID, staker, staked)
}

// RewardRoto transfers amount of ROTO from the token treasury to the
// recipient of an unstaked submission. It can be invoked only by the contract
// owner.
//
// It produces SubmissionRewarded notification.
func RewardRoto(recipient interop.Hash160, tournamentID interop.Hash256, amount int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(Owner())

	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}

	getTournament(ctx, tournamentID)
	token := getToken(ctx)

	contract.Call(token, "rewardRoto", contract.All, recipient, amount)

	runtime.Notify("SubmissionRewarded", tournamentID, recipient, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getTournament(ctx storage.Context, id interop.Hash256) Tournament {
	checkTournamentID(id)

	data := storage.Get(ctx, tournamentKey(id))
	if data == nil {
		panic(common.ErrUnknownTournament)
	}

	return std.Deserialize(data.([]byte)).(Tournament)
}

func getToken(ctx storage.Context) interop.Hash160 {
	h := common.GetHash160(ctx, tokenKey)
	if h == nil {
		panic(common.ErrTokenNotSet)
	}
	return h
}

func checkTournamentID(id interop.Hash256) {
	if len(id) != interop.Hash256Len {
		panic(common.ErrInvalidTournamentID)
	}
}

func tournamentKey(id interop.Hash256) []byte {
	return append([]byte{tournamentPrefix}, id...)
}

func stakeKey(id interop.Hash256, staker interop.Hash160) []byte {
	key := append([]byte{stakePrefix}, id...)
	return append(key, staker...)
}
