package token_test

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/roto-network/roto-contract/common"
	"github.com/roto-network/roto-contract/internal/rototest"
	"github.com/stretchr/testify/require"
)

const contractsDir = ".."

func newTokenEnv(t *testing.T) *rototest.Env {
	return rototest.NewEnv(t, rototest.Options{ContractsDir: contractsDir, SkipBootstrap: true})
}

func TestToken_Generic(t *testing.T) {
	e := newTokenEnv(t)

	e.Token.Invoke(t, "ROTO", "symbol")
	e.Token.Invoke(t, rototest.Decimals, "decimals")
	e.Token.Invoke(t, rototest.TotalSupply, "totalSupply")
	e.Token.Invoke(t, e.CommitteeHash.BytesBE(), "owner")
	e.Token.Invoke(t, stackitem.Null{}, "getManager")

	require.Equal(t, 0, rototest.TotalSupply.Cmp(e.TreasuryBalance(t)))

	acc := e.NewAccount(t)
	e.Token.Invoke(t, 0, "balanceOf", acc.ScriptHash())
	e.Token.Invoke(t, 0, "allowance", e.CommitteeHash, acc.ScriptHash())
}

func TestToken_TransferFromContract(t *testing.T) {
	e := newTokenEnv(t)

	acc := e.NewAccount(t)
	amount := rototest.Roto(1_000_000)

	e.Token.WithSigners(acc).InvokeFail(t, common.ErrUnauthorized, "transferFromContract", acc.ScriptHash(), amount)
	e.Token.InvokeFail(t, common.ErrInsufficientBalance, "transferFromContract",
		acc.ScriptHash(), new(big.Int).Add(rototest.TotalSupply, big.NewInt(1)))
	e.Token.InvokeFail(t, common.ErrInvalidRecipient, "transferFromContract", []byte{1, 2, 3}, amount)

	h := e.Token.Invoke(t, stackitem.Null{}, "transferFromContract", acc.ScriptHash(), amount)
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: e.Token.Hash,
		Name:       "Transfer",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(e.Token.Hash.BytesBE()),
			stackitem.NewByteArray(acc.ScriptHash().BytesBE()),
			stackitem.NewBigInteger(amount),
		}),
	})

	e.Token.Invoke(t, amount, "balanceOf", acc.ScriptHash())
	require.Equal(t, 0, new(big.Int).Sub(rototest.TotalSupply, amount).Cmp(e.TreasuryBalance(t)))
}

func TestToken_Transfer(t *testing.T) {
	e := newTokenEnv(t)

	from := e.NewStaker(t, rototest.Roto(1_000_000))
	to := e.NewAccount(t)
	cFrom := e.Token.WithSigners(from)
	half := rototest.Roto(500_000)

	cFrom.InvokeFail(t, common.ErrInvalidRecipient, "transfer", from.ScriptHash(), nil, half, nil)
	cFrom.InvokeFail(t, common.ErrInsufficientBalance, "transfer",
		from.ScriptHash(), to.ScriptHash(), rototest.Roto(1_000_001), nil)
	cFrom.InvokeFail(t, common.ErrInvalidAmount, "transfer", from.ScriptHash(), to.ScriptHash(), -1, nil)
	e.Token.WithSigners(to).InvokeFail(t, common.ErrUnauthorized, "transfer",
		from.ScriptHash(), to.ScriptHash(), half, nil)

	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), half, nil)

	e.Token.Invoke(t, half, "balanceOf", from.ScriptHash())
	e.Token.Invoke(t, half, "balanceOf", to.ScriptHash())

	t.Run("to treasury", func(t *testing.T) {
		treasury := new(big.Int).Set(e.TreasuryBalance(t))
		cFrom.Invoke(t, true, "transfer", from.ScriptHash(), e.Token.Hash, half, nil)
		e.Token.Invoke(t, 0, "balanceOf", from.ScriptHash())
		require.Equal(t, 0, new(big.Int).Add(treasury, half).Cmp(e.TreasuryBalance(t)))
	})
}

func TestToken_Allowance(t *testing.T) {
	e := newTokenEnv(t)

	owner := e.NewStaker(t, rototest.Roto(100))
	spender := e.NewAccount(t)
	to := e.NewAccount(t)

	cOwner := e.Token.WithSigners(owner)
	cSpender := e.Token.WithSigners(spender)

	cSpender.InvokeFail(t, common.ErrUnauthorized, "approve", owner.ScriptHash(), spender.ScriptHash(), rototest.Roto(10))
	cOwner.InvokeFail(t, common.ErrInvalidAmount, "approve", owner.ScriptHash(), spender.ScriptHash(), -1)

	h := cOwner.Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender.ScriptHash(), rototest.Roto(10))
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: e.Token.Hash,
		Name:       "Approval",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(owner.ScriptHash().BytesBE()),
			stackitem.NewByteArray(spender.ScriptHash().BytesBE()),
			stackitem.NewBigInteger(rototest.Roto(10)),
		}),
	})
	e.Token.Invoke(t, rototest.Roto(10), "allowance", owner.ScriptHash(), spender.ScriptHash())

	cOwner.InvokeFail(t, common.ErrUnauthorized, "transferFrom",
		owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), rototest.Roto(1))
	cSpender.InvokeFail(t, common.ErrInsufficientAllowance, "transferFrom",
		owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), rototest.Roto(11))

	cSpender.Invoke(t, true, "transferFrom", owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), rototest.Roto(4))
	e.Token.Invoke(t, rototest.Roto(6), "allowance", owner.ScriptHash(), spender.ScriptHash())
	e.Token.Invoke(t, rototest.Roto(96), "balanceOf", owner.ScriptHash())
	e.Token.Invoke(t, rototest.Roto(4), "balanceOf", to.ScriptHash())

	cSpender.Invoke(t, true, "transferFrom", owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), rototest.Roto(6))
	e.Token.Invoke(t, 0, "allowance", owner.ScriptHash(), spender.ScriptHash())
	cSpender.InvokeFail(t, common.ErrInsufficientAllowance, "transferFrom",
		owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), 1)

	t.Run("allowance over balance", func(t *testing.T) {
		cOwner.Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender.ScriptHash(), rototest.Roto(1000))
		cSpender.InvokeFail(t, common.ErrInsufficientBalance, "transferFrom",
			owner.ScriptHash(), spender.ScriptHash(), to.ScriptHash(), rototest.Roto(97))
		e.Token.Invoke(t, rototest.Roto(1000), "allowance", owner.ScriptHash(), spender.ScriptHash())
	})
}

func TestToken_SetManagerContract(t *testing.T) {
	e := newTokenEnv(t)

	acc := e.NewAccount(t)
	cAcc := e.Token.WithSigners(acc)

	cAcc.InvokeFail(t, common.ErrUnauthorized, "setManagerContract", e.Manager.Hash)
	e.Token.InvokeFail(t, common.ErrInvalidRecipient, "setManagerContract", []byte{1})

	h := e.Token.Invoke(t, stackitem.Null{}, "setManagerContract", e.Manager.Hash)
	e.CheckTxNotificationEvent(t, h, 0, state.NotificationEvent{
		ScriptHash: e.Token.Hash,
		Name:       "ManagerSet",
		Item:       stackitem.NewArray([]stackitem.Item{stackitem.NewByteArray(e.Manager.Hash.BytesBE())}),
	})
	e.Token.Invoke(t, e.Manager.Hash.BytesBE(), "getManager")

	e.Token.InvokeFail(t, common.ErrAlreadySet, "setManagerContract", acc.ScriptHash())
	cAcc.InvokeFail(t, common.ErrAlreadySet, "setManagerContract", acc.ScriptHash())
	e.Token.Invoke(t, e.Manager.Hash.BytesBE(), "getManager")
}

func TestToken_RestrictedMethods(t *testing.T) {
	e := newTokenEnv(t)

	staker := e.NewStaker(t, rototest.Roto(100))
	amount := rototest.Roto(10)

	check := func(t *testing.T) {
		for _, method := range []string{"stakeRoto", "releaseRoto", "destroyRoto", "rewardRoto"} {
			e.Token.InvokeFail(t, common.ErrUnauthorized, method, staker.ScriptHash(), amount)
			e.Token.WithSigners(staker).InvokeFail(t, common.ErrUnauthorized, method, staker.ScriptHash(), amount)
		}
		_, err := e.Token.TestInvoke(t, "canStake", staker.ScriptHash(), amount)
		require.ErrorContains(t, err, common.ErrUnauthorized)

		e.Token.Invoke(t, rototest.Roto(100), "balanceOf", staker.ScriptHash())
		require.Equal(t, 0, new(big.Int).Sub(rototest.TotalSupply, rototest.Roto(100)).Cmp(e.TreasuryBalance(t)))
	}

	t.Run("manager is not set", check)

	e.Token.Invoke(t, stackitem.Null{}, "setManagerContract", e.Manager.Hash)
	t.Run("called not by manager", check)
}

func TestToken_Update(t *testing.T) {
	e := newTokenEnv(t)

	nef, manifest := rototest.UpdateArgs(t, rototest.CompileToken(t, e.Executor, contractsDir))

	acc := e.NewAccount(t)
	e.Token.WithSigners(acc).InvokeFail(t, common.ErrUnauthorized, "update", nef, manifest, nil)
	e.Token.InvokeFail(t, common.ErrAlreadyUpdated, "update", nef, manifest, nil)

	nef, manifest = rototest.UpdateArgs(t, rototest.CompileUpgrade(t, e.Executor, path.Join(contractsDir, ".."), "token"))
	e.Token.Invoke(t, stackitem.Null{}, "update", nef, manifest, nil)

	e.Token.Invoke(t, common.Version, "upgradedFrom")
	e.Token.Invoke(t, e.CommitteeHash.BytesBE(), "owner")
}

func TestToken_Version(t *testing.T) {
	e := newTokenEnv(t)

	e.Token.Invoke(t, common.Version, "version")
}
