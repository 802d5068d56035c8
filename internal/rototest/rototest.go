// Package rototest provides fixtures for testing Roto contracts on a
// single-node neotest chain.
package rototest

import (
	"encoding/json"
	"math/big"
	"math/rand"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Decimals is ROTO precision.
const Decimals = 18

// TotalSupply is the whole ROTO supply in fractional units.
var TotalSupply = Roto(21_000_000)

// Env groups deployed Roto contracts. Invokers are signed by the committee,
// which deploys and therefore owns both contracts.
type Env struct {
	*neotest.Executor

	Token   *neotest.ContractInvoker
	Manager *neotest.ContractInvoker
	GAS     *neotest.ContractInvoker
}

// Options configure NewEnv.
type Options struct {
	// ContractsDir is a path to the directory with token and manager
	// contracts relative to the test.
	ContractsDir string
	// SkipBootstrap leaves both contracts without registered peers.
	SkipBootstrap bool
	// StrictFunding is passed to the manager deployment.
	StrictFunding bool
}

// NewExecutor creates executor over a new single-node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// CompileToken compiles token contract from dir/token.
func CompileToken(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	p := path.Join(dir, "token")
	return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
}

// CompileManager compiles manager contract from dir/manager.
func CompileManager(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	p := path.Join(dir, "manager")
	return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
}

// CompileUpgrade compiles update replacement of the named contract
// ("token" or "manager") from dir/internal/testcontracts/upgrade, where dir is
// the module root relative to the test.
func CompileUpgrade(t testing.TB, e *neotest.Executor, dir, name string) *neotest.Contract {
	p := path.Join(dir, "internal", "testcontracts", "upgrade", name)
	return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
}

// UpdateArgs returns NEF and JSON manifest of the compiled contract in the
// form accepted by update methods.
func UpdateArgs(t testing.TB, c *neotest.Contract) ([]byte, []byte) {
	bNEF, err := c.NEF.Bytes()
	require.NoError(t, err)
	jManifest, err := json.Marshal(c.Manifest)
	require.NoError(t, err)
	return bNEF, jManifest
}

// NewEnv deploys token and manager contracts and, unless told otherwise,
// registers them in each other.
func NewEnv(t testing.TB, opts Options) *Env {
	e := NewExecutor(t)

	ctrToken := CompileToken(t, e, opts.ContractsDir)
	ctrManager := CompileManager(t, e, opts.ContractsDir)

	e.DeployContract(t, ctrToken, nil)

	var managerData any
	if opts.StrictFunding {
		managerData = []any{true}
	}
	e.DeployContract(t, ctrManager, managerData)

	env := &Env{
		Executor: e,
		Token:    e.CommitteeInvoker(ctrToken.Hash),
		Manager:  e.CommitteeInvoker(ctrManager.Hash),
		GAS:      e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)),
	}

	if !opts.SkipBootstrap {
		env.Manager.Invoke(t, stackitem.Null{}, "setTokenContract", ctrToken.Hash)
		env.Token.Invoke(t, stackitem.Null{}, "setManagerContract", ctrManager.Hash)
	}

	return env
}

// NewStaker creates a new account funded with GAS and given ROTO amount
// taken from the treasury.
func (e *Env) NewStaker(t testing.TB, roto *big.Int) neotest.Signer {
	acc := e.NewAccount(t)
	if roto.Sign() > 0 {
		e.Token.Invoke(t, stackitem.Null{}, "transferFromContract", acc.ScriptHash(), roto)
	}
	return acc
}

// RotoBalance returns ROTO balance of the account.
func (e *Env) RotoBalance(t testing.TB, acc neotest.Signer) *big.Int {
	return e.rotoBalanceOf(t, acc.ScriptHash().BytesBE())
}

// TreasuryBalance returns ROTO balance of the token contract itself.
func (e *Env) TreasuryBalance(t testing.TB) *big.Int {
	return e.rotoBalanceOf(t, e.Token.Hash.BytesBE())
}

func (e *Env) rotoBalanceOf(t testing.TB, account []byte) *big.Int {
	stack, err := e.Token.TestInvoke(t, "balanceOf", account)
	if err != nil {
		t.Fatalf("balanceOf: %v", err)
	}
	v, err := stack.Pop().Item().TryInteger()
	if err != nil {
		t.Fatalf("balanceOf result: %v", err)
	}
	return v
}

// NewTournament creates a tournament with a random ID, funding its pool with
// attached GAS taken from the committee.
func (e *Env) NewTournament(t testing.TB, etherPrize, rotoPrize *big.Int, attached int64) []byte {
	id := RandomID()
	e.Manager.Invoke(t, stackitem.Null{}, "createTournament", id, etherPrize, rotoPrize, attached)
	return id
}

// CheckEvent checks that transaction h produced notification with the given
// name and items in the contract.
func (e *Env) CheckEvent(t testing.TB, h util.Uint256, contract util.Uint160, name string, items ...stackitem.Item) {
	aer := e.CheckHalt(t, h)
	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(contract) && ev.Name == name {
			require.Equal(t, stackitem.NewArray(items), ev.Item)
			return
		}
	}
	require.Failf(t, "missing notification", "%s is not emitted by %s", name, contract.StringLE())
}

// InvokeScoped invokes contract method in a transaction signed by acc with
// the given witness scope. Invokers always sign with Global scope.
func (e *Env) InvokeScoped(t testing.TB, acc neotest.Signer, scope transaction.Signer,
	hash util.Uint160, method string, args ...any) util.Uint256 {
	tx := e.NewUnsignedTx(t, hash, method, args...)
	scope.Account = acc.ScriptHash()
	tx.Signers = []transaction.Signer{scope}
	neotest.AddNetworkFee(e.Chain, tx, acc)
	neotest.AddSystemFee(e.Chain, tx, -1)
	require.NoError(t, acc.SignTx(e.Chain.GetConfig().Magic, tx))
	e.AddNewBlock(t, tx)
	return tx.Hash()
}

// GASBalance returns GAS balance of the account.
func (e *Env) GASBalance(h util.Uint160) *big.Int {
	return e.Chain.GetUtilityTokenBalance(h)
}

// Roto converts whole ROTO to fractional units.
func Roto(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil))
}

// GAS converts whole GAS to fractional units.
func GAS(n int64) int64 {
	return n * 1_0000_0000
}

// RandomID returns random 32-byte tournament ID.
func RandomID() []byte {
	id := make([]byte, 32)
	rand.Read(id) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return id
}
