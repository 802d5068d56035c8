package main

import (
	"context"
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/block"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	testManager = util.Uint160{0xaa}
	testToken   = util.Uint160{0xbb}
	testStaker  = util.Uint160{1, 2, 3}
	testID      = util.Uint256{0xcc}
)

type testChain struct {
	blocks []*block.Block
	logs   map[util.Uint256]*result.ApplicationLog
}

func (c *testChain) GetBlockCount() (uint32, error) {
	return uint32(len(c.blocks)), nil
}

func (c *testChain) GetBlockByIndex(index uint32) (*block.Block, error) {
	if int(index) >= len(c.blocks) {
		return nil, errors.New("unknown block")
	}
	return c.blocks[index], nil
}

func (c *testChain) GetApplicationLog(hash util.Uint256, _ *trigger.Type) (*result.ApplicationLog, error) {
	l, ok := c.logs[hash]
	if !ok {
		return nil, errors.New("unknown transaction")
	}
	return l, nil
}

func (c *testChain) addBlock(execs ...state.Execution) {
	b := new(block.Block)
	for i := range execs {
		tx := transaction.New([]byte{byte(len(c.blocks)), byte(i)}, 0)
		b.Transactions = append(b.Transactions, tx)
		c.logs[tx.Hash()] = &result.ApplicationLog{
			Container:     tx.Hash(),
			IsTransaction: true,
			Executions:    []state.Execution{execs[i]},
		}
	}
	c.blocks = append(c.blocks, b)
}

func newTestChain() *testChain {
	return &testChain{logs: make(map[util.Uint256]*result.ApplicationLog)}
}

func halt(events ...state.NotificationEvent) state.Execution {
	return state.Execution{Trigger: trigger.Application, VMState: vmstate.Halt, Events: events}
}

func notification(contract util.Uint160, name string, items ...stackitem.Item) state.NotificationEvent {
	return state.NotificationEvent{ScriptHash: contract, Name: name, Item: stackitem.NewArray(items)}
}

func stakeProcessed(amount int64) state.NotificationEvent {
	return notification(testManager, "StakeProcessed",
		stackitem.NewByteArray(testID.BytesBE()),
		stackitem.NewByteArray(testStaker.BytesBE()),
		stackitem.Make(amount))
}

func newObservedPrinter(f filter) (*printer, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return newPrinter(zap.New(core), f), logs
}

func TestPrinter(t *testing.T) {
	p, logs := newObservedPrinter(filter{manager: testManager, token: testToken})

	appLog := &result.ApplicationLog{
		Container: util.Uint256{1},
		Executions: []state.Execution{halt(
			notification(testToken, "Transfer",
				stackitem.NewByteArray(testStaker.BytesBE()),
				stackitem.NewByteArray(testToken.BytesBE()),
				stackitem.Make(10)),
			notification(util.Uint160{0xdd}, "Transfer",
				stackitem.Null{},
				stackitem.NewByteArray(testStaker.BytesBE()),
				stackitem.Make(1)),
			stakeProcessed(10),
		)},
	}

	require.NoError(t, p.print(7, appLog))
	require.Equal(t, 2, p.count)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "Transfer", entries[0].Message)
	require.Equal(t, address.Uint160ToString(testStaker), entries[0].ContextMap()["from"])
	require.Equal(t, "10", entries[0].ContextMap()["amount"])

	require.Equal(t, "StakeProcessed", entries[1].Message)
	fields := entries[1].ContextMap()
	require.EqualValues(t, 7, fields["block"])
	require.Equal(t, testID.StringBE(), fields["tournament"])
	require.Equal(t, address.Uint160ToString(testStaker), fields["staker"])
	require.Equal(t, "10", fields["totalAmountStaked"])
	require.Equal(t, address.Uint160ToString(testManager), fields["contract"])
}

func TestPrinter_Filter(t *testing.T) {
	p, logs := newObservedPrinter(filter{manager: testManager})

	appLog := &result.ApplicationLog{
		Executions: []state.Execution{
			halt(notification(testToken, "Destroyed",
				stackitem.NewByteArray(testStaker.BytesBE()),
				stackitem.Make(10))),
			{VMState: vmstate.Fault, Events: []state.NotificationEvent{stakeProcessed(5)}},
		},
	}

	require.NoError(t, p.print(1, appLog))
	require.Zero(t, p.count)
	require.Zero(t, logs.Len())
}

func TestPrinter_InvalidEvent(t *testing.T) {
	p, _ := newObservedPrinter(filter{manager: testManager})

	appLog := &result.ApplicationLog{
		Executions: []state.Execution{halt(notification(testManager, "StakeReleased",
			stackitem.NewByteArray(testID.BytesBE())))},
	}

	require.ErrorContains(t, p.print(1, appLog), "StakeReleased")
}

func TestIterateApplicationLogs(t *testing.T) {
	c := newTestChain()
	c.addBlock()
	c.addBlock(halt(stakeProcessed(1)), halt(stakeProcessed(2)))
	c.addBlock()
	c.addBlock(halt(stakeProcessed(3)))

	b, err := newBlockchain(c)
	require.NoError(t, err)
	require.EqualValues(t, 4, b.currentBlock)

	var heights []uint32
	collect := func(h uint32, _ *result.ApplicationLog) error {
		heights = append(heights, h)
		return nil
	}

	require.NoError(t, b.iterateApplicationLogs(context.Background(), 0, 3, collect))
	require.Equal(t, []uint32{1, 1, 3}, heights)

	heights = nil
	require.NoError(t, b.iterateApplicationLogs(context.Background(), 2, 3, collect))
	require.Equal(t, []uint32{3}, heights)

	require.Error(t, b.iterateApplicationLogs(context.Background(), 0, 4, collect))

	t.Run("printer", func(t *testing.T) {
		p, logs := newObservedPrinter(filter{manager: testManager})
		require.NoError(t, b.iterateApplicationLogs(context.Background(), 0, 3, p.print))
		require.Equal(t, 3, p.count)

		totals := make([]any, 0, 3)
		for _, e := range logs.FilterMessage("StakeProcessed").AllUntimed() {
			totals = append(totals, e.ContextMap()["totalAmountStaked"])
		}
		require.Equal(t, []any{"1", "2", "3"}, totals)
	})

	t.Run("callback error", func(t *testing.T) {
		errStop := errors.New("stop")
		err := b.iterateApplicationLogs(context.Background(), 0, 3, func(uint32, *result.ApplicationLog) error {
			return errStop
		})
		require.ErrorIs(t, err, errStop)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, b.iterateApplicationLogs(ctx, 0, 3, collect), context.Canceled)
	})
}

func TestParseContract(t *testing.T) {
	u, err := parseContract(address.Uint160ToString(testManager))
	require.NoError(t, err)
	require.Equal(t, testManager, u)

	u, err = parseContract("0x" + testManager.StringLE())
	require.NoError(t, err)
	require.Equal(t, testManager, u)

	_, err = parseContract("not a contract")
	require.Error(t, err)
}
