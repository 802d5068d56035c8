package token

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestTransferEventsFromApplicationLog(t *testing.T) {
	_, err := TransferEventsFromApplicationLog(nil)
	require.Error(t, err)

	from := util.Uint160{1, 2, 3}
	to := util.Uint160{4, 5, 6}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Null{},
						stackitem.NewByteArray(to.BytesBE()),
						stackitem.Make(21),
					}),
				},
				{
					Name: "Approval",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(from.BytesBE()),
						stackitem.NewByteArray(to.BytesBE()),
						stackitem.Make(5),
					}),
				},
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(from.BytesBE()),
						stackitem.NewByteArray(to.BytesBE()),
						stackitem.Make(10),
					}),
				},
			},
		}},
	}

	transfers, err := TransferEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	require.Equal(t, util.Uint160{}, transfers[0].From)
	require.Equal(t, to, transfers[0].To)
	require.Equal(t, big.NewInt(21), transfers[0].Amount)
	require.Equal(t, from, transfers[1].From)
	require.Equal(t, to, transfers[1].To)
	require.Equal(t, big.NewInt(10), transfers[1].Amount)

	approvals, err := ApprovalEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	require.Equal(t, from, approvals[0].Owner)
	require.Equal(t, to, approvals[0].Spender)
	require.Equal(t, big.NewInt(5), approvals[0].Amount)

	destroyed, err := DestroyedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, destroyed)

	log.Executions[0].Events[2].Item = stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(from.BytesBE()),
		stackitem.Make(10),
	})
	_, err = TransferEventsFromApplicationLog(log)
	require.Error(t, err)
}

func TestDestroyedEvent_FromStackItem(t *testing.T) {
	staker := util.Uint160{7}

	var e DestroyedEvent
	require.Error(t, e.FromStackItem(nil))
	require.Error(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(staker.BytesBE()),
	})))
	require.Error(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte{1, 2, 3}),
		stackitem.Make(1),
	})))

	require.NoError(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(staker.BytesBE()),
		stackitem.Make(42),
	})))
	require.Equal(t, staker, e.Staker)
	require.Equal(t, big.NewInt(42), e.Amount)
}

func TestManagerSetEvent_FromStackItem(t *testing.T) {
	manager := util.Uint160{9, 9}

	var e ManagerSetEvent
	require.NoError(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(manager.BytesBE()),
	})))
	require.Equal(t, manager, e.Manager)
}
