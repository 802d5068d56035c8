package manager

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestManagerTournament_FromStackItem(t *testing.T) {
	var tour ManagerTournament

	require.Error(t, tour.FromStackItem(stackitem.Make(1)))
	require.Error(t, tour.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(1), stackitem.Make(2),
	})))

	require.NoError(t, tour.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(12), stackitem.Make(5), stackitem.Make(10), stackitem.Make(0),
	})))
	require.Equal(t, big.NewInt(12), tour.EtherPrize)
	require.Equal(t, big.NewInt(5), tour.RotoPrize)
	require.Equal(t, big.NewInt(10), tour.Pool)
	require.Zero(t, tour.Staked.Sign())

	_, err := itemToManagerTournament(nil, stackitem.ErrInvalidValue)
	require.ErrorIs(t, err, stackitem.ErrInvalidValue)
}

func TestStakeEventsFromApplicationLog(t *testing.T) {
	id := util.Uint256{0xaa, 0xbb}
	staker := util.Uint160{1, 2, 3}

	log := &result.ApplicationLog{
		Executions: []state.Execution{
			{
				Events: []state.NotificationEvent{{
					Name: "StakeProcessed",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.NewByteArray(id.BytesBE()),
						stackitem.NewByteArray(staker.BytesBE()),
						stackitem.Make(10),
					}),
				}},
			},
			{
				Events: []state.NotificationEvent{
					{
						Name: "StakeReleased",
						Item: stackitem.NewArray([]stackitem.Item{
							stackitem.NewByteArray(id.BytesBE()),
							stackitem.NewByteArray(staker.BytesBE()),
							stackitem.Make(2),
							stackitem.Make(10),
						}),
					},
					{
						Name: "StakeProcessed",
						Item: stackitem.NewArray([]stackitem.Item{
							stackitem.NewByteArray(id.BytesBE()),
							stackitem.NewByteArray(staker.BytesBE()),
							stackitem.Make(3),
						}),
					},
				},
			},
		},
	}

	processed, err := StakeProcessedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, processed, 2)
	require.Equal(t, id, processed[0].TournamentID)
	require.Equal(t, staker, processed[0].Staker)
	require.Equal(t, big.NewInt(10), processed[0].TotalAmountStaked)
	require.Equal(t, big.NewInt(3), processed[1].TotalAmountStaked)

	released, err := StakeReleasedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, released, 1)
	require.Equal(t, big.NewInt(2), released[0].EtherReward)
	require.Equal(t, big.NewInt(10), released[0].RotoStaked)

	destroyed, err := StakeDestroyedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, destroyed)
}

func TestTournamentCreatedEvent_FromStackItem(t *testing.T) {
	var e TournamentCreatedEvent

	require.Error(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte{1, 2, 3}),
		stackitem.Make(12),
		stackitem.Make(5),
	})))

	id := util.Uint256{1}
	require.NoError(t, e.FromStackItem(stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(id.BytesBE()),
		stackitem.Make(12),
		stackitem.Make(5),
	})))
	require.Equal(t, id, e.TournamentID)
	require.Equal(t, big.NewInt(12), e.EtherPrize)
	require.Equal(t, big.NewInt(5), e.RotoPrize)
}
