package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/roto-network/roto-contract/rpc/manager"
	"github.com/roto-network/roto-contract/rpc/token"
	"go.uber.org/zap"
)

// filter selects contracts whose notifications are printed. Zero token
// disables ledger notifications.
type filter struct {
	manager util.Uint160
	token   util.Uint160
}

// printer logs decoded Roto notifications.
type printer struct {
	log    *zap.Logger
	filter filter

	count int
}

func newPrinter(l *zap.Logger, f filter) *printer {
	return &printer{log: l, filter: f}
}

// print logs every notification of the tracked contracts from the successful
// executions of the application log. Faulted executions emit nothing.
func (p *printer) print(height uint32, appLog *result.ApplicationLog) error {
	for _, ex := range appLog.Executions {
		if ex.VMState != vmstate.Halt {
			continue
		}

		for i := range ex.Events {
			ev := &ex.Events[i]

			var (
				fields []zap.Field
				err    error
			)

			switch {
			case ev.ScriptHash.Equals(p.filter.manager):
				fields, err = managerEventFields(ev)
			case !p.filter.token.Equals(util.Uint160{}) && ev.ScriptHash.Equals(p.filter.token):
				fields, err = tokenEventFields(ev)
			default:
				continue
			}

			if err != nil {
				return fmt.Errorf("decode %s notification in tx %s: %w", ev.Name, appLog.Container.StringLE(), err)
			}

			p.count++
			p.log.Info(ev.Name, append([]zap.Field{
				zap.Uint32("block", height),
				zap.String("tx", appLog.Container.StringLE()),
				zap.String("contract", address.Uint160ToString(ev.ScriptHash)),
			}, fields...)...)
		}
	}

	return nil
}

// eventDecoder is implemented by notification types of the RPC bindings.
type eventDecoder interface {
	FromStackItem(*stackitem.Array) error
}

func decode(ev *state.NotificationEvent, d eventDecoder) error {
	return d.FromStackItem(ev.Item)
}

func managerEventFields(ev *state.NotificationEvent) ([]zap.Field, error) {
	switch ev.Name {
	case "TokenChanged":
		var e manager.TokenChangedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{addressField("token", e.Token)}, nil
	case "TournamentCreated":
		var e manager.TournamentCreatedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			zap.Stringer("etherPrize", e.EtherPrize),
			zap.Stringer("rotoPrize", e.RotoPrize),
		}, nil
	case "TournamentFunded":
		var e manager.TournamentFundedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			zap.Stringer("amount", e.Amount),
		}, nil
	case "StakeProcessed":
		var e manager.StakeProcessedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			addressField("staker", e.Staker),
			zap.Stringer("totalAmountStaked", e.TotalAmountStaked),
		}, nil
	case "StakeReleased":
		var e manager.StakeReleasedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			addressField("staker", e.StakerAddress),
			zap.Stringer("etherReward", e.EtherReward),
			zap.Stringer("rotoStaked", e.RotoStaked),
		}, nil
	case "StakeDestroyed":
		var e manager.StakeDestroyedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			addressField("staker", e.StakerAddress),
			zap.Stringer("rotoLost", e.RotoLost),
		}, nil
	case "SubmissionRewarded":
		var e manager.SubmissionRewardedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			zap.String("tournament", e.TournamentID.StringBE()),
			addressField("recipient", e.StakerAddress),
			zap.Stringer("rotoReward", e.RotoReward),
		}, nil
	default:
		return []zap.Field{zap.Any("items", ev.Item.Value())}, nil
	}
}

func tokenEventFields(ev *state.NotificationEvent) ([]zap.Field, error) {
	switch ev.Name {
	case "Transfer":
		var e token.TransferEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			addressField("from", e.From),
			addressField("to", e.To),
			zap.Stringer("amount", e.Amount),
		}, nil
	case "Approval":
		var e token.ApprovalEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			addressField("owner", e.Owner),
			addressField("spender", e.Spender),
			zap.Stringer("amount", e.Amount),
		}, nil
	case "ManagerSet":
		var e token.ManagerSetEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{addressField("manager", e.Manager)}, nil
	case "Destroyed":
		var e token.DestroyedEvent
		if err := decode(ev, &e); err != nil {
			return nil, err
		}
		return []zap.Field{
			addressField("staker", e.Staker),
			zap.Stringer("amount", e.Amount),
		}, nil
	default:
		return []zap.Field{zap.Any("items", ev.Item.Value())}, nil
	}
}

// addressField renders zero hash as empty string, that's what initial
// emission carries as a sender.
func addressField(key string, u util.Uint160) zap.Field {
	if u.Equals(util.Uint160{}) {
		return zap.String(key, "")
	}
	return zap.String(key, address.Uint160ToString(u))
}
