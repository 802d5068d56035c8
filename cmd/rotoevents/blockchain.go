package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/block"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// chainReader is a subset of Neo RPC needed to walk notifications.
type chainReader interface {
	GetBlockCount() (uint32, error)
	GetBlockByIndex(index uint32) (*block.Block, error)
	GetApplicationLog(hash util.Uint256, trig *trigger.Type) (*result.ApplicationLog, error)
}

// wrapper over Neo RPC providing blockchain services needed for current command.
type remoteBlockchain struct {
	rpc chainReader

	closeFn func()

	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(ctx context.Context, blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	b, err := newBlockchain(c)
	if err != nil {
		c.Close()
		return nil, err
	}

	b.closeFn = c.Close

	return b, nil
}

func newBlockchain(c chainReader) (*remoteBlockchain, error) {
	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	if x.closeFn != nil {
		x.closeFn()
	}
}

// iterateApplicationLogs fetches application logs of all transactions from
// blocks [from, to] and passes them into f in chain order.
// iterateApplicationLogs breaks on any f's error or context cancellation and
// returns it.
func (x *remoteBlockchain) iterateApplicationLogs(ctx context.Context, from, to uint32, f func(height uint32, log *result.ApplicationLog) error) error {
	if to >= x.currentBlock {
		return fmt.Errorf("block #%d is beyond the chain height %d", to, x.currentBlock)
	}

	trig := trigger.Application

	for h := from; h <= to; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := x.rpc.GetBlockByIndex(h)
		if err != nil {
			return fmt.Errorf("get block #%d: %w", h, err)
		}

		for _, tx := range b.Transactions {
			appLog, err := x.rpc.GetApplicationLog(tx.Hash(), &trig)
			if err != nil {
				return fmt.Errorf("get application log of tx %s: %w", tx.Hash().StringLE(), err)
			}

			err = f(h, appLog)
			if err != nil {
				return err
			}
		}

		if h == to {
			// avoids overflow on math.MaxUint32
			break
		}
	}

	return nil
}
