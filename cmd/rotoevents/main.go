package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	managerAddr := flag.String("manager", "", "Address or LE hash of the Roto manager contract")
	tokenAddr := flag.String("token", "", "Address or LE hash of the Roto token contract (optional)")
	fromBlock := flag.Uint("from", 0, "First block to scan")
	toBlock := flag.Uint("to", 0, "Last block to scan, latest one if zero")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *managerAddr == "":
		log.Fatal("missing manager contract")
	case *toBlock != 0 && *toBlock < *fromBlock:
		log.Fatal("block range is empty")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	var f filter

	f.manager, err = parseContract(*managerAddr)
	if err != nil {
		logger.Fatal("invalid manager contract", zap.Error(err))
	}

	if *tokenAddr != "" {
		f.token, err = parseContract(*tokenAddr)
		if err != nil {
			logger.Fatal("invalid token contract", zap.Error(err))
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b, err := newRemoteBlockChain(ctx, *neoRPCEndpoint)
	if err != nil {
		logger.Fatal("init remote blockchain", zap.Error(err))
	}

	defer b.close()

	last := uint32(*toBlock)
	if last == 0 {
		last = b.currentBlock - 1
	}

	p := newPrinter(logger, f)

	err = b.iterateApplicationLogs(ctx, uint32(*fromBlock), last, p.print)
	if err != nil {
		logger.Fatal("scan blocks", zap.Error(err))
	}

	logger.Info("Roto notifications are successfully scanned",
		zap.Uint("from", *fromBlock), zap.Uint32("to", last), zap.Int("events", p.count))
}

// parseContract accepts either Neo address or hex-encoded LE script hash.
func parseContract(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}

	u, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("neither address nor script hash: %s", s)
	}

	return u, nil
}
