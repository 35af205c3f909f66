package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	// RPCMetrics records duration and outcome of backend RPC operations.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedBackend wraps a Backend, recording metrics for every RPC call.
type ObservedBackend struct {
	backend Backend
	metrics RPCMetrics
}

// NewObservedBackend decorates backend with rpcMetrics.
func NewObservedBackend(backend Backend, rpcMetrics RPCMetrics) *ObservedBackend {
	return &ObservedBackend{
		backend: backend,
		metrics: rpcMetrics,
	}
}

func (b *ObservedBackend) BlockNumber(ctx context.Context) (n uint64, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("block_number", err, started)
	}()
	return b.backend.BlockNumber(ctx)
}

func (b *ObservedBackend) HeaderByNumber(ctx context.Context, number *big.Int) (h *types.Header, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("header_by_number", err, started)
	}()
	return b.backend.HeaderByNumber(ctx, number)
}

func (b *ObservedBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) (logs []types.Log, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("filter_logs", err, started)
	}()
	return b.backend.FilterLogs(ctx, q)
}

func (b *ObservedBackend) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (sub ethereum.Subscription, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("subscribe_new_head", err, started)
	}()
	return b.backend.SubscribeNewHead(ctx, ch)
}

func (b *ObservedBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("call_contract", err, started)
	}()
	return b.backend.CallContract(ctx, msg, blockNumber)
}

func (b *ObservedBackend) PendingNonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("pending_nonce_at", err, started)
	}()
	return b.backend.PendingNonceAt(ctx, account)
}

func (b *ObservedBackend) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("suggest_gas_price", err, started)
	}()
	return b.backend.SuggestGasPrice(ctx)
}

func (b *ObservedBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("estimate_gas", err, started)
	}()
	return b.backend.EstimateGas(ctx, msg)
}

func (b *ObservedBackend) SendTransaction(ctx context.Context, tx *types.Transaction) (err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("send_transaction", err, started)
	}()
	return b.backend.SendTransaction(ctx, tx)
}

func (b *ObservedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (r *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		b.metrics.Observe("transaction_receipt", err, started)
	}()
	return b.backend.TransactionReceipt(ctx, txHash)
}
