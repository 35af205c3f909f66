// Package chain defines the capabilities the agent needs from the blockchain:
// a log source for request events, a head source for chain position, and
// transaction sinks for fulfillment and interval commitments.
package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// RequestStartedLog is one normalized RequestStarted event from the
// coordinator contract.
type RequestStartedLog struct {
	RequestID      common.Hash
	SubscriptionID uint64
	Interval       uint32
	ContainerID    common.Hash
	Redundancy     uint16
	FeeAmount      *big.Int
	FeeToken       common.Address
	Verifier       common.Address
	Wallet         common.Address

	BlockNumber uint64
	BlockTime   time.Time
	TxHash      common.Hash
}

// TxResult describes a mined transaction submitted by the agent.
type TxResult struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	GasPrice    *big.Int
	GasCost     *big.Int
	Success     bool
}

// LogSource reads RequestStarted logs by block range. Implementations must
// return logs in ascending block order within one call.
type LogSource interface {
	FilterRequestStarted(ctx context.Context, fromBlock, toBlock uint64) ([]RequestStartedLog, error)
}

// HeadSource reads the current chain head.
type HeadSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// BlockInfo is the identity of one block.
type BlockInfo struct {
	Number uint64
	Hash   common.Hash
	Time   time.Time
}

// BlockInfoSource resolves a block's hash and timestamp by number.
type BlockInfoSource interface {
	BlockInfo(ctx context.Context, number uint64) (BlockInfo, error)
}

// HeadSignaler optionally pushes new-head notifications. The returned channel
// coalesces bursts; consumers must treat it as a hint, not a count.
type HeadSignaler interface {
	NewHeadSignal(ctx context.Context) (<-chan struct{}, error)
}

// Fulfiller submits a request's output (and verifier proof) on chain.
type Fulfiller interface {
	FulfillRequest(ctx context.Context, requestID common.Hash, output, proof []byte) (*TxResult, error)
}

// Committer advances a subscription to its next interval on chain.
type Committer interface {
	PrepareNextInterval(ctx context.Context, subscriptionID uint64, interval uint32) (*TxResult, error)
}

// SubscriptionReader reads subscription state from the coordinator.
type SubscriptionReader interface {
	Subscription(ctx context.Context, id uint64) (model.Subscription, error)
	ActiveSubscriptionIDs(ctx context.Context) ([]uint64, error)
}
