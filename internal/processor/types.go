// Package processor drives observed request events through their lifecycle:
// claim, container execution, on-chain fulfillment.
package processor

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/noosphere-labs/compute-agent/internal/chain"
	"github.com/noosphere-labs/compute-agent/internal/container"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RequestLedger interface {
		PendingEvents(ctx context.Context, limit uint64) ([]model.RequestEvent, error)
		ProcessingEvents(ctx context.Context, limit uint64) ([]model.RequestEvent, error)
		IsEventProcessed(ctx context.Context, requestID string) (bool, error)
		MarkProcessing(ctx context.Context, requestID, input string) (bool, error)
		MarkCompleted(ctx context.Context, requestID, txHash string, gasUsed uint64, gasCost *big.Int, output string) (bool, error)
		MarkFailed(ctx context.Context, requestID, reason string) (bool, error)
		MarkSkipped(ctx context.Context, requestID, reason string) (bool, error)
		MarkExpired(ctx context.Context, requestID, reason string) (bool, error)
		FixInconsistentEventStatuses(ctx context.Context) (int, error)
		RevertProcessingToPending(ctx context.Context, requestID string) error
	}
	Fulfiller interface {
		FulfillRequest(ctx context.Context, requestID common.Hash, output, proof []byte) (*chain.TxResult, error)
	}
	SubscriptionReader interface {
		Subscription(ctx context.Context, id uint64) (model.Subscription, error)
	}
	ContainerResolver interface {
		Resolve(containerID string) (container.Descriptor, bool)
	}
	ContainerRunner interface {
		Run(ctx context.Context, desc container.Descriptor, req container.RunRequest) (string, error)
	}
	Metrics interface {
		ObserveFetchPending(err error, started time.Time)
		ObserveRequest(result string, started time.Time)
	}
)
