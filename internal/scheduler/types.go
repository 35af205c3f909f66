// Package scheduler advances tracked subscriptions through their intervals,
// submitting one commitment transaction per due (subscription, interval).
package scheduler

import (
	"context"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/chain"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SubscriptionSource interface {
		Subscription(ctx context.Context, id uint64) (model.Subscription, error)
		ActiveSubscriptionIDs(ctx context.Context) ([]uint64, error)
	}
	Committer interface {
		PrepareNextInterval(ctx context.Context, subscriptionID uint64, interval uint32) (*chain.TxResult, error)
	}
	CommitStore interface {
		CommittedIntervalKeys(ctx context.Context, subscriptionIDs []uint64) (map[model.IntervalKey]struct{}, error)
		InsertPrepareTransaction(ctx context.Context, tx model.PrepareTransaction) error
	}
	Metrics interface {
		ObserveSync(err error, tracked int, started time.Time)
		ObserveCommit(err error, started time.Time)
	}
)
