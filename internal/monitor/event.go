package monitor

import (
	"github.com/noosphere-labs/compute-agent/internal/chain"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

// eventFromLog normalizes a coordinator log into a ledger row. Status and
// timestamps are assigned by the ledger on insert.
func eventFromLog(log chain.RequestStartedLog) model.RequestEvent {
	return model.RequestEvent{
		RequestID:      log.RequestID.Hex(),
		SubscriptionID: log.SubscriptionID,
		Interval:       log.Interval,
		BlockNumber:    log.BlockNumber,
		BlockTime:      log.BlockTime,
		ContainerID:    log.ContainerID.Hex(),
		Redundancy:     log.Redundancy,
		FeeAmount:      log.FeeAmount,
		FeeToken:       log.FeeToken.Hex(),
		Verifier:       log.Verifier.Hex(),
		WalletAddress:  log.Wallet.Hex(),
	}
}
