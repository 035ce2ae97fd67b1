package keeper

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

const (
	labelLocalDeposit  = "local"
	labelRemoteDeposit = "remote"
)

func telemetryReportDeposit(amount sdk.Coins, source string) {
	for _, coin := range amount {
		if !coin.Amount.IsInt64() {
			continue
		}

		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", "crossfund", "deposit"},
			float32(coin.Amount.Int64()),
			[]metrics.Label{
				telemetry.NewLabel("denom", coin.Denom),
				telemetry.NewLabel("source", source),
			},
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"crossfund", "deposits"},
		1,
		[]metrics.Label{telemetry.NewLabel("source", source)},
	)
}

func telemetryReportDistribution(amount sdk.Coins) {
	for _, coin := range amount {
		if !coin.Amount.IsInt64() {
			continue
		}

		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", "crossfund", "distribution"},
			float32(coin.Amount.Int64()),
			[]metrics.Label{telemetry.NewLabel("denom", coin.Denom)},
		)
	}

	telemetry.IncrCounter(1, types.ModuleName, "distributions")
}
