package facades

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"google.golang.org/grpc"
)

const aggregatorSwapMethod = "/aggregator.AggregatorService/Swap"

// AggregatorGRPCFacade asks the aggregator service to run a buy-back swap.
type AggregatorGRPCFacade struct {
	conn      grpc.ClientConnInterface
	recipient common.Address
}

// NewAggregatorGRPCFacade creates a new facade over conn. Proceeds are
// delivered to recipient.
func NewAggregatorGRPCFacade(conn grpc.ClientConnInterface, recipient common.Address) *AggregatorGRPCFacade {
	return &AggregatorGRPCFacade{conn: conn, recipient: recipient}
}

// Swap hands amount of funding to aggregator together with the swap payload.
func (f *AggregatorGRPCFacade) Swap(ctx context.Context, aggregator common.Address, payload []byte, funding models.Asset, amount *uint256.Int) error {
	err := invoke(ctx, f.conn, aggregatorSwapMethod, map[string]any{
		"aggregator": aggregator.Hex(),
		"payload":    hexutil.Encode(payload),
		"funding":    funding.String(),
		"amount":     models.AmountOrZero(amount).Dec(),
		"recipient":  f.recipient.Hex(),
	})
	if err != nil {
		logger.Log.Errorw("aggregator swap via gRPC failed", "aggregator", aggregator.Hex(), "funding", funding.String(), "error", err)
		return err
	}
	return nil
}
