package facades

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"google.golang.org/grpc"
)

const walletExecuteMethod = "/wallet.WalletService/Execute"

// WalletGRPCFacade forwards wallet payloads to the wallet executor service.
type WalletGRPCFacade struct {
	conn grpc.ClientConnInterface
}

// NewWalletGRPCFacade creates a new facade over conn.
func NewWalletGRPCFacade(conn grpc.ClientConnInterface) *WalletGRPCFacade {
	return &WalletGRPCFacade{conn: conn}
}

// Call executes payload in wallet. The payload is opaque to this service.
func (f *WalletGRPCFacade) Call(ctx context.Context, wallet common.Address, payload []byte) error {
	err := invoke(ctx, f.conn, walletExecuteMethod, map[string]any{
		"wallet":  wallet.Hex(),
		"payload": hexutil.Encode(payload),
	})
	if err != nil {
		logger.Log.Errorw("wallet call via gRPC failed", "wallet", wallet.Hex(), "error", err)
		return err
	}
	return nil
}
