package chain

import (
	"context"
	"time"

	"favorites-tx/internal/config"

	"github.com/avast/retry-go"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

// BlockhashSource is the one RPC capability the builder needs. *rpc.Client
// satisfies it.
type BlockhashSource interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
}

var _ BlockhashSource = (*rpc.Client)(nil)

func NewClient(c config.ChainConf) *rpc.Client {
	return rpc.New(c.RpcEndpointUrl)
}

type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

// LatestBlockhash fetches the node's current blockhash. attempts <= 1 makes a
// single call; larger values retry with a short fixed delay.
func LatestBlockhash(ctx context.Context, src BlockhashSource, commitment rpc.CommitmentType, attempts uint) (*Blockhash, error) {
	if attempts == 0 {
		attempts = 1
	}

	var out *Blockhash
	err := retry.Do(
		func() error {
			recent, err := src.GetLatestBlockhash(ctx, commitment)
			if err != nil {
				return err
			}
			if recent == nil || recent.Value == nil {
				return errors.New("empty getLatestBlockhash result")
			}
			out = &Blockhash{
				Hash:                 recent.Value.Blockhash,
				LastValidBlockHeight: recent.Value.LastValidBlockHeight,
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logx.WithContext(ctx).Infof("getLatestBlockhash attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "get latest blockhash")
	}
	return out, nil
}
