package health

import (
	"context"
	"time"

	"favorites-tx/internal/chain"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

type Health struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealth(ctx context.Context, svcCtx *svc.ServiceContext) *Health {
	return &Health{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *Health) Health(req *types.HealthRequest) (resp *types.HealthResponse, err error) {
	c := l.svcCtx.Config.Chain
	rpcStatus, err := chain.CheckHealth(c.RpcEndpointUrl, time.Duration(c.HealthTimeout)*time.Millisecond)
	if err != nil {
		l.Errorf("rpc node %s unhealthy: %v", c.RpcEndpointUrl, err)
		return &types.HealthResponse{Status: StatusUnavailable, Rpc: err.Error()}, nil
	}
	if rpcStatus != StatusOK {
		return &types.HealthResponse{Status: StatusUnavailable, Rpc: rpcStatus}, nil
	}
	return &types.HealthResponse{Status: StatusOK, Rpc: rpcStatus}, nil
}
