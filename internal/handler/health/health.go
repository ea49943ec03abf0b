package health

import (
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"

	"favorites-tx/internal/errorx"
	"favorites-tx/internal/logic/health"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"
)

func Health(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.HealthRequest
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorw("parse health request failed", logx.Field("error", err.Error()))
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, &errorx.ErrorResponse{Error: errorx.MsgBadRequest})
			return
		}

		l := health.NewHealth(r.Context(), svcCtx)
		resp, err := l.Health(&req)
		if err != nil {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusServiceUnavailable, &types.HealthResponse{Status: health.StatusUnavailable, Rpc: err.Error()})
			return
		}
		code := http.StatusOK
		if resp.Status != health.StatusOK {
			code = http.StatusServiceUnavailable
		}
		httpx.WriteJsonCtx(r.Context(), w, code, resp)
	}
}
