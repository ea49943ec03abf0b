package tx

import (
	"io"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mapping"
	"github.com/zeromicro/go-zero/rest/httpx"

	"favorites-tx/internal/errorx"
	"favorites-tx/internal/logic/tx"
	"favorites-tx/internal/svc"
	"favorites-tx/internal/types"
)

const maxBodyLen = 8 << 20

func CreateTx(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateTxRequest
		if err := parseJsonBody(r, &req); err != nil {
			err = errorx.Wrap(errorx.KindRequest, err, "parse request")
			logx.WithContext(r.Context()).Errorw("create transaction failed",
				logx.Field("kind", errorx.KindOf(err).String()),
				logx.Field("contentType", r.Header.Get("Content-Type")),
				logx.Field("error", err.Error()),
			)
			writeError(w, r, err)
			return
		}

		l := tx.NewCreateTx(r.Context(), svcCtx)
		resp, err := l.CreateTx(&req)
		if err != nil {
			writeError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// parseJsonBody decodes the body as JSON whatever the Content-Type says.
// httpx.Parse skips the body unless it is labelled application/json.
func parseJsonBody(r *http.Request, v any) error {
	return mapping.UnmarshalJsonReader(io.LimitReader(r.Body, maxBodyLen), v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, body := errorx.Response(err)
	httpx.WriteJsonCtx(r.Context(), w, code, body)
}
