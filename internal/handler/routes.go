package handler

import (
	"net/http"

	health "favorites-tx/internal/handler/health"
	tx "favorites-tx/internal/handler/tx"
	"favorites-tx/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/create-tx",
				Handler: tx.CreateTx(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: health.Health(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)
}
