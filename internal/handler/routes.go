package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"cotviz-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(svcCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/analyze",
				Handler: AnalyzeHandler(svcCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/analyses",
				Handler: HistoryHandler(svcCtx),
			},
		},
	)
}
