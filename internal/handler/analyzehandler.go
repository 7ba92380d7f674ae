package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"cotviz-api/internal/logic"
	"cotviz-api/internal/svc"
	"cotviz-api/internal/types"
)

func AnalyzeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AnalyzeRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewAnalyzeLogic(r.Context(), svcCtx)
		resp, err := l.Analyze(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
