package handler

import (
	_ "embed"
	"net/http"

	"cotviz-api/internal/svc"
)

//go:embed portal.html
var portalPage []byte

// IndexHandler serves the single-page portal.
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(portalPage)
	}
}
