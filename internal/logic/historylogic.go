package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	appcache "cotviz-api/internal/cache"
	"cotviz-api/internal/svc"
	"cotviz-api/internal/types"
)

type HistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// History lists recent stored analyses, newest first. Without a configured
// history store it returns an empty listing rather than an error.
func (l *HistoryLogic) History(req *types.HistoryRequest) (*types.HistoryResponse, error) {
	resp := &types.HistoryResponse{Analyses: []types.AnalysisSummary{}}
	if l.svcCtx.AnalysesModel == nil {
		return resp, nil
	}

	cacheKey := appcache.HistoryKey(req.Limit)
	if cached := l.fromCache(cacheKey); cached != nil {
		return cached, nil
	}

	rows, err := l.svcCtx.AnalysesModel.FindRecent(l.ctx, req.Limit)
	if err != nil {
		l.Errorf("list analyses: %v", err)
		return nil, err
	}

	for _, row := range rows {
		resp.Analyses = append(resp.Analyses, types.AnalysisSummary{
			Id:         row.Id,
			Query:      row.Query,
			Answer:     row.Answer,
			Model:      row.Model,
			StageCount: int(row.StageCount),
			CreatedAt:  row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	l.toCache(cacheKey, resp)
	return resp, nil
}

func (l *HistoryLogic) fromCache(key string) *types.HistoryResponse {
	if l.svcCtx.Redis == nil {
		return nil
	}
	raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	resp, err := appcache.DecodeHistory(raw)
	if err != nil {
		l.Errorf("decode cached history: %v", err)
		return nil
	}
	return resp
}

func (l *HistoryLogic) toCache(key string, resp *types.HistoryResponse) {
	if l.svcCtx.Redis == nil {
		return
	}
	raw, err := appcache.EncodeHistory(resp)
	if err != nil {
		l.Errorf("encode history for cache: %v", err)
		return
	}
	ttl := int(appcache.HistoryTTL(l.svcCtx.TTL).Seconds())
	if err := l.svcCtx.Redis.SetexCtx(l.ctx, key, raw, ttl); err != nil {
		l.Errorf("cache history: %v", err)
	}
}
