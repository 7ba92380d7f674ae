package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	appcache "cotviz-api/internal/cache"
	"cotviz-api/internal/errorx"
	"cotviz-api/internal/model"
	"cotviz-api/internal/svc"
	"cotviz-api/internal/types"
	"cotviz-api/pkg/journal"
	"cotviz-api/pkg/prompt"
	"cotviz-api/pkg/visualizer"
)

type AnalyzeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAnalyzeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AnalyzeLogic {
	return &AnalyzeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Analyze runs one query through the pipeline and shapes the result for the
// portal renderer. Results are served from Redis when an identical query was
// analyzed recently.
func (l *AnalyzeLogic) Analyze(req *types.AnalyzeRequest) (*types.AnalyzeResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errorx.NewInputError("no query provided")
	}

	cacheKey := appcache.AnalysisKey(prompt.DigestString(strings.ToLower(query)))
	if cached := l.fromCache(cacheKey); cached != nil {
		return cached, nil
	}

	analysis, err := l.svcCtx.Engine.Analyze(l.ctx, query)
	if err != nil {
		l.Errorf("analyze query: %v", err)
		return nil, errorx.NewServerError(err.Error())
	}

	resp := buildAnalyzeResponse(analysis)
	l.persist(cacheKey, analysis, resp)
	return resp, nil
}

func (l *AnalyzeLogic) fromCache(key string) *types.AnalyzeResponse {
	if l.svcCtx.Redis == nil {
		return nil
	}
	raw, err := l.svcCtx.Redis.GetCtx(l.ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	resp, err := appcache.DecodeAnalysis(raw)
	if err != nil {
		l.Errorf("decode cached analysis: %v", err)
		return nil
	}
	resp.Cached = true
	return resp
}

// persist is best effort: cache, history and journal failures are logged but
// never fail the request.
func (l *AnalyzeLogic) persist(cacheKey string, analysis *visualizer.Analysis, resp *types.AnalyzeResponse) {
	if l.svcCtx.Redis != nil {
		if raw, err := appcache.EncodeAnalysis(resp); err != nil {
			l.Errorf("encode analysis for cache: %v", err)
		} else {
			ttl := int(appcache.AnalysisTTL(l.svcCtx.TTL).Seconds())
			if err := l.svcCtx.Redis.SetexCtx(l.ctx, cacheKey, raw, ttl); err != nil {
				l.Errorf("cache analysis: %v", err)
			}
		}
	}

	if l.svcCtx.AnalysesModel != nil {
		_, err := l.svcCtx.AnalysesModel.Insert(l.ctx, &model.Analysis{
			Query:        analysis.Query,
			Model:        analysis.Model,
			PromptDigest: analysis.PromptDigest,
			Thinking:     analysis.Thinking,
			Answer:       analysis.Answer,
			StageCount:   int64(len(analysis.Stages)),
		})
		if err != nil {
			l.Errorf("store analysis: %v", err)
		}
	}

	if l.svcCtx.Journal != nil {
		_, err := l.svcCtx.Journal.WriteAnalysis(&journal.AnalysisRecord{
			Query:        analysis.Query,
			Model:        analysis.Model,
			PromptDigest: analysis.PromptDigest,
			Thinking:     analysis.Thinking,
			Answer:       analysis.Answer,
			StageCount:   len(analysis.Stages),
			ElapsedMS:    analysis.Elapsed.Milliseconds(),
		})
		if err != nil {
			l.Errorf("journal analysis: %v", err)
		}
	}
}

func buildAnalyzeResponse(analysis *visualizer.Analysis) *types.AnalyzeResponse {
	timeline := make([]types.StagePoint, 0, len(analysis.Timeline))
	for _, pt := range analysis.Timeline {
		timeline = append(timeline, types.StagePoint{
			Label:        pt.Label,
			Duration:     pt.Duration,
			Preview:      pt.Preview,
			Color:        pt.Color,
			FirstOfLabel: pt.FirstOfLabel,
		})
	}

	totals := make([]types.CategorySlice, 0, len(analysis.Totals))
	for _, total := range analysis.Totals {
		totals = append(totals, types.CategorySlice{
			Label:    total.Label,
			Duration: total.Duration,
			Color:    total.Color,
		})
	}

	return &types.AnalyzeResponse{
		Thinking:    analysis.Thinking,
		Answer:      analysis.Answer,
		StagesCount: len(analysis.Stages),
		Timeline:    timeline,
		Totals:      totals,
		Colors:      visualizer.Palette(),
	}
}
