package model

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/builder"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var (
	analysisFieldNames = builder.RawFieldNames(&Analysis{}, true)
	analysisRows       = strings.Join(analysisFieldNames, ",")

	cacheCotvizAnalysesIdPrefix = "cache:cotviz:analyses:id:"

	// ErrNotFound is returned when no row matches.
	ErrNotFound = sqlx.ErrNotFound
)

// Analysis is one persisted pipeline run.
type Analysis struct {
	Id           int64     `db:"id"`
	Query        string    `db:"query"`
	Model        string    `db:"model"`
	PromptDigest string    `db:"prompt_digest"`
	Thinking     string    `db:"thinking"`
	Answer       string    `db:"answer"`
	StageCount   int64     `db:"stage_count"`
	CreatedAt    time.Time `db:"created_at"`
}

// AnalysesModel is an interface to be customized, add more methods here,
// and implement them in customAnalysesModel.
type AnalysesModel interface {
	Insert(ctx context.Context, data *Analysis) (int64, error)
	FindOne(ctx context.Context, id int64) (*Analysis, error)
	FindRecent(ctx context.Context, limit int) ([]*Analysis, error)
	Delete(ctx context.Context, id int64) error
}

type customAnalysesModel struct {
	*defaultAnalysesModel
}

type defaultAnalysesModel struct {
	sqlc.CachedConn
	table string
}

var _ AnalysesModel = (*customAnalysesModel)(nil)

// NewAnalysesModel returns a model for the analyses table.
func NewAnalysesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) AnalysesModel {
	return &customAnalysesModel{
		defaultAnalysesModel: &defaultAnalysesModel{
			CachedConn: sqlc.NewConn(conn, c, opts...),
			table:      `"analyses"`,
		},
	}
}

func (m *defaultAnalysesModel) Insert(ctx context.Context, data *Analysis) (int64, error) {
	query := fmt.Sprintf(
		`insert into %s ("query", "model", "prompt_digest", "thinking", "answer", "stage_count") values ($1, $2, $3, $4, $5, $6) returning "id"`,
		m.table,
	)
	var id int64
	err := m.QueryRowNoCacheCtx(ctx, &id, query,
		data.Query, data.Model, data.PromptDigest, data.Thinking, data.Answer, data.StageCount)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (m *defaultAnalysesModel) FindOne(ctx context.Context, id int64) (*Analysis, error) {
	key := fmt.Sprintf("%s%v", cacheCotvizAnalysesIdPrefix, id)
	var resp Analysis
	err := m.QueryRowCtx(ctx, &resp, key, func(ctx context.Context, conn sqlx.SqlConn, v any) error {
		query := fmt.Sprintf(`select %s from %s where "id" = $1 limit 1`, analysisRows, m.table)
		return conn.QueryRowCtx(ctx, v, query, id)
	})
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultAnalysesModel) FindRecent(ctx context.Context, limit int) ([]*Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	var resp []*Analysis
	query := fmt.Sprintf(`select %s from %s order by "created_at" desc limit $1`, analysisRows, m.table)
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, limit)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultAnalysesModel) Delete(ctx context.Context, id int64) error {
	key := fmt.Sprintf("%s%v", cacheCotvizAnalysesIdPrefix, id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf(`delete from %s where "id" = $1`, m.table)
		return conn.ExecCtx(ctx, query, id)
	}, key)
	return err
}
