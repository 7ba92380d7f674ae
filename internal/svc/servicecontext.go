package svc

import (
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	appcache "cotviz-api/internal/cache"
	"cotviz-api/internal/config"
	"cotviz-api/internal/model"
	"cotviz-api/pkg/journal"
	llmpkg "cotviz-api/pkg/llm"
	visualizerpkg "cotviz-api/pkg/visualizer"
)

type ServiceContext struct {
	Config config.Config

	LLMClient llmpkg.LLMClient
	Engine    *visualizerpkg.Engine

	// Optional collaborators; nil when not configured.
	Redis         *redis.Redis
	TTL           appcache.TTLSet
	AnalysesModel model.AnalysesModel
	Journal       *journal.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config: c,
		TTL:    appcache.NewTTLSet(c.TTL),
	}

	llmCfg := c.LLM.Value
	if llmCfg == nil {
		// No llm section configured; local Ollama defaults still work.
		var err error
		llmCfg, err = llmpkg.LoadConfigFromReader(strings.NewReader(""))
		if err != nil {
			log.Fatalf("build default llm config: %v", err)
		}
	}
	llmClient, err := llmpkg.NewClient(llmCfg)
	if err != nil {
		log.Fatalf("initialise llm client: %v", err)
	}
	svc.LLMClient = llmClient

	vizCfg := c.Visualizer.Value
	if vizCfg == nil {
		vizCfg = visualizerpkg.Default()
	}
	engine, err := visualizerpkg.NewEngine(vizCfg, llmClient)
	if err != nil {
		log.Fatalf("initialise visualizer engine: %v", err)
	}
	svc.Engine = engine

	if vizCfg.JournalDir != "" {
		svc.Journal = journal.NewWriter(vizCfg.JournalDir)
	}

	if strings.TrimSpace(c.Redis.Host) != "" {
		svc.Redis = redis.MustNewRedis(c.Redis)
	}

	if dsn := strings.TrimSpace(c.Postgres.DSN); dsn != "" {
		conn := sqlx.NewSqlConn("pgx", dsn)
		svc.AnalysesModel = model.NewAnalysesModel(conn, cacheConf(c))
		logx.Info("analysis history store enabled")
	}

	return svc
}

// cacheConf derives the sqlc cache nodes from the Redis section; an empty
// section disables model-level caching.
func cacheConf(c config.Config) cache.CacheConf {
	if strings.TrimSpace(c.Redis.Host) == "" {
		return cache.CacheConf{}
	}
	return cache.CacheConf{
		{RedisConf: c.Redis, Weight: 100},
	}
}
