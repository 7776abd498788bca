// cmd/gateway/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"globalmind/internal/api"
	"globalmind/internal/common/config"
	"globalmind/internal/common/database"
	"globalmind/internal/common/logger"
	"globalmind/internal/common/observability"
	"globalmind/internal/history"
	"globalmind/internal/knowledge"
	"globalmind/internal/nodes"
	"globalmind/internal/pipeline"
	classifyintent "globalmind/internal/pipeline/classify-intent"
	detectlanguage "globalmind/internal/pipeline/detect-language"
	enrichrealworld "globalmind/internal/pipeline/enrich-real-world"
	matchculturalcontext "globalmind/internal/pipeline/match-cultural-context"
	routelanguagenode "globalmind/internal/pipeline/route-language-node"
	synthesizeresponse "globalmind/internal/pipeline/synthesize-response"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting query gateway...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Knowledge base (startup-critical) ---
	base, err := knowledge.Load(cfg.Knowledge.Path)
	if err != nil {
		zapLog.Fatal("knowledge base load failed", zap.Error(err))
	}
	zapLog.Info("knowledge base loaded", zap.Int("entries", base.Len()))

	// --- Redis cache (optional, enrichment degrades without it) ---
	var cache enrichrealworld.Cache
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return redisClient.Ping(pingCtx)
	}, 3, time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Warn("redis unavailable, search caching disabled", zap.Error(err))
	} else {
		cache = redisClient
		defer redisClient.Close()
	}

	// --- History store (optional, falls back to in-memory aggregates) ---
	var store history.Store = history.NewMemoryStore()
	if cfg.History.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			return pg.Ping(pingCtx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Warn("postgres unavailable, using in-memory history", zap.Error(err))
		} else {
			store = history.NewPostgresStore(pg)
		}
	}
	defer store.Close()

	// --- Search provider ---
	provider := buildSearchProvider(cfg, zapLog, log)

	// --- Language nodes ---
	nodeTimeout := time.Duration(cfg.Nodes.Timeout) * time.Millisecond
	registry, err := nodes.NewRegistry(buildNodes(cfg, nodeTimeout, log)...)
	if err != nil {
		zapLog.Fatal("node registry build failed", zap.Error(err))
	}
	zapLog.Info("language nodes registered", zap.Int("count", len(registry.Languages())))

	// --- Pipeline ---
	enrichCfg := enrichrealworld.FromSearchConfig(cfg.Search)
	summarizer := enrichrealworld.NewSummarizer(cfg.Search.SummarizerURL, enrichCfg.Timeout, log)

	coordinator := pipeline.NewCoordinator(
		detectlanguage.NewHandler(detectlanguage.DefaultConfig(), log),
		matchculturalcontext.NewHandler(base, log),
		classifyintent.NewHandler(classifyintent.DefaultConfig(), log),
		routelanguagenode.NewHandler(registry, nodeTimeout, log),
		enrichrealworld.NewHandler(enrichCfg, provider, cache, summarizer, log),
		synthesizeresponse.NewHandler(log),
		store,
		log,
	)

	// --- HTTP server ---
	server := api.NewServer(cfg, coordinator, store, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}
	zapLog.Info("gateway stopped")
}

// buildSearchProvider picks the configured provider. A missing API key or
// unreachable cluster leaves enrichment disabled rather than blocking
// startup.
func buildSearchProvider(cfg *config.Config, zapLog *zap.Logger, log logger.Logger) enrichrealworld.SearchProvider {
	timeout := time.Duration(cfg.Search.Timeout) * time.Millisecond

	switch cfg.Search.Provider {
	case "elasticsearch":
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			zapLog.Warn("elasticsearch unavailable, enrichment disabled", zap.Error(err))
			return nil
		}
		if err := es.Ping(); err != nil {
			zapLog.Warn("elasticsearch unreachable, enrichment disabled", zap.Error(err))
			return nil
		}
		return enrichrealworld.NewElasticProvider(es, cfg.Search.Index, log)
	default:
		if cfg.Search.APIKey == "" || cfg.Search.EngineID == "" {
			zapLog.Warn("search credentials missing, enrichment disabled")
			return nil
		}
		return enrichrealworld.NewGoogleProvider(
			cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.EngineID, timeout, log)
	}
}

// buildNodes returns builtin nodes, replaced per language by remote HTTP
// nodes where configured.
func buildNodes(cfg *config.Config, timeout time.Duration, log logger.Logger) []nodes.Node {
	all := nodes.BuiltinNodes(log)

	if len(cfg.Nodes.Remote) == 0 {
		return all
	}

	result := make([]nodes.Node, 0, len(all))
	for _, n := range all {
		endpoint, ok := cfg.Nodes.Remote[strings.ToLower(string(n.Language()))]
		if ok && endpoint != "" {
			result = append(result, nodes.NewRemoteNode(n.Language(), endpoint, timeout, log))
			continue
		}
		result = append(result, n)
	}
	return result
}
