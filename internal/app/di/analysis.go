// Package di はアプリケーションのコンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	analysisadapters "audience_backend/internal/feature/analysis/adapters"
	"audience_backend/internal/feature/analysis/adapters/gemini"
	"audience_backend/internal/feature/analysis/adapters/openai"
	"audience_backend/internal/feature/analysis/usecase"
	"audience_backend/internal/platform/cache"
	"audience_backend/internal/shared/ratelimiter"
)

const (
	// ProviderGemini はGoogle Gemini APIを使用します（デフォルト）。
	ProviderGemini = "gemini"
	// ProviderOpenAI はOpenAI互換のChat Completions APIを使用します。
	ProviderOpenAI = "openai"
)

// NewAnalysisGenerator はLLM_PROVIDERに応じたAnalysisGeneratorを生成します。
// LLM_RATE_LIMIT_PER_MINUTEが正の整数なら、1分あたりの呼び出し回数を制限します。
func NewAnalysisGenerator(ctx context.Context, httpClient *http.Client) (usecase.AnalysisGenerator, error) {
	gen, err := newProviderGenerator(ctx, httpClient)
	if err != nil {
		return nil, err
	}
	if n, err := strconv.Atoi(os.Getenv("LLM_RATE_LIMIT_PER_MINUTE")); err == nil && n > 0 {
		return analysisadapters.NewRateLimitedGenerator(gen, ratelimiter.NewRateLimiter(n, time.Minute)), nil
	}
	return gen, nil
}

func newProviderGenerator(ctx context.Context, httpClient *http.Client) (usecase.AnalysisGenerator, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	switch provider {
	case "", ProviderGemini:
		return gemini.NewGeminiGenerator(ctx, gemini.Config{
			APIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:      strings.TrimSpace(os.Getenv("LLM_MODEL")),
			BaseURL:    strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
			HTTPClient: httpClient,
		})
	case ProviderOpenAI:
		return openai.NewOpenAIGenerator(openai.LoadConfig(), httpClient)
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", provider)
	}
}

// NewAnalysisRepository はGORM実装をRedisキャッシュでラップしたAnalysisRepositoryを返します。
// rdbがnilの場合、キャッシュはそのままDBへ委譲します。
func NewAnalysisRepository(db *gorm.DB, rdb *redis.Client) usecase.AnalysisRepository {
	ttl := 10 * time.Minute
	if v := os.Getenv("ANALYSIS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	return cache.NewCachingAnalysisRepository(rdb, ttl, analysisadapters.NewAnalysisGorm(db), "analyses")
}
