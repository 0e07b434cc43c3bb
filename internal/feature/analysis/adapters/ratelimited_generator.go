package adapters

import (
	"context"
	"fmt"

	"audience_backend/internal/feature/analysis/usecase"
)

// Limiter は外部API呼び出しの頻度制限を抽象化します。
type Limiter interface {
	Wait(ctx context.Context) error
}

// rateLimitedGenerator はLLM呼び出しの前に枠が空くまで待機するデコレーターです。
type rateLimitedGenerator struct {
	inner   usecase.AnalysisGenerator
	limiter Limiter
}

var _ usecase.AnalysisGenerator = (*rateLimitedGenerator)(nil)

// NewRateLimitedGenerator はinnerの呼び出しをlimiterで制限するAnalysisGeneratorを返します。
func NewRateLimitedGenerator(inner usecase.AnalysisGenerator, limiter Limiter) usecase.AnalysisGenerator {
	return &rateLimitedGenerator{inner: inner, limiter: limiter}
}

func (g *rateLimitedGenerator) Generate(ctx context.Context, req usecase.GenerationRequest) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return g.inner.Generate(ctx, req)
}
