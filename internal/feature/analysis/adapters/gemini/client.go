// Package gemini はGoogle Gemini APIの構造化出力で分析を生成するクライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"audience_backend/internal/feature/analysis/usecase"
)

// DefaultModel はGemini APIのデフォルトモデルです。
const DefaultModel = "gemini-2.5-flash"

// Config はGeminiGeneratorの設定です。
type Config struct {
	// APIKey が空の場合はADC（GOOGLE_GENAI_USE_VERTEXAI等の環境変数）を使用します。
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiGenerator はAnalysisGeneratorのGemini実装です。
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ usecase.AnalysisGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator はGeminiGeneratorを生成します。
func NewGeminiGenerator(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	var cc *genai.ClientConfig
	if cfg.APIKey != "" || cfg.BaseURL != "" || cfg.HTTPClient != nil {
		cc = &genai.ClientConfig{
			APIKey:      cfg.APIKey,
			HTTPClient:  cfg.HTTPClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
		}
		if cfg.APIKey != "" {
			cc.Backend = genai.BackendGeminiAPI
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate はJSONモードとJSON Schemaを指定してGenerateContentを1回呼び出します。
// スキーマはそのまま responseJsonSchema として送るため、required と additionalProperties も適用されます。
func (g *GeminiGenerator) Generate(ctx context.Context, req usecase.GenerationRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if req.Schema != nil {
		config.ResponseJsonSchema = req.Schema
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.User), config)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return cleanModelOutput(resp.Text()), nil
}

// cleanModelOutput はモデルが付けることのあるコードフェンスを取り除きます。
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
