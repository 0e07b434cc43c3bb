package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"audience_backend/internal/feature/analysis/adapters/openai/dto"
	"audience_backend/internal/feature/analysis/usecase"
)

const maxErrorBody = 512

// HTTPError はAPIが2xx以外を返したことを表します。
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Message)
}

// OpenAIGenerator はAnalysisGeneratorのOpenAI互換実装です。
type OpenAIGenerator struct {
	cfg    Config
	client *http.Client
}

var _ usecase.AnalysisGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator は指定された設定とHTTPクライアントでOpenAIGeneratorを生成します。
func NewOpenAIGenerator(cfg Config, client *http.Client) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &OpenAIGenerator{cfg: cfg, client: client}, nil
}

// Generate はjson_schema（strict）を指定してChat Completionsを1回呼び出し、
// 最初の選択肢の本文を返します。
func (g *OpenAIGenerator) Generate(ctx context.Context, req usecase.GenerationRequest) (string, error) {
	body := dto.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []dto.Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		ResponseFormat: &dto.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &dto.JSONSchemaFormat{
				Name:   req.SchemaName,
				Strict: true,
				Schema: req.Schema,
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: res.StatusCode, Message: errorMessage(raw)}
	}

	var out dto.ChatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("openai decode error: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai response has no choices")
	}

	msg := out.Choices[0].Message
	if msg.Refusal != nil && *msg.Refusal != "" {
		return "", fmt.Errorf("model refused: %s", *msg.Refusal)
	}
	if msg.Content == nil {
		return "", nil
	}
	return *msg.Content, nil
}

// errorMessage はエラーボディからメッセージを取り出します。取れない場合は先頭部分を返します。
func errorMessage(raw []byte) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return string(raw)
}
