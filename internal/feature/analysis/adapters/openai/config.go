// Package openai はOpenAI互換のChat Completions APIで分析を生成するクライアントを提供します。
package openai

import (
	"os"
	"strings"
)

const (
	// DefaultBaseURL はOpenAI APIのベースURLです。
	DefaultBaseURL = "https://api.openai.com"
	// DefaultModel は構造化出力に対応したデフォルトモデルです。
	DefaultModel = "gpt-4o-mini"
)

// Config はOpenAI互換APIクライアントの設定です。
type Config struct {
	APIKey  string
	BaseURL string // 末尾の"/"は除去されます（例: "https://api.openai.com"）
	Model   string
}

// LoadConfig は環境変数から設定を読み込みます。
func LoadConfig() Config {
	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(os.Getenv("LLM_MODEL"))
	if model == "" {
		model = DefaultModel
	}
	return Config{
		APIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL: baseURL,
		Model:   model,
	}
}
