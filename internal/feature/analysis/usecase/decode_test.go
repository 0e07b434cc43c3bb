package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mutate はvalidAnalysisJSONを変更した応答を返します。
func mutate(t *testing.T, fn func(m map[string]any)) string {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validAnalysisJSON), &m))
	fn(m)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func firstPersona(m map[string]any) map[string]any {
	return m["buyerPersonas"].([]any)[0].(map[string]any)
}

func TestDecodeAnalysis_Valid(t *testing.T) {
	t.Parallel()

	result, err := DecodeAnalysis(validAnalysisJSON)

	require.NoError(t, err)
	assert.Equal(t, "جمهور من أصحاب الشركات الصغيرة", result.Summary)
	require.Len(t, result.BuyerPersonas, 1)
	assert.Equal(t, "سارة", result.BuyerPersonas[0].Name)
	assert.Equal(t, []string{"إنستجرام", "لينكدإن"}, result.BuyerPersonas[0].PreferredPlatforms)
	assert.Equal(t, []string{"فيسبوك"}, result.Channels)
	assert.Equal(t, "ودود ومهني", result.ToneOfVoice)
}

func TestDecodeAnalysis_EmptyArraysAllowed(t *testing.T) {
	t.Parallel()

	text := mutate(t, func(m map[string]any) {
		m["channels"] = []any{}
		firstPersona(m)["goals"] = []any{}
	})

	result, err := DecodeAnalysis(text)

	require.NoError(t, err)
	assert.Empty(t, result.Channels)
	assert.NotNil(t, result.Channels)
}

func TestDecodeAnalysis_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "empty text",
			text:    func(t *testing.T) string { return "   " },
			wantMsg: "empty response",
		},
		{
			name:    "not json",
			text:    func(t *testing.T) string { return "Sorry, I cannot help with that." },
			wantMsg: "invalid JSON object",
		},
		{
			name:    "json array",
			text:    func(t *testing.T) string { return `[1,2,3]` },
			wantMsg: "invalid JSON object",
		},
		{
			name:    "top-level null",
			text:    func(t *testing.T) string { return "null" },
			wantMsg: "null",
		},
		{
			name: "missing top-level key",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { delete(m, "toneOfVoice") })
			},
			wantMsg: "missing keys: toneOfVoice",
		},
		{
			name: "extra top-level key",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["budget"] = "1000" })
			},
			wantMsg: "unexpected keys: budget",
		},
		{
			name: "null value",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["summary"] = nil })
			},
			wantMsg: "summary: must not be null",
		},
		{
			name: "wrong type",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["toneOfVoice"] = []any{"a"} })
			},
			wantMsg: "schema mismatch",
		},
		{
			name: "channels not an array",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["channels"] = "فيسبوك" })
			},
			wantMsg: "channels: must be an array of strings",
		},
		{
			name: "null array element",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["recommendations"] = []any{"a", nil} })
			},
			wantMsg: "recommendations[1]: must not be null",
		},
		{
			name: "no personas",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { m["buyerPersonas"] = []any{} })
			},
			wantMsg: "at least one persona",
		},
		{
			name: "persona missing key",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { delete(firstPersona(m), "messageType") })
			},
			wantMsg: "buyerPersonas[0]: missing keys: messageType",
		},
		{
			name: "persona extra key",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { firstPersona(m)["age"] = 30 })
			},
			wantMsg: "buyerPersonas[0]: unexpected keys: age",
		},
		{
			name: "persona goals with null element",
			text: func(t *testing.T) string {
				return mutate(t, func(m map[string]any) { firstPersona(m)["goals"] = []any{nil} })
			},
			wantMsg: "buyerPersonas[0]: goals[0]: must not be null",
		},
		{
			name: "trailing data",
			text:    func(t *testing.T) string { return validAnalysisJSON + ` {}` },
			wantMsg: "invalid JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := DecodeAnalysis(tt.text(t))

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "got %q, want substring %q", err.Error(), tt.wantMsg)
		})
	}
}

func TestEncodeAnalysis_RoundTripsThroughDecode(t *testing.T) {
	t.Parallel()

	result, err := DecodeAnalysis(validAnalysisJSON)
	require.NoError(t, err)

	encoded, err := EncodeAnalysis(result)
	require.NoError(t, err)

	again, err := DecodeAnalysis(encoded)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}
