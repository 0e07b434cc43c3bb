package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"audience_backend/internal/feature/analysis/domain/entity"
)

// DecodeAnalysis はLLMの応答テキストをスキーマに照らして厳密に検証し、AnalysisResultへ変換します。
// キー集合の過不足、null、型の不一致、ペルソナ0件はいずれもエラーです。
func DecodeAnalysis(text string) (*entity.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty response")
	}

	top, err := decodeObject([]byte(text), resultKeys)
	if err != nil {
		return nil, err
	}

	var personas []json.RawMessage
	if err := json.Unmarshal(top["buyerPersonas"], &personas); err != nil {
		return nil, fmt.Errorf("buyerPersonas: %w", err)
	}
	if len(personas) == 0 {
		return nil, errors.New("buyerPersonas: at least one persona is required")
	}
	for i, raw := range personas {
		p, err := decodeObject(raw, personaKeys)
		if err == nil {
			err = checkStringArrays(p, "goals", "painPoints", "preferredPlatforms")
		}
		if err != nil {
			return nil, fmt.Errorf("buyerPersonas[%d]: %w", i, err)
		}
	}
	if err := checkStringArrays(top, "channels", "contentTypes", "recommendations"); err != nil {
		return nil, err
	}

	var result entity.AnalysisResult
	if err := strictUnmarshal([]byte(text), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// decodeObject はJSONオブジェクトのキー集合がwantと完全に一致し、nullを含まないことを確認します。
func decodeObject(data []byte, want []string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if obj == nil {
		return nil, errors.New("expected object, got null")
	}

	var missing, unknown []string
	for _, k := range want {
		v, ok := obj[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, fmt.Errorf("%s: must not be null", k)
		}
	}
	allowed := make(map[string]struct{}, len(want))
	for _, k := range want {
		allowed[k] = struct{}{}
	}
	for k := range obj {
		if _, ok := allowed[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unexpected keys: %s", strings.Join(unknown, ", "))
	}
	return obj, nil
}

// strictUnmarshal は型の不一致を検出します。未知キーはdecodeObjectで検査済みです。
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}
	if dec.More() {
		return errors.New("schema mismatch: trailing data after object")
	}
	return nil
}

// checkStringArrays は指定キーの値が文字列配列で、要素にnullを含まないことを確認します。
func checkStringArrays(obj map[string]json.RawMessage, keys ...string) error {
	for _, k := range keys {
		var items []*string
		if err := json.Unmarshal(obj[k], &items); err != nil {
			return fmt.Errorf("%s: must be an array of strings", k)
		}
		for i, item := range items {
			if item == nil {
				return fmt.Errorf("%s[%d]: must not be null", k, i)
			}
		}
	}
	return nil
}

// EncodeAnalysis は保存用にAnalysisResultをJSONテキストへシリアライズします。
func EncodeAnalysis(r *entity.AnalysisResult) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}
	return string(b), nil
}
