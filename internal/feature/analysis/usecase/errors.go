package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrAnalysisFailed は生成失敗（通信・スキーマ不一致）を表す汎用エラーです。
	// GenerationErrorはerrors.Isでこのエラーと一致します。
	ErrAnalysisFailed = errors.New("analysis generation failed")

	// ErrAnalysisNotFound は指定IDの分析が存在しない（または他ユーザーの所有）場合に返されます。
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrMissingInsertID は保存後にIDが採番されなかった場合に返されます。
	ErrMissingInsertID = errors.New("analysis insert returned no id")
)

// FailureKind は生成失敗の種類です。
type FailureKind int

const (
	// FailureTransport はLLM呼び出し自体の失敗（ネットワーク・認証・非2xx）です。
	FailureTransport FailureKind = iota + 1
	// FailureSchema は応答が空、JSONとして不正、またはスキーマに一致しない場合です。
	FailureSchema
)

func (k FailureKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// GenerationError はCreateで分析生成に失敗したことを表します。
type GenerationError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrAnalysisFailed, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is はErrAnalysisFailedとの比較を可能にします。
func (e *GenerationError) Is(target error) bool {
	return target == ErrAnalysisFailed
}
