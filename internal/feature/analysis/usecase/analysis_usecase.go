// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"audience_backend/internal/feature/analysis/domain/entity"
)

// GenerationRequest はLLMへの構造化出力リクエストです。
type GenerationRequest struct {
	System     string
	User       string
	SchemaName string
	Schema     map[string]any
}

// AnalysisGenerator はスキーマ付きでLLMを1回呼び出し、生の応答テキストを返します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AnalysisGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// AnalysisRepository は分析レコードの永続化を抽象化します。
type AnalysisRepository interface {
	// Create はレコードを保存し、採番されたIDとCreatedAtをrecordに設定します。
	Create(ctx context.Context, record *entity.AnalysisRecord) error
	// FindByID は存在しない場合ErrAnalysisNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
	// FindByUserID は新しい順にユーザーの全レコードを返します。
	FindByUserID(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error)
}

// CreateResult はCreateの結果です。
type CreateResult struct {
	AnalysisID uint
	Analysis   *entity.AnalysisResult
}

// AnalysisDetail は保存済みレコードとデコード済みの分析結果です。
type AnalysisDetail struct {
	Record   entity.AnalysisRecord
	Analysis *entity.AnalysisResult
}

// AnalysisUsecase はオーディエンス分析の生成・保存・取得を提供します。
type AnalysisUsecase struct {
	generator AnalysisGenerator
	repo      AnalysisRepository
}

// NewAnalysisUsecase はAnalysisUsecaseを生成します。
func NewAnalysisUsecase(generator AnalysisGenerator, repo AnalysisRepository) *AnalysisUsecase {
	return &AnalysisUsecase{generator: generator, repo: repo}
}

// Create はプロンプトを組み立ててLLMを呼び出し、検証済みの結果を保存します。
// 生成に失敗した場合は何も保存しません。リトライは行いません。
func (u *AnalysisUsecase) Create(ctx context.Context, userID uint, input entity.AnalysisInput) (*CreateResult, error) {
	text, err := u.generator.Generate(ctx, GenerationRequest{
		System:     SystemInstruction(),
		User:       BuildPrompt(input),
		SchemaName: SchemaName,
		Schema:     AnalysisSchema(),
	})
	if err != nil {
		return nil, &GenerationError{Kind: FailureTransport, Err: err}
	}

	result, err := DecodeAnalysis(text)
	if err != nil {
		return nil, &GenerationError{Kind: FailureSchema, Err: err}
	}

	serialized, err := EncodeAnalysis(result)
	if err != nil {
		return nil, err
	}

	record := &entity.AnalysisRecord{
		UserID:        userID,
		AnalysisInput: input,
		AIAnalysis:    serialized,
	}
	// 保存エラーはそのまま返す
	if err := u.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, ErrMissingInsertID
	}

	return &CreateResult{AnalysisID: record.ID, Analysis: result}, nil
}

// ListByUser はユーザーの分析を新しい順に返します。aiAnalysisはシリアライズされたままです。
func (u *AnalysisUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
	records, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	if records == nil {
		records = []entity.AnalysisRecord{}
	}
	return records, nil
}

// GetByID は呼び出し元ユーザーが所有する分析を1件取得し、保存済みJSONをデコードします。
// 他ユーザーのレコードは存在しないものとして扱います。
func (u *AnalysisUsecase) GetByID(ctx context.Context, userID, id uint) (*AnalysisDetail, error) {
	record, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if record.UserID != userID {
		return nil, ErrAnalysisNotFound
	}

	// 保存時に検証済みなので、ここでは型のデコードのみ行う
	var result entity.AnalysisResult
	if err := strictUnmarshal([]byte(record.AIAnalysis), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored analysis %d: %w", id, err)
	}
	return &AnalysisDetail{Record: *record, Analysis: &result}, nil
}
