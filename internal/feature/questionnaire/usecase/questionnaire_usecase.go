// Package usecase は質問票フィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	analysis "audience_backend/internal/feature/analysis/domain/entity"
	analysisuc "audience_backend/internal/feature/analysis/usecase"
	"audience_backend/internal/feature/questionnaire/domain/entity"
)

// DraftRepository はユーザーごとの回答途中の状態を保持します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DraftRepository interface {
	// Load は存在しない場合ErrDraftNotFoundを返します。
	Load(ctx context.Context, userID uint) (*entity.Flow, error)
	Save(ctx context.Context, userID uint, flow *entity.Flow) error
	Delete(ctx context.Context, userID uint) error
	// Lock はユーザー単位の処理ロックを取得します。取得済みの場合はfalseを返します。
	Lock(ctx context.Context, userID uint) (bool, error)
	Unlock(ctx context.Context, userID uint) error
}

// AnalysisCreator は最終送信時に呼び出す分析作成です。
type AnalysisCreator interface {
	Create(ctx context.Context, userID uint, input analysis.AnalysisInput) (*analysisuc.CreateResult, error)
}

// Step はNextの結果です。Submittedがtrueの場合はResultに作成結果が入り、Flowはnilです。
type Step struct {
	Flow      *entity.Flow
	Submitted bool
	Result    *analysisuc.CreateResult
}

// QuestionnaireUsecase は質問票の進行と最終送信を扱います。
type QuestionnaireUsecase struct {
	drafts   DraftRepository
	analyses AnalysisCreator
}

// NewQuestionnaireUsecase はQuestionnaireUsecaseを生成します。
func NewQuestionnaireUsecase(drafts DraftRepository, analyses AnalysisCreator) *QuestionnaireUsecase {
	return &QuestionnaireUsecase{drafts: drafts, analyses: analyses}
}

// Questions は質問一覧を返します。
func (u *QuestionnaireUsecase) Questions() []entity.Question {
	return entity.Questions()
}

// State は下書きを返します。なければ最初の質問から始まる状態を返します。
func (u *QuestionnaireUsecase) State(ctx context.Context, userID uint) (*entity.Flow, error) {
	flow, err := u.drafts.Load(ctx, userID)
	if errors.Is(err, ErrDraftNotFound) {
		return entity.NewFlow(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	flow.Normalize()
	return flow, nil
}

// Answer は現在の質問の回答を更新します。
func (u *QuestionnaireUsecase) Answer(ctx context.Context, userID uint, value string) (*entity.Flow, error) {
	flow, err := u.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	flow.SetAnswer(value)
	if err := u.save(ctx, userID, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// Next は次の質問へ進みます。最後の質問では分析を作成し、成功時のみ下書きを削除します。
// 作成に失敗した場合、下書きはそのまま残り、最後の質問から再送信できます。
// 同じユーザーのNextは同時に1つしか実行されず、処理中の呼び出しにはErrSubmissionInProgressを返します。
func (u *QuestionnaireUsecase) Next(ctx context.Context, userID uint) (*Step, error) {
	locked, err := u.drafts.Lock(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock draft: %w", err)
	}
	if !locked {
		return nil, ErrSubmissionInProgress
	}
	defer func() {
		// リクエストがキャンセルされてもロックは解放する
		if err := u.drafts.Unlock(context.WithoutCancel(ctx), userID); err != nil {
			slog.Warn("failed to unlock questionnaire draft", "error", err, "user_id", userID)
		}
	}()

	flow, err := u.State(ctx, userID)
	if err != nil {
		return nil, err
	}

	submit, err := flow.Next()
	if err != nil {
		return nil, err
	}
	if !submit {
		if err := u.save(ctx, userID, flow); err != nil {
			return nil, err
		}
		return &Step{Flow: flow}, nil
	}

	res, err := u.analyses.Create(ctx, userID, flow.ToInput())
	if err != nil {
		slog.Error("questionnaire submission failed", "error", err, "user_id", userID)
		return nil, err
	}

	if err := u.drafts.Delete(ctx, userID); err != nil {
		// 分析は保存済みなので結果を優先する
		slog.Warn("failed to delete questionnaire draft", "error", err, "user_id", userID)
	}
	return &Step{Submitted: true, Result: res}, nil
}

// Previous は前の質問へ戻ります。最初の質問ではentity.ErrAtFirstQuestionを返します。
func (u *QuestionnaireUsecase) Previous(ctx context.Context, userID uint) (*entity.Flow, error) {
	flow, err := u.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := flow.Previous(); err != nil {
		return nil, err
	}
	if err := u.save(ctx, userID, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// Reset は下書きを破棄します。
func (u *QuestionnaireUsecase) Reset(ctx context.Context, userID uint) error {
	if err := u.drafts.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (u *QuestionnaireUsecase) save(ctx context.Context, userID uint, flow *entity.Flow) error {
	if err := u.drafts.Save(ctx, userID, flow); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}
