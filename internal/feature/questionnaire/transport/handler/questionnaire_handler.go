// Package handler は質問票フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audience_backend/internal/api"
	analysishandler "audience_backend/internal/feature/analysis/transport/handler"
	analysisdto "audience_backend/internal/feature/analysis/transport/http/dto"
	analysisuc "audience_backend/internal/feature/analysis/usecase"
	"audience_backend/internal/feature/questionnaire/domain/entity"
	"audience_backend/internal/feature/questionnaire/usecase"
	jwtmw "audience_backend/internal/platform/jwt"
)

// QuestionnaireUsecase は質問票操作のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuestionnaireUsecase interface {
	Questions() []entity.Question
	State(ctx context.Context, userID uint) (*entity.Flow, error)
	Answer(ctx context.Context, userID uint, value string) (*entity.Flow, error)
	Next(ctx context.Context, userID uint) (*usecase.Step, error)
	Previous(ctx context.Context, userID uint) (*entity.Flow, error)
	Reset(ctx context.Context, userID uint) error
}

// QuestionnaireHandler は/v1/questionnaireのリクエストを処理します。
type QuestionnaireHandler struct {
	uc QuestionnaireUsecase
}

// NewQuestionnaireHandler はQuestionnaireHandlerを生成します。
func NewQuestionnaireHandler(uc QuestionnaireUsecase) *QuestionnaireHandler {
	return &QuestionnaireHandler{uc: uc}
}

func toQuestionResponse(q entity.Question) api.QuestionResponse {
	return api.QuestionResponse{
		ID:          q.ID,
		Emoji:       q.Emoji,
		PromptAR:    q.PromptAR,
		PromptEN:    q.PromptEN,
		Type:        string(q.Kind),
		Placeholder: q.Placeholder,
	}
}

func toStateResponse(f *entity.Flow) api.QuestionnaireStateResponse {
	answers := make(map[int]string, len(f.Answers))
	for k, v := range f.Answers {
		answers[k] = v
	}
	return api.QuestionnaireStateResponse{
		Current:    f.Current,
		Total:      entity.TotalQuestions,
		Progress:   f.Progress(),
		Question:   toQuestionResponse(f.Question()),
		Answer:     f.Answer(),
		Answers:    answers,
		CanAdvance: f.CanAdvance(),
		CanGoBack:  f.CanGoBack(),
		IsLast:     f.IsLast(),
	}
}

// Questions は質問一覧を返します。
//
// エンドポイント: GET /v1/questionnaire/questions
func (h *QuestionnaireHandler) Questions(c *gin.Context) {
	qs := h.uc.Questions()
	out := make([]api.QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQuestionResponse(q))
	}
	c.JSON(http.StatusOK, out)
}

// State は現在の進行状態を返します。
//
// エンドポイント: GET /v1/questionnaire
func (h *QuestionnaireHandler) State(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	flow, err := h.uc.State(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "質問票の取得に失敗", err, userID)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(flow))
}

// Answer は現在の質問の回答を更新します。
//
// エンドポイント: PUT /v1/questionnaire/answer
func (h *QuestionnaireHandler) Answer(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.UpdateAnswerJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("回答リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	flow, err := h.uc.Answer(c.Request.Context(), userID, req.Value)
	if err != nil {
		h.internalError(c, "回答の保存に失敗", err, userID)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(flow))
}

// Next は次の質問へ進みます。最後の質問では分析を作成して201を返します。
//
// エンドポイント: POST /v1/questionnaire/next
func (h *QuestionnaireHandler) Next(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	step, err := h.uc.Next(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrAnswerRequired) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, usecase.ErrSubmissionInProgress) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, analysisuc.ErrAnalysisFailed) {
			c.JSON(analysishandler.CreateErrorStatus(err))
			return
		}
		h.internalError(c, "質問票の送信に失敗", err, userID)
		return
	}

	if step.Submitted {
		slog.Info("questionnaire submitted", "analysis_id", step.Result.AnalysisID, "user_id", userID)
		c.JSON(http.StatusCreated, analysisdto.NewCreateAnalysisResponse(step.Result))
		return
	}
	c.JSON(http.StatusOK, toStateResponse(step.Flow))
}

// Previous は前の質問へ戻ります。
//
// エンドポイント: POST /v1/questionnaire/previous
func (h *QuestionnaireHandler) Previous(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	flow, err := h.uc.Previous(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, entity.ErrAtFirstQuestion) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		h.internalError(c, "質問票の更新に失敗", err, userID)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(flow))
}

// Reset は下書きを破棄します。
//
// エンドポイント: DELETE /v1/questionnaire
func (h *QuestionnaireHandler) Reset(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.uc.Reset(c.Request.Context(), userID); err != nil {
		h.internalError(c, "質問票のリセットに失敗", err, userID)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuestionnaireHandler) internalError(c *gin.Context, msg string, err error, userID uint) {
	slog.Error(msg, "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
