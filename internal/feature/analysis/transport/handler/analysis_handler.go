// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audience_backend/internal/api"
	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/transport/http/dto"
	"audience_backend/internal/feature/analysis/usecase"
	jwtmw "audience_backend/internal/platform/jwt"
)

// AnalysisUsecase は分析の作成・取得のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Create(ctx context.Context, userID uint, input entity.AnalysisInput) (*usecase.CreateResult, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error)
	GetByID(ctx context.Context, userID, id uint) (*usecase.AnalysisDetail, error)
}

// AnalysisHandler は/v1/analysesのリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// CreateErrorStatus はCreateのエラーをHTTPステータスとレスポンスに対応付けます。
// 質問票の最終送信でも同じ対応付けを使います。
func CreateErrorStatus(err error) (int, api.ErrorResponse) {
	if errors.Is(err, usecase.ErrAnalysisFailed) {
		return http.StatusBadGateway, api.ErrorResponse{Error: usecase.ErrAnalysisFailed.Error()}
	}
	return http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save analysis"}
}

// Create は回答から分析を生成して保存します。
//
// エンドポイント: POST /v1/analyses
func (h *AnalysisHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.CreateAnalysisJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("分析リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.uc.Create(c.Request.Context(), userID, entity.AnalysisInput{
		ProductDescription: req.ProductDescription,
		MainProblem:        req.MainProblem,
		TargetAudience:     req.TargetAudience,
		BuyingFactors:      req.BuyingFactors,
		Platforms:          req.Platforms,
		MessageTypes:       req.MessageTypes,
		AnalysisGoal:       req.AnalysisGoal,
	})
	if err != nil {
		slog.Error("分析の作成に失敗", "error", err, "user_id", userID)
		c.JSON(CreateErrorStatus(err))
		return
	}

	slog.Info("analysis created", "analysis_id", res.AnalysisID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.NewCreateAnalysisResponse(res))
}

// List はログインユーザーの分析を新しい順に返します。aiAnalysisは文字列のままです。
//
// エンドポイント: GET /v1/analyses
func (h *AnalysisHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	records, err := h.uc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("分析一覧の取得に失敗", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]api.AnalysisRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.NewAnalysisRecordResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Get は分析を1件返します。aiAnalysisはデコード済みです。
//
// エンドポイント: GET /v1/analyses/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := api.BindIDPathParam("id", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid analysis id"})
		return
	}

	detail, err := h.uc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "analysis not found"})
			return
		}
		slog.Error("分析の取得に失敗", "error", err, "analysis_id", id, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalysisDetailResponse(detail))
}
