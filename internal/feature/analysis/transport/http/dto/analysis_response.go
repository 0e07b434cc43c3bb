// Package dto はanalysisのエンティティをAPIレスポンス型へ変換します。
package dto

import (
	"audience_backend/internal/api"
	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/usecase"
)

// NewAnalysisResultResponse はAnalysisResultをレスポンス型へ変換します。nilスライスは空配列にします。
func NewAnalysisResultResponse(r *entity.AnalysisResult) api.AnalysisResultResponse {
	if r == nil {
		return api.AnalysisResultResponse{
			BuyerPersonas:   []api.PersonaResponse{},
			Channels:        []string{},
			ContentTypes:    []string{},
			Recommendations: []string{},
		}
	}

	personas := make([]api.PersonaResponse, 0, len(r.BuyerPersonas))
	for _, p := range r.BuyerPersonas {
		personas = append(personas, api.PersonaResponse{
			Name:                p.Name,
			Description:         p.Description,
			Goals:               nonNil(p.Goals),
			PainPoints:          nonNil(p.PainPoints),
			PreferredPlatforms:  nonNil(p.PreferredPlatforms),
			MessageType:         p.MessageType,
			AdvertisingApproach: p.AdvertisingApproach,
		})
	}
	return api.AnalysisResultResponse{
		Summary:         r.Summary,
		BuyerPersonas:   personas,
		Channels:        nonNil(r.Channels),
		ToneOfVoice:     r.ToneOfVoice,
		ContentTypes:    nonNil(r.ContentTypes),
		Recommendations: nonNil(r.Recommendations),
	}
}

// NewCreateAnalysisResponse はCreateの結果を201レスポンスへ変換します。
func NewCreateAnalysisResponse(res *usecase.CreateResult) api.CreateAnalysisResponse {
	return api.CreateAnalysisResponse{
		Success:    true,
		AnalysisID: res.AnalysisID,
		Analysis:   NewAnalysisResultResponse(res.Analysis),
	}
}

// NewAnalysisRecordResponse は一覧用にaiAnalysisを文字列のまま返します。
func NewAnalysisRecordResponse(r entity.AnalysisRecord) api.AnalysisRecordResponse {
	return api.AnalysisRecordResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		ProductDescription: r.ProductDescription,
		MainProblem:        r.MainProblem,
		TargetAudience:     r.TargetAudience,
		BuyingFactors:      r.BuyingFactors,
		Platforms:          r.Platforms,
		MessageTypes:       r.MessageTypes,
		AnalysisGoal:       r.AnalysisGoal,
		AIAnalysis:         r.AIAnalysis,
		CreatedAt:          r.CreatedAt,
	}
}

// NewAnalysisDetailResponse は単一取得用にデコード済みのaiAnalysisを返します。
func NewAnalysisDetailResponse(d *usecase.AnalysisDetail) api.AnalysisDetailResponse {
	r := d.Record
	return api.AnalysisDetailResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		ProductDescription: r.ProductDescription,
		MainProblem:        r.MainProblem,
		TargetAudience:     r.TargetAudience,
		BuyingFactors:      r.BuyingFactors,
		Platforms:          r.Platforms,
		MessageTypes:       r.MessageTypes,
		AnalysisGoal:       r.AnalysisGoal,
		AIAnalysis:         NewAnalysisResultResponse(d.Analysis),
		CreatedAt:          r.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
