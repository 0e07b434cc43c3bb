// Package entity はanalysisフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// AnalysisInput は質問票7問への回答です。空文字列も有効な値です。
type AnalysisInput struct {
	ProductDescription string `json:"productDescription"`
	MainProblem        string `json:"mainProblem"`
	TargetAudience     string `json:"targetAudience"`
	BuyingFactors      string `json:"buyingFactors"`
	Platforms          string `json:"platforms"`
	MessageTypes       string `json:"messageTypes"`
	AnalysisGoal       string `json:"analysisGoal"`
}

// Persona は架空の典型的な購買者像です。
type Persona struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Goals               []string `json:"goals"`
	PainPoints          []string `json:"painPoints"`
	PreferredPlatforms  []string `json:"preferredPlatforms"`
	MessageType         string   `json:"messageType"`
	AdvertisingApproach string   `json:"advertisingApproach"`
}

// AnalysisResult はLLMが返す構造化された分析結果です。
type AnalysisResult struct {
	Summary         string    `json:"summary"`
	BuyerPersonas   []Persona `json:"buyerPersonas"`
	Channels        []string  `json:"channels"`
	ToneOfVoice     string    `json:"toneOfVoice"`
	ContentTypes    []string  `json:"contentTypes"`
	Recommendations []string  `json:"recommendations"`
}

// AnalysisRecord は永続化された分析1件です。作成後に更新されることはありません。
type AnalysisRecord struct {
	ID     uint
	UserID uint
	AnalysisInput
	// AIAnalysis はAnalysisResultをシリアライズしたJSONテキストです。
	AIAnalysis string
	CreatedAt  time.Time
}
