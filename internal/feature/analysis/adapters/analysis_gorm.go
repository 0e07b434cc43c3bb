// Package adapters はanalysisフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/usecase"
)

// AnalysisModel はanalysesテーブルの行です。
type AnalysisModel struct {
	ID                 uint           `gorm:"primaryKey"`
	UserID             uint           `gorm:"index;not null"`
	ProductDescription string         `gorm:"type:text"`
	MainProblem        string         `gorm:"type:text"`
	TargetAudience     string         `gorm:"type:text"`
	BuyingFactors      string         `gorm:"type:text"`
	Platforms          string         `gorm:"type:text"`
	MessageTypes       string         `gorm:"type:text"`
	AnalysisGoal       string         `gorm:"type:text"`
	AIAnalysis         datatypes.JSON `gorm:"column:ai_analysis;not null"`
	CreatedAt          time.Time      `gorm:"index"`
}

// TableName はテーブル名を固定します。
func (AnalysisModel) TableName() string { return "analyses" }

func toModel(r *entity.AnalysisRecord) *AnalysisModel {
	return &AnalysisModel{
		UserID:             r.UserID,
		ProductDescription: r.ProductDescription,
		MainProblem:        r.MainProblem,
		TargetAudience:     r.TargetAudience,
		BuyingFactors:      r.BuyingFactors,
		Platforms:          r.Platforms,
		MessageTypes:       r.MessageTypes,
		AnalysisGoal:       r.AnalysisGoal,
		AIAnalysis:         datatypes.JSON(r.AIAnalysis),
	}
}

func (m *AnalysisModel) toEntity() entity.AnalysisRecord {
	return entity.AnalysisRecord{
		ID:     m.ID,
		UserID: m.UserID,
		AnalysisInput: entity.AnalysisInput{
			ProductDescription: m.ProductDescription,
			MainProblem:        m.MainProblem,
			TargetAudience:     m.TargetAudience,
			BuyingFactors:      m.BuyingFactors,
			Platforms:          m.Platforms,
			MessageTypes:       m.MessageTypes,
			AnalysisGoal:       m.AnalysisGoal,
		},
		AIAnalysis: string(m.AIAnalysis),
		CreatedAt:  m.CreatedAt,
	}
}

// analysisGorm はAnalysisRepositoryのGORM実装です。
type analysisGorm struct {
	db *gorm.DB
}

var _ usecase.AnalysisRepository = (*analysisGorm)(nil)

// NewAnalysisGorm はanalysisGormを生成します。
func NewAnalysisGorm(db *gorm.DB) *analysisGorm {
	return &analysisGorm{db: db}
}

// Create はレコードを挿入し、採番されたIDと作成日時をrecordへ反映します。
func (r *analysisGorm) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	m := toModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	record.ID = m.ID
	record.CreatedAt = m.CreatedAt
	return nil
}

// FindByID はIDで1件取得します。存在しない場合はusecase.ErrAnalysisNotFoundを返します。
func (r *analysisGorm) FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	var m AnalysisModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnalysisNotFound
		}
		return nil, err
	}
	rec := m.toEntity()
	return &rec, nil
}

// FindByUserID はユーザーの全レコードを新しい順に返します。
func (r *analysisGorm) FindByUserID(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
	var models []AnalysisModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]entity.AnalysisRecord, 0, len(models))
	for i := range models {
		records = append(records, models[i].toEntity())
	}
	return records, nil
}
