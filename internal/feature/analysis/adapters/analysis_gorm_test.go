package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/usecase"
)

const storedJSON = `{"summary":"s","buyerPersonas":[],"channels":[],"toneOfVoice":"t","contentTypes":[],"recommendations":[]}`

// setupTestDB はテスト用のインメモリSQLiteを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&AnalysisModel{}), "failed to migrate table")
	return db
}

func newRecord(userID uint) *entity.AnalysisRecord {
	return &entity.AnalysisRecord{
		UserID: userID,
		AnalysisInput: entity.AnalysisInput{
			ProductDescription: "تطبيق لإدارة المشاريع",
			MainProblem:        "Y",
			TargetAudience:     "Z",
			BuyingFactors:      "A",
			Platforms:          "B",
			MessageTypes:       "C",
			AnalysisGoal:       "D",
		},
		AIAnalysis: storedJSON,
	}
}

func TestAnalysisGorm_CreateAndFindByID(t *testing.T) {
	repo := NewAnalysisGorm(setupTestDB(t))
	ctx := context.Background()

	rec := newRecord(1)
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, rec.ID)

	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, uint(1), found.UserID)
	assert.Equal(t, rec.AnalysisInput, found.AnalysisInput)
	assert.JSONEq(t, storedJSON, found.AIAnalysis)
}

func TestAnalysisGorm_FindByID_NotFound(t *testing.T) {
	repo := NewAnalysisGorm(setupTestDB(t))

	found, err := repo.FindByID(context.Background(), 999)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, usecase.ErrAnalysisNotFound)
}

func TestAnalysisGorm_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalysisGorm(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uint
	for i, userID := range []uint{1, 2, 1, 1} {
		rec := newRecord(userID)
		require.NoError(t, repo.Create(ctx, rec))
		// 作成日時を明示的にずらして並び順を検証する
		require.NoError(t, db.Model(&AnalysisModel{}).Where("id = ?", rec.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error)
		if userID == 1 {
			ids = append(ids, rec.ID)
		}
	}

	records, err := repo.FindByUserID(ctx, 1)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{records[0].ID, records[1].ID, records[2].ID})
	for _, r := range records {
		assert.Equal(t, uint(1), r.UserID)
	}
}

func TestAnalysisGorm_FindByUserID_Empty(t *testing.T) {
	repo := NewAnalysisGorm(setupTestDB(t))

	records, err := repo.FindByUserID(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestAnalysisGorm_Create_Nil(t *testing.T) {
	repo := NewAnalysisGorm(setupTestDB(t))

	assert.Error(t, repo.Create(context.Background(), nil))
}
