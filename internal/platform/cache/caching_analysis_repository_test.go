package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/usecase"
)

// mockAnalysisRepository はテスト用のAnalysisRepositoryモックです。
type mockAnalysisRepository struct {
	createFn       func(ctx context.Context, record *entity.AnalysisRecord) error
	findByIDFn     func(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
	findByUserIDFn func(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error)
	findCalls      int
}

func (m *mockAnalysisRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	record.ID = 1
	return nil
}

func (m *mockAnalysisRepository) FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	m.findCalls++
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrAnalysisNotFound
}

func (m *mockAnalysisRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
	m.findCalls++
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return []entity.AnalysisRecord{}, nil
}

var testRecord = entity.AnalysisRecord{
	ID:            5,
	UserID:        9,
	AnalysisInput: entity.AnalysisInput{ProductDescription: "X", AnalysisGoal: "D"},
	AIAnalysis:    `{"summary":"s"}`,
	CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestNewCachingAnalysisRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingAnalysisRepository(nil, 0, &mockAnalysisRepository{}, "")
	assert.Equal(t, 10*time.Minute, repo.ttl)
	assert.Equal(t, "analyses", repo.namespace)

	repo = NewCachingAnalysisRepository(nil, time.Minute, &mockAnalysisRepository{}, "custom")
	assert.Equal(t, time.Minute, repo.ttl)
	assert.Equal(t, "custom", repo.namespace)
}

func TestCachingAnalysisRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockAnalysisRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
			rec := testRecord
			return &rec, nil
		},
	}
	repo := NewCachingAnalysisRepository(nil, time.Minute, inner, "analyses")

	rec, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, testRecord.ID, rec.ID)

	_, err = repo.FindByUserID(context.Background(), 9)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), &entity.AnalysisRecord{UserID: 9}))
	assert.Equal(t, 2, inner.findCalls)
}

func TestCachingAnalysisRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, err := json.Marshal(testRecord)
	require.NoError(t, err)
	mock.ExpectGet("analyses:id:5").SetVal(string(cached))

	inner := &mockAnalysisRepository{}
	repo := NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	rec, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, testRecord.ID, rec.ID)
	assert.Equal(t, testRecord.AnalysisInput, rec.AnalysisInput)
	assert.Equal(t, testRecord.AIAnalysis, rec.AIAnalysis)
	assert.True(t, testRecord.CreatedAt.Equal(rec.CreatedAt))
	assert.Zero(t, inner.findCalls, "inner repository should not be called on cache hit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, err := json.Marshal(testRecord)
	require.NoError(t, err)
	mock.ExpectGet("analyses:id:5").RedisNil()
	mock.ExpectSet("analyses:id:5", expected, time.Minute).SetVal("OK")

	inner := &mockAnalysisRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
			rec := testRecord
			return &rec, nil
		},
	}
	repo := NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	rec, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, testRecord.ID, rec.ID)
	assert.Equal(t, 1, inner.findCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_FindByID_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("analyses:id:404").RedisNil()

	repo := NewCachingAnalysisRepository(rdb, time.Minute, &mockAnalysisRepository{}, "analyses")

	rec, err := repo.FindByID(context.Background(), 404)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, usecase.ErrAnalysisNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_FindByID_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, err := json.Marshal(testRecord)
	require.NoError(t, err)
	mock.ExpectGet("analyses:id:5").SetVal("invalid json")
	mock.ExpectDel("analyses:id:5").SetVal(1)
	mock.ExpectSet("analyses:id:5", expected, time.Minute).SetVal("OK")

	inner := &mockAnalysisRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
			rec := testRecord
			return &rec, nil
		},
	}
	repo := NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	rec, err := repo.FindByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, testRecord.ID, rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingAnalysisRepository_FindByUserID_NotCached は一覧取得がRedisに触れず、毎回内部リポジトリを読むことを検証します。
func TestCachingAnalysisRepository_FindByUserID_NotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	records := []entity.AnalysisRecord{testRecord}
	inner := &mockAnalysisRepository{
		findByUserIDFn: func(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
			return records, nil
		},
	}
	repo := NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	for i := 0; i < 2; i++ {
		got, err := repo.FindByUserID(context.Background(), 9)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, 2, inner.findCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingAnalysisRepository_ListSeesRecordCreatedDuringRead は一覧の読み込み中に作成されたレコードが
// 次の一覧取得で必ず見えることを検証します。
func TestCachingAnalysisRepository_ListSeesRecordCreatedDuringRead(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	var stored []entity.AnalysisRecord
	var repo *CachingAnalysisRepository
	inner := &mockAnalysisRepository{
		createFn: func(ctx context.Context, record *entity.AnalysisRecord) error {
			record.ID = uint(len(stored) + 1)
			stored = append(stored, *record)
			return nil
		},
	}
	first := true
	inner.findByUserIDFn = func(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
		snapshot := append([]entity.AnalysisRecord(nil), stored...)
		if first {
			// 一覧を読んだ直後に別リクエストが作成する
			first = false
			require.NoError(t, repo.Create(ctx, &entity.AnalysisRecord{UserID: userID}))
		}
		return snapshot, nil
	}
	repo = NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	got, err := repo.FindByUserID(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.FindByUserID(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_FindByUserID_InnerError(t *testing.T) {
	t.Parallel()

	inner := &mockAnalysisRepository{
		findByUserIDFn: func(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
			return nil, errors.New("db down")
		},
	}
	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()
	repo := NewCachingAnalysisRepository(rdb, time.Minute, inner, "analyses")

	_, err := repo.FindByUserID(context.Background(), 9)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_Create_DelegatesWithoutRedis(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	repo := NewCachingAnalysisRepository(rdb, time.Minute, &mockAnalysisRepository{}, "analyses")

	rec := &entity.AnalysisRecord{UserID: 9}
	require.NoError(t, repo.Create(context.Background(), rec))
	assert.Equal(t, uint(1), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingAnalysisRepository_Create_InnerError(t *testing.T) {
	t.Parallel()

	inner := &mockAnalysisRepository{
		createFn: func(ctx context.Context, record *entity.AnalysisRecord) error { return errors.New("insert failed") },
	}
	repo := NewCachingAnalysisRepository(nil, time.Minute, inner, "analyses")

	assert.Error(t, repo.Create(context.Background(), &entity.AnalysisRecord{UserID: 9}))
}
