// Package cache はリポジトリインターフェースのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"audience_backend/internal/feature/analysis/domain/entity"
	"audience_backend/internal/feature/analysis/usecase"
)

// CachingAnalysisRepository はAnalysisRepositoryにRedisのread-throughキャッシュを追加するデコレーターです。
// レコードは作成後に変更されないため、ID単位のキャッシュは無効化しません。
// ユーザー単位の一覧はキャッシュしません。
type CachingAnalysisRepository struct {
	inner     usecase.AnalysisRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.AnalysisRepository = (*CachingAnalysisRepository)(nil)

// NewCachingAnalysisRepository はCachingAnalysisRepositoryを生成します。
// ttlが0以下なら10分、namespaceが空なら"analyses"を使用します。rdbがnilの場合はinnerをそのまま呼び出します。
func NewCachingAnalysisRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AnalysisRepository, namespace string) *CachingAnalysisRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "analyses"
	}
	return &CachingAnalysisRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create は内部リポジトリへそのまま委譲します。キャッシュするのはIDで引いたレコードだけなので、無効化は不要です。
func (c *CachingAnalysisRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	return c.inner.Create(ctx, record)
}

// FindByID はキャッシュを確認し、なければ内部リポジトリから取得して保存します。
func (c *CachingAnalysisRepository) FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	var cached entity.AnalysisRecord
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	rec, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, rec)
	return rec, nil
}

// FindByUserID はキャッシュせずに内部リポジトリへ委譲します。
// 作成と並行した読み込みが古い一覧を書き戻すため、一覧はキャッシュしない。
func (c *CachingAnalysisRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.AnalysisRecord, error) {
	return c.inner.FindByUserID(ctx, userID)
}

// load はキーの値をoutへデコードします。壊れたエントリは削除します。
func (c *CachingAnalysisRepository) load(ctx context.Context, key string, out any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		slog.Warn("dropping corrupted analysis cache entry", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store はベストエフォートで値を保存します。
func (c *CachingAnalysisRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *CachingAnalysisRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
