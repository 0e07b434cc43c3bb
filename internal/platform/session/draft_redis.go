// Package session はユーザーごとの一時的な状態をRedisに保持する実装を提供します。
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"audience_backend/internal/feature/questionnaire/domain/entity"
	"audience_backend/internal/feature/questionnaire/usecase"
)

const (
	// DefaultDraftTTL は下書きの保持期間です。保存のたびに延長されます。
	DefaultDraftTTL = 24 * time.Hour
	// DefaultLockTTL は送信ロックの最大保持期間です。LLM呼び出しのタイムアウトより長くします。
	DefaultLockTTL = 5 * time.Minute
)

// DraftRedis はusecase.DraftRepositoryのRedis実装です。
type DraftRedis struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	lockTTL time.Duration
}

var _ usecase.DraftRepository = (*DraftRedis)(nil)

// NewDraftRedis はDraftRedisを生成します。prefixが空なら"questionnaire:draft"を使用します。
func NewDraftRedis(client *redis.Client, prefix string, ttl time.Duration) *DraftRedis {
	if prefix == "" {
		prefix = "questionnaire:draft"
	}
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftRedis{client: client, prefix: prefix, ttl: ttl, lockTTL: DefaultLockTTL}
}

func (r *DraftRedis) key(userID uint) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

func (r *DraftRedis) lockKey(userID uint) string {
	return fmt.Sprintf("%s:lock:%d", r.prefix, userID)
}

// Load はユーザーの下書きを取得します。
func (r *DraftRedis) Load(ctx context.Context, userID uint) (*entity.Flow, error) {
	data, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrDraftNotFound
		}
		return nil, err
	}

	var flow entity.Flow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &flow, nil
}

// Save は下書きを保存し、TTLを更新します。
func (r *DraftRedis) Save(ctx context.Context, userID uint, flow *entity.Flow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return r.client.Set(ctx, r.key(userID), data, r.ttl).Err()
}

// Delete は下書きを削除します。存在しなくてもエラーにしません。
func (r *DraftRedis) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}

// Lock はSETNXで送信ロックを取得します。プロセスが落ちてもlockTTL後に解放されます。
func (r *DraftRedis) Lock(ctx context.Context, userID uint) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.lockKey(userID), "1", r.lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire draft lock: %w", err)
	}
	return ok, nil
}

// Unlock は送信ロックを解放します。
func (r *DraftRedis) Unlock(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.lockKey(userID)).Err()
}
