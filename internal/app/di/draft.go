package di

import (
	"github.com/redis/go-redis/v9"

	qadapters "audience_backend/internal/feature/questionnaire/adapters"
	"audience_backend/internal/feature/questionnaire/usecase"
	"audience_backend/internal/platform/session"
)

// NewDraftRepository は質問票の下書き保存先を返します。
// Redisが利用可能ならRedis実装、そうでなければプロセス内メモリにフォールバックします。
func NewDraftRepository(rdb *redis.Client) usecase.DraftRepository {
	if rdb != nil {
		return session.NewDraftRedis(rdb, "", 0)
	}
	return qadapters.NewDraftMemory()
}
