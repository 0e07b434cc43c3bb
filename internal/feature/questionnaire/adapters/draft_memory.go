// Package adapters は質問票フィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"sync"

	"audience_backend/internal/feature/questionnaire/domain/entity"
	"audience_backend/internal/feature/questionnaire/usecase"
)

// draftMemory はRedisが使えない場合のプロセス内DraftRepositoryです。
// 再起動で内容は失われます。
type draftMemory struct {
	mu     sync.Mutex
	drafts map[uint]entity.Flow
	locked map[uint]struct{}
}

var _ usecase.DraftRepository = (*draftMemory)(nil)

// NewDraftMemory はdraftMemoryを生成します。
func NewDraftMemory() *draftMemory {
	return &draftMemory{drafts: map[uint]entity.Flow{}, locked: map[uint]struct{}{}}
}

func cloneFlow(f entity.Flow) *entity.Flow {
	answers := make(map[int]string, len(f.Answers))
	for k, v := range f.Answers {
		answers[k] = v
	}
	return &entity.Flow{Current: f.Current, Answers: answers}
}

func (m *draftMemory) Load(ctx context.Context, userID uint) (*entity.Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.drafts[userID]
	if !ok {
		return nil, usecase.ErrDraftNotFound
	}
	return cloneFlow(f), nil
}

func (m *draftMemory) Save(ctx context.Context, userID uint, flow *entity.Flow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drafts[userID] = *cloneFlow(*flow)
	return nil
}

func (m *draftMemory) Delete(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.drafts, userID)
	return nil
}

func (m *draftMemory) Lock(ctx context.Context, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.locked[userID]; ok {
		return false, nil
	}
	m.locked[userID] = struct{}{}
	return true, nil
}

func (m *draftMemory) Unlock(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.locked, userID)
	return nil
}
