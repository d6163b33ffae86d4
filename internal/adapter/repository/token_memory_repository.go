package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
)

// MemoryTokenRepository 프로세스 메모리 토큰 저장소
type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]entity.TokenRecord
}

// NewMemoryTokenRepository 메모리 토큰 저장소 생성
func NewMemoryTokenRepository() repository.TokenRepository {
	return &MemoryTokenRepository{
		tokens: make(map[string]entity.TokenRecord),
	}
}

// Put 토큰 저장
func (r *MemoryTokenRepository) Put(_ context.Context, record *entity.TokenRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[record.Token]; ok {
		return repository.ErrTokenExists
	}
	r.tokens[record.Token] = *record
	return nil
}

// Get 토큰 조회
func (r *MemoryTokenRepository) Get(_ context.Context, token string) (*entity.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// DeleteOlderThan cutoff 이전(같은 시각 포함) 토큰 삭제
func (r *MemoryTokenRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, record := range r.tokens {
		if !record.CreatedAt.After(cutoff) {
			delete(r.tokens, token)
			removed++
		}
	}
	return removed, nil
}
