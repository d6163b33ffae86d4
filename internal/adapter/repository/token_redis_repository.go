package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/adapter/mapper"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db/model"
	"github.com/redis/go-redis/v9"
)

// scanBatchSize SCAN 한 번에 가져올 키 수
const scanBatchSize = 100

// RedisTokenRepository Redis 토큰 저장소.
// 키 TTL 이 만료를 담당하고 DeleteOlderThan 은 TTL 보다 짧은 maxAge 정리에만 키를 스캔합니다.
// 스캔은 토큰 키 수만큼 GET 을 수행하므로 TTL 과 같은 maxAge 로 호출하면 바로 반환합니다.
type RedisTokenRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	now       func() time.Time
}

// NewRedisTokenRepository Redis 토큰 저장소 생성
func NewRedisTokenRepository(client *redis.Client, keyPrefix string, ttl time.Duration) repository.TokenRepository {
	return &RedisTokenRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *RedisTokenRepository) key(token string) string {
	return r.keyPrefix + token
}

// Put 토큰 저장 (SETNX)
func (r *RedisTokenRepository) Put(ctx context.Context, record *entity.TokenRecord) error {
	value, err := json.Marshal(mapper.TokenRecordToPayload(record))
	if err != nil {
		return fmt.Errorf("토큰 직렬화 실패: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.key(record.Token), value, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("토큰 저장 실패: %w", err)
	}
	if !ok {
		return repository.ErrTokenExists
	}
	return nil
}

// Get 토큰 조회
func (r *RedisTokenRepository) Get(ctx context.Context, token string) (*entity.TokenRecord, error) {
	value, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("토큰 조회 실패: %w", err)
	}

	var payload model.TokenPayload
	if err := json.Unmarshal(value, &payload); err != nil {
		return nil, fmt.Errorf("토큰 역직렬화 실패: %w", err)
	}
	return mapper.TokenRecordFromPayload(token, &payload), nil
}

// DeleteOlderThan cutoff 이전(같은 시각 포함) 토큰 삭제
func (r *RedisTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	// cutoff 이전 키는 이미 TTL 로 만료됨
	if r.ttl > 0 && !cutoff.After(r.now().Add(-r.ttl)) {
		return 0, nil
	}

	var (
		cursor  uint64
		removed int
		errs    []error
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.keyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("토큰 키 스캔 실패: %w", err)
		}

		for _, key := range keys {
			record, err := r.Get(ctx, strings.TrimPrefix(key, r.keyPrefix))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			// 다른 정리 작업이 먼저 삭제한 경우
			if record == nil || record.CreatedAt.After(cutoff) {
				continue
			}

			deleted, err := r.client.Del(ctx, key).Result()
			if err != nil {
				errs = append(errs, fmt.Errorf("토큰 삭제 실패: %w", err))
				continue
			}
			removed += int(deleted)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return removed, errors.Join(errs...)
}
