package repository

import (
	"fmt"

	"github.com/Fjodor83/MyFidelityCard/internal/config"
	domainrepo "github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/pkg/messaging"
	"go.uber.org/zap"
)

// 토큰 저장소 종류 (token.store)
const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
	TokenStoreFile   = "file"
)

// InitRepositories 모든 레포지토리를 초기화하고 컬렉션을 반환합니다
func InitRepositories(cfg *config.Config, infra *db.Infrastructure) (*domainrepo.Repositories, error) {
	logger := cfg.Logger

	// 피델리티 레포지토리
	fidelityRepo := NewFidelityRepository(infra.DB)

	// 토큰 레포지토리
	tokenRepo, err := newTokenRepository(cfg, infra)
	if err != nil {
		return nil, err
	}

	// 메일 레포지토리
	mailRepo := NewMailRepository(infra.SMTPClient)

	// 카드 렌더러
	cardRepo := NewCardRepository(infra.CardRenderer)

	// 매장 목록
	storeRepo, err := NewYAMLStoreRepository(cfg.Stores.File)
	if err != nil {
		return nil, err
	}

	// 이벤트 발행
	eventRepo := NewNoopEventRepository()
	if cfg.Events.Enabled {
		if infra.RedisClient == nil {
			return nil, fmt.Errorf("events.enabled 는 redis.enabled 가 필요합니다")
		}
		eventRepo = NewEventRepository(messaging.NewRedisBus(infra.RedisClient), cfg.Events.Channel)
	}

	logger.Info("레포지토리 초기화 완료",
		zap.String("token_store", cfg.Token.Store),
		zap.String("stores_file", cfg.Stores.File),
		zap.Bool("events", cfg.Events.Enabled),
	)

	// 레포지토리 컬렉션 생성 및 반환
	return domainrepo.NewRepositories(
		fidelityRepo,
		tokenRepo,
		mailRepo,
		cardRepo,
		storeRepo,
		eventRepo,
	), nil
}

func newTokenRepository(cfg *config.Config, infra *db.Infrastructure) (domainrepo.TokenRepository, error) {
	switch cfg.Token.Store {
	case TokenStoreMemory, "":
		return NewMemoryTokenRepository(), nil
	case TokenStoreRedis:
		if infra.RedisClient == nil {
			return nil, fmt.Errorf("token.store=redis 는 redis.enabled 가 필요합니다")
		}
		return NewRedisTokenRepository(infra.RedisClient, constants.TokenKeyPrefix, constants.TokenExpiry), nil
	case TokenStoreFile:
		return NewFileTokenRepository(cfg.Token.Dir)
	default:
		return nil, fmt.Errorf("지원하지 않는 토큰 저장소: %s", cfg.Token.Store)
	}
}
