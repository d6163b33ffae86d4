package db

import (
	"fmt"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/config"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/card"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/mail"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infrastructure 인프라스트럭처 구조체
type Infrastructure struct {
	DB           *gorm.DB
	RedisClient  *redis.Client // redis.enabled=false 이면 nil
	SMTPClient   *mail.SMTPClient
	CardRenderer *card.Renderer

	logger *zap.Logger
}

// NewInfrastructure 인프라스트럭처 초기화
func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	logger := cfg.Logger
	infrastructure := &Infrastructure{logger: logger}

	// 데이터베이스 연결 설정
	dbConfig := Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Name:            cfg.Database.Name,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		SSLMode:         cfg.Database.SSLMode,
		AutoMigrate:     cfg.Database.AutoMigrate,
	}

	// 데이터베이스 연결
	var err error
	infrastructure.DB, err = NewDatabase(dbConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	// Redis 는 토큰 저장소나 이벤트 발행에 필요할 때만 연결
	if cfg.Redis.Enabled {
		redisConfig := RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		infrastructure.RedisClient, err = NewRedisClient(redisConfig, logger)
		if err != nil {
			_ = infrastructure.Close()
			return nil, fmt.Errorf("Redis 연결 실패: %w", err)
		}
	}

	smtpConfig := mail.SMTPConfig{
		Host:       cfg.Email.SMTPHost,
		Port:       cfg.Email.SMTPPort,
		Username:   cfg.Email.SMTPUser,
		Password:   cfg.Email.SMTPPass,
		From:       cfg.Email.Sender,
		SenderName: cfg.Email.SenderName,
	}

	// SMTP 클라이언트 초기화
	infrastructure.SMTPClient = mail.NewSMTPClient(smtpConfig, logger)

	// 카드 렌더러 (폰트 파싱)
	infrastructure.CardRenderer, err = card.NewRenderer()
	if err != nil {
		_ = infrastructure.Close()
		return nil, fmt.Errorf("카드 렌더러 초기화 실패: %w", err)
	}

	logger.Info("인프라스트럭처 초기화 완료",
		zap.String("database", cfg.Database.Driver),
		zap.Bool("redis", infrastructure.RedisClient != nil),
		zap.String("email", cfg.Email.SMTPHost),
	)

	return infrastructure, nil
}

// Close 모든 연결 종료
func (i *Infrastructure) Close() error {
	// DB 연결 종료
	if i.DB != nil {
		sqlDB, err := i.DB.DB()
		if err != nil {
			return fmt.Errorf("DB 인스턴스 획득 실패: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("데이터베이스 연결 종료 실패: %w", err)
		}
	}

	// Redis 연결 종료
	if i.RedisClient != nil {
		if err := i.RedisClient.Close(); err != nil {
			return fmt.Errorf("Redis 연결 종료 실패: %w", err)
		}
	}

	i.logger.Info("모든 인프라스트럭처 연결 종료됨")
	return nil
}
