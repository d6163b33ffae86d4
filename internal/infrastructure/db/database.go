package db

import (
	"fmt"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db/model"
	"github.com/Fjodor83/MyFidelityCard/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 지원하는 드라이버
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 데이터베이스 설정
type Config struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SSLMode         string
	AutoMigrate     bool
}

// NewDatabase 드라이버에 맞는 데이터베이스 연결을 생성합니다.
// sqlite 드라이버는 Name을 파일 경로(또는 ":memory:")로 사용합니다.
func NewDatabase(config Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres, "":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.Password, config.Name,
			config.SSLMode,
		)
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(config.Name)
	default:
		return nil, fmt.Errorf("지원하지 않는 데이터베이스 드라이버: %s", config.Driver)
	}

	// GORM 로거 설정
	gormLogger := logger.NewGormLogger(
		zapLogger,
		gormlogger.Warn,
		time.Second, // Slow SQL 임계값
		true,        // ErrRecordNotFound 무시
	)

	// 유니크 제약 위반을 gorm.ErrDuplicatedKey 로 변환
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	// 연결 풀 설정
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("SQL DB 인스턴스 획득 실패: %w", err)
	}

	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	// 연결 테스트
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	if config.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	zapLogger.Info("데이터베이스 연결 성공",
		zap.String("driver", config.Driver),
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
		zap.String("database", config.Name),
		zap.Int("max_open_conns", config.MaxOpenConns),
		zap.Int("max_idle_conns", config.MaxIdleConns),
		zap.Duration("conn_max_lifetime", config.ConnMaxLifetime),
		zap.Bool("auto_migrate", config.AutoMigrate),
	)

	return db, nil
}

// Migrate 스키마 마이그레이션
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.FidelityModel{}); err != nil {
		return fmt.Errorf("스키마 마이그레이션 실패: %w", err)
	}
	return nil
}
