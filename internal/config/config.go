package config

import (
	"time"

	"github.com/Fjodor83/MyFidelityCard/pkg/config"
	"github.com/Fjodor83/MyFidelityCard/pkg/logger"
	"go.uber.org/zap"
)

// ServiceName 설정 파일 이름이자 환경 변수 프리픽스 (FIDELITY_*)
const ServiceName = "fidelity"

// Config 피델리티 카드 서비스 설정 구조체
type Config struct {
	// 서비스 기본 정보
	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"service"`

	// HTTP 서버 설정
	Server struct {
		Port        string   `yaml:"port"`
		Timeout     int      `yaml:"timeout"`
		Debug       bool     `yaml:"debug"`
		CORSOrigins []string `yaml:"cors_origins"`
		RateLimit   struct {
			Rate      float64       `yaml:"rate"`
			Burst     int           `yaml:"burst"`
			ExpiresIn time.Duration `yaml:"expires_in"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`

	// 메일 링크가 가리키는 프론트엔드
	Client struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"client"`

	// 데이터베이스 설정
	Database struct {
		Driver          string `yaml:"driver"`
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Name            string `yaml:"name"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		SSLMode         string `yaml:"ssl_mode"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
		AutoMigrate     bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	// Redis 설정 (토큰 저장소, 이벤트 발행)
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	// 토큰 저장소 설정
	Token struct {
		Store           string        `yaml:"store"` // memory | redis | file
		Dir             string        `yaml:"dir"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
	} `yaml:"token"`

	// Email 설정
	Email struct {
		SenderName string `yaml:"sender_name"`
		Sender     string `yaml:"sender"`
		SMTPHost   string `yaml:"smtp_host"`
		SMTPPort   int    `yaml:"smtp_port"`
		SMTPUser   string `yaml:"smtp_user"`
		SMTPPass   string `yaml:"smtp_pass"`
	} `yaml:"email"`

	// 매장 목록 파일
	Stores struct {
		File string `yaml:"file"`
	} `yaml:"stores"`

	// 등록 이벤트 발행 설정
	Events struct {
		Enabled bool   `yaml:"enabled"`
		Channel string `yaml:"channel"`
	} `yaml:"events"`

	// 로그 설정
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	// 로거 인스턴스
	Logger *zap.Logger
}

// defaults 설정 파일에 없는 키의 기본값
var defaults = map[string]interface{}{
	"service.name":                 "fidelity-card",
	"service.version":              "dev",
	"server.port":                  "8080",
	"server.timeout":               30,
	"server.cors_origins":          []string{"https://localhost:7065"},
	"server.rate_limit.rate":       1.0,
	"server.rate_limit.burst":      5,
	"server.rate_limit.expires_in": "10m",
	"client.base_url":              "https://localhost:7065",
	"database.driver":              "postgres",
	"database.port":                5432,
	"database.ssl_mode":            "disable",
	"database.max_open_conns":      10,
	"database.max_idle_conns":      5,
	"database.conn_max_lifetime":   300,
	"database.auto_migrate":        true,
	"redis.port":                   6379,
	"token.store":                  "memory",
	"token.dir":                    "Token",
	"token.cleanup_interval":       "1m",
	"email.sender_name":            "Fidelity Card",
	"email.smtp_port":              587,
	"stores.file":                  "configs/stores.yaml",
	"events.channel":               "fidelity.events",
	"log.level":                    "info",
	"log.format":                   "json",
	"log.output":                   "stdout",
}

// Load 설정 파일 로드
func Load() (*Config, error) {
	cfg, err := config.LoadWithOptions(ServiceName, config.Options{Defaults: defaults})
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	// HTTP 서버 설정
	appConfig.Server.Port = cfg.GetString("server.port")
	appConfig.Server.Timeout = cfg.GetInt("server.timeout")
	appConfig.Server.Debug = cfg.GetBool("server.debug")
	appConfig.Server.CORSOrigins = cfg.GetStringSlice("server.cors_origins")
	appConfig.Server.RateLimit.Rate = cfg.GetFloat64("server.rate_limit.rate")
	appConfig.Server.RateLimit.Burst = cfg.GetInt("server.rate_limit.burst")
	appConfig.Server.RateLimit.ExpiresIn = cfg.GetDuration("server.rate_limit.expires_in")

	appConfig.Client.BaseURL = cfg.GetString("client.base_url")

	// 데이터베이스 설정
	appConfig.Database.Driver = cfg.GetString("database.driver")
	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")
	appConfig.Database.AutoMigrate = cfg.GetBool("database.auto_migrate")

	// Redis 설정
	appConfig.Redis.Enabled = cfg.GetBool("redis.enabled")
	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	// 토큰 저장소 설정
	appConfig.Token.Store = cfg.GetString("token.store")
	appConfig.Token.Dir = cfg.GetString("token.dir")
	appConfig.Token.CleanupInterval = cfg.GetDuration("token.cleanup_interval")

	// 이메일 설정
	appConfig.Email.SenderName = cfg.GetString("email.sender_name")
	appConfig.Email.Sender = cfg.GetString("email.sender")
	appConfig.Email.SMTPHost = cfg.GetString("email.smtp_host")
	appConfig.Email.SMTPPort = cfg.GetInt("email.smtp_port")
	appConfig.Email.SMTPUser = cfg.GetString("email.smtp_user")
	appConfig.Email.SMTPPass = cfg.GetString("email.smtp_pass")

	appConfig.Stores.File = cfg.GetString("stores.file")

	appConfig.Events.Enabled = cfg.GetBool("events.enabled")
	appConfig.Events.Channel = cfg.GetString("events.channel")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")

	// 로거 생성
	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		FilePath:    appConfig.Log.FilePath,
		Service:     appConfig.Service.Name,
		Development: appConfig.Server.Debug,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
