package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"github.com/Fjodor83/MyFidelityCard/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// messageTooManyRequests 요청 제한 응답 메시지
const messageTooManyRequests = "Troppe richieste. Riprova tra qualche minuto."

// Server HTTP 서버 구조체
type Server struct {
	router  *echo.Echo
	server  *http.Server
	logger  *zap.Logger
	address string
	config  Config
}

// RateLimitConfig IP 당 요청 제한 설정. Rate 가 0 이면 제한하지 않습니다.
type RateLimitConfig struct {
	Rate      float64
	Burst     int
	ExpiresIn time.Duration
}

// Config HTTP 서버 설정
type Config struct {
	Port        string
	Timeout     int
	Debug       bool
	CORSOrigins []string
	RateLimit   RateLimitConfig
}

// RouteRegistrar 라우트 그룹에 핸들러를 등록하는 구현체
type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group, emailValidation ...echo.MiddlewareFunc)
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, zapLogger *zap.Logger) *Server {
	// Echo 인스턴스 생성
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug

	// 기본 미들웨어 설정
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 로거 설정
	logger.WithEchoLogger(e, zapLogger)

	// HTTP 서버 주소 설정
	address := fmt.Sprintf(":%s", cfg.Port)

	// HTTP 서버 설정
	server := &http.Server{
		Addr:         address,
		ReadTimeout:  time.Duration(cfg.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeout) * time.Second,
	}

	return &Server{
		router:  e,
		server:  server,
		logger:  zapLogger,
		address: address,
		config:  cfg,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes(fidelity RouteRegistrar) {
	// 헬스 체크
	s.router.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	var emailValidation []echo.MiddlewareFunc
	if limiter := s.rateLimiter(); limiter != nil {
		emailValidation = append(emailValidation, limiter)
	}

	fidelity.RegisterRoutes(s.router.Group("/fidelity"), emailValidation...)
}

// rateLimiter 메일 발송 경로용 IP 기반 요청 제한
func (s *Server) rateLimiter() echo.MiddlewareFunc {
	cfg := s.config.RateLimit
	if cfg.Rate <= 0 {
		return nil
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ToHTTPError(apperrors.NewAppError(apperrors.ErrInvalidArgument, messageTooManyRequests, err))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			s.logger.Warn("요청 제한 초과",
				zap.String("ip", identifier),
				zap.String("path", c.Path()),
			)
			return apperrors.ToHTTPError(apperrors.NewAppError(apperrors.ErrTooManyRequests, messageTooManyRequests, err))
		},
	})
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작",
		zap.String("address", s.address),
	)

	// 서버 시작
	s.server.Handler = s.router
	if err := s.router.StartServer(s.server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}
