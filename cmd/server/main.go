package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	handlerhttp "github.com/Fjodor83/MyFidelityCard/internal/adapter/handler/http"
	"github.com/Fjodor83/MyFidelityCard/internal/adapter/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/config"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/http"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 2. 로거 가져오기
	logger := cfg.Logger
	defer logger.Sync()

	logger.Info("피델리티 카드 서비스를 시작합니다...",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
	)

	// 3. 인프라스트럭처 초기화
	infrastructure, err := db.NewInfrastructure(cfg)
	if err != nil {
		logger.Fatal("인프라스트럭처 초기화 실패", zap.Error(err))
	}
	defer infrastructure.Close()

	// 4. 레포지토리 초기화
	repositories, err := repository.InitRepositories(cfg, infrastructure)
	if err != nil {
		logger.Fatal("레포지토리 초기화 실패", zap.Error(err))
	}

	// 5. 유스케이스 초기화
	useCases := usecase.SetupUseCases(logger, cfg, repositories)

	// 6. 만료 토큰 정리 워커
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	useCases.Token.StartCleanupWorker(workerCtx, cfg.Token.CleanupInterval)

	// 7. HTTP 서버 설정
	httpConfig := http.Config{
		Port:        cfg.Server.Port,
		Timeout:     cfg.Server.Timeout,
		Debug:       cfg.Server.Debug,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit: http.RateLimitConfig{
			Rate:      cfg.Server.RateLimit.Rate,
			Burst:     cfg.Server.RateLimit.Burst,
			ExpiresIn: cfg.Server.RateLimit.ExpiresIn,
		},
	}

	fidelityHandler := handlerhttp.NewFidelityHandler(
		logger,
		useCases.Token,
		useCases.Identity,
		useCases.Registration,
		useCases.Profile,
		useCases.Fidelity,
		useCases.Card,
	)

	// 8. HTTP 서버 생성
	httpServer := http.NewServer(httpConfig, logger)
	httpServer.RegisterRoutes(fidelityHandler)

	// 9. 서버 시작
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error("HTTP 서버 종료", zap.Error(err))
		}
	}()

	// 10. 그레이스풀 종료를 위한 시그널 처리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("서버를 종료합니다...")

	stopWorker()

	// 서버 종료
	if err := httpServer.Stop(); err != nil {
		logger.Error("HTTP 서버 종료 오류", zap.Error(err))
	}

	logger.Info("서버가 정상적으로 종료되었습니다")
}
