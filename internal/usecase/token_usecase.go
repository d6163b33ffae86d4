package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/service"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// TokenUseCase 이메일 링크 토큰 유스케이스 구현체
type TokenUseCase struct {
	logger          *zap.Logger
	tokenRepository repository.TokenRepository
	generator       service.TokenGenerator
	now             func() time.Time
}

// NewTokenUseCase 새 토큰 유스케이스 생성
func NewTokenUseCase(
	logger *zap.Logger,
	tokenRepo repository.TokenRepository,
	generator service.TokenGenerator,
) interfaces.TokenUseCase {
	return newTokenUseCase(logger, tokenRepo, generator, time.Now)
}

func newTokenUseCase(
	logger *zap.Logger,
	tokenRepo repository.TokenRepository,
	generator service.TokenGenerator,
	now func() time.Time,
) *TokenUseCase {
	return &TokenUseCase{
		logger:          logger,
		tokenRepository: tokenRepo,
		generator:       generator,
		now:             now,
	}
}

// GenerateToken (store, email)에 연결된 새 토큰 발급
func (uc *TokenUseCase) GenerateToken(ctx context.Context, email, store string) (string, error) {
	data := entity.TokenData{Store: store, Email: email}

	var lastErr error
	for attempt := 1; attempt <= constants.TokenGenerateAttempts; attempt++ {
		token, err := uc.generator.Generate()
		if err != nil {
			return "", apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la generazione del token", err)
		}

		record := &entity.TokenRecord{
			Token:     token,
			Data:      data,
			CreatedAt: uc.now(),
		}

		err = uc.tokenRepository.Put(ctx, record)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, repository.ErrTokenExists) {
			uc.logger.Error("토큰 저장 실패",
				zap.String("email", email),
				zap.String("store", store),
				zap.Error(err),
			)
			return "", apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la generazione del token", err)
		}

		uc.logger.Warn("토큰 값 충돌, 재시도", zap.Int("attempt", attempt))
		lastErr = err
	}

	return "", apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la generazione del token",
		fmt.Errorf("%d회 시도 후 실패: %w", constants.TokenGenerateAttempts, lastErr))
}

// GetTokenData 만료 토큰 정리 후 토큰 조회
func (uc *TokenUseCase) GetTokenData(ctx context.Context, token string) (*entity.TokenData, error) {
	uc.CleanupExpiredTokens(ctx, constants.TokenExpiry)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	record, err := uc.tokenRepository.Get(ctx, token)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la lettura del token", err)
	}
	if record == nil {
		return nil, nil
	}

	// 정리 직후라도 저장소에 남아 있는 만료 토큰은 없는 것으로 취급
	if record.ExpiredAt(uc.now(), constants.TokenExpiry) {
		return nil, nil
	}

	data := record.Data
	return &data, nil
}

// ValidateToken GetTokenData와 동일
func (uc *TokenUseCase) ValidateToken(ctx context.Context, token string) (*entity.TokenData, error) {
	return uc.GetTokenData(ctx, token)
}

// CleanupExpiredTokens maxAge 이상 지난 토큰 삭제
func (uc *TokenUseCase) CleanupExpiredTokens(ctx context.Context, maxAge time.Duration) int {
	cutoff := uc.now().Add(-maxAge)

	removed, err := uc.tokenRepository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		uc.logger.Warn("만료 토큰 정리 실패", zap.Error(err))
	}
	if removed > 0 {
		uc.logger.Debug("만료 토큰 정리", zap.Int("removed", removed))
	}
	return removed
}

// ConfirmEmail "store\r\nemail" 형식 응답
func (uc *TokenUseCase) ConfirmEmail(ctx context.Context, token string) string {
	data, err := uc.GetTokenData(ctx, token)
	if err != nil {
		apperrors.LogError(uc.logger, err, "이메일 확인 토큰 조회 실패")
		return ""
	}
	if data == nil {
		return ""
	}
	return data.Legacy()
}

// StartCleanupWorker ctx가 끝날 때까지 주기적으로 만료 토큰 정리
func (uc *TokenUseCase) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				uc.logger.Info("토큰 정리 워커 종료")
				return
			case <-ticker.C:
				uc.CleanupExpiredTokens(ctx, constants.TokenExpiry)
			}
		}
	}()
}
