package interfaces

import (
	"context"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// TokenUseCase 이메일 링크 토큰 유스케이스 인터페이스
type TokenUseCase interface {
	// GenerateToken (store, email)에 연결된 새 토큰 발급
	GenerateToken(ctx context.Context, email, store string) (string, error)

	// GetTokenData 만료 토큰 정리 후 토큰 조회. 없거나 만료되면 nil
	GetTokenData(ctx context.Context, token string) (*entity.TokenData, error)

	// ValidateToken GetTokenData와 동일
	ValidateToken(ctx context.Context, token string) (*entity.TokenData, error)

	// CleanupExpiredTokens maxAge 이상 지난 토큰 삭제. 실패는 로그만 남깁니다
	CleanupExpiredTokens(ctx context.Context, maxAge time.Duration) int

	// ConfirmEmail "store\r\nemail" 형식 응답. 유효하지 않으면 빈 문자열
	ConfirmEmail(ctx context.Context, token string) string

	// StartCleanupWorker ctx가 끝날 때까지 주기적으로 만료 토큰 정리
	StartCleanupWorker(ctx context.Context, interval time.Duration)
}
