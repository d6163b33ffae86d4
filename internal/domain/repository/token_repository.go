package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// ErrTokenExists 같은 값의 토큰이 이미 저장되어 있음
var ErrTokenExists = errors.New("token already exists")

// TokenRepository는 이메일 링크 토큰 저장소 인터페이스입니다.
// 메모리, Redis, 파일 구현이 있으며 토큰 하나가 독립된 키(파일)로 저장됩니다.
type TokenRepository interface {
	// Put 새 토큰을 저장합니다. 같은 값이 살아 있으면 ErrTokenExists.
	Put(ctx context.Context, record *entity.TokenRecord) error

	// Get 토큰을 조회합니다. 없으면 nil, nil.
	Get(ctx context.Context, token string) (*entity.TokenRecord, error)

	// DeleteOlderThan cutoff 시각 이전(같은 시각 포함)에 생성된 토큰을 삭제하고 삭제 개수를 반환합니다.
	// 이미 삭제된 토큰은 에러가 아닙니다.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
