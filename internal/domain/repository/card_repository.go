package repository

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// CardRenderer 카드 이미지와 QR 코드를 PNG로 생성합니다.
type CardRenderer interface {
	RenderCard(ctx context.Context, card entity.Card) ([]byte, error)
	RenderQRCode(ctx context.Context, content string) ([]byte, error)
}
