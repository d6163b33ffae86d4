package repository

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/card"
)

// CardRepository 카드 렌더러 어댑터
type CardRepository struct {
	renderer *card.Renderer
}

// NewCardRepository 카드 렌더러 어댑터 생성
func NewCardRepository(renderer *card.Renderer) repository.CardRenderer {
	return &CardRepository{renderer: renderer}
}

// RenderCard 카드 PNG 생성
func (c *CardRepository) RenderCard(ctx context.Context, fidelityCard entity.Card) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.renderer.RenderCard(fidelityCard)
}

// RenderQRCode QR PNG 생성
func (c *CardRepository) RenderQRCode(ctx context.Context, content string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.renderer.RenderQRCode(content, card.QRModulePixels)
}
