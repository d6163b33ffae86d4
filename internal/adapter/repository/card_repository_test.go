package repository

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCardRepository(t *testing.T) *CardRepository {
	t.Helper()
	renderer, err := card.NewRenderer()
	require.NoError(t, err)
	return NewCardRepository(renderer).(*CardRepository)
}

func TestCardRepository_RenderQRCode(t *testing.T) {
	repo := newTestCardRepository(t)

	data, err := repo.RenderQRCode(context.Background(), "ABC123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%card.QRModulePixels)
}

func TestCardRepository_CanceledContext(t *testing.T) {
	repo := newTestCardRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.RenderCard(ctx, entity.Card{Code: "ABC123"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.RenderQRCode(ctx, "ABC123")
	assert.ErrorIs(t, err, context.Canceled)
}
