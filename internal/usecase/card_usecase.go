package usecase

import (
	"context"
	"strings"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// CardUseCase 카드 이미지, QR 코드 유스케이스 구현체
type CardUseCase struct {
	logger          *zap.Logger
	cardRenderer    repository.CardRenderer
	storeRepository repository.StoreRepository
}

// NewCardUseCase 새 카드 유스케이스 생성
func NewCardUseCase(
	logger *zap.Logger,
	cardRenderer repository.CardRenderer,
	storeRepo repository.StoreRepository,
) interfaces.CardUseCase {
	return &CardUseCase{
		logger:          logger,
		cardRenderer:    cardRenderer,
		storeRepository: storeRepo,
	}
}

// QRCode 피델리티 코드 QR PNG
func (uc *CardUseCase) QRCode(ctx context.Context, code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrCodeRequired
	}

	png, err := uc.cardRenderer.RenderQRCode(ctx, code)
	if err != nil {
		uc.logger.Error("QR 코드 생성 실패", zap.String("code", code), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la generazione del QR code", err)
	}
	return png, nil
}

// RenderCard 카드 PNG 생성
func (uc *CardUseCase) RenderCard(ctx context.Context, fidelity *dto.FidelityDTO) ([]byte, error) {
	if fidelity == nil || strings.TrimSpace(fidelity.Code) == "" {
		return nil, domainerrors.ErrCodeRequired
	}

	card := entity.Card{
		Code:      fidelity.Code,
		FullName:  strings.TrimSpace(fidelity.FirstName + " " + fidelity.LastName),
		StoreName: lookupStoreName(ctx, uc.logger, uc.storeRepository, fidelity.StoreCode),
		Points:    constants.CardInitialPoints,
	}

	png, err := uc.cardRenderer.RenderCard(ctx, card)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la generazione della card", err)
	}
	return png, nil
}
