package usecase

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/validation"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// FidelityUseCase 피델리티 카드 조회 유스케이스 구현체
type FidelityUseCase struct {
	logger             *zap.Logger
	fidelityRepository repository.FidelityRepository
}

// NewFidelityUseCase 새 조회 유스케이스 생성
func NewFidelityUseCase(logger *zap.Logger, fidelityRepo repository.FidelityRepository) interfaces.FidelityUseCase {
	return &FidelityUseCase{
		logger:             logger,
		fidelityRepository: fidelityRepo,
	}
}

// GetByEmail 이메일로 조회. 비어 있거나 없으면 빈 DTO
func (uc *FidelityUseCase) GetByEmail(ctx context.Context, email string) (*dto.FidelityDTO, error) {
	email = validation.NormalizeEmail(email)
	if email == "" {
		return &dto.FidelityDTO{}, nil
	}

	fidelity, err := uc.fidelityRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("이메일로 피델리티 조회 실패", zap.String("email", email), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante il recupero della fidelity", err)
	}

	return toFidelityDTO(fidelity), nil
}
