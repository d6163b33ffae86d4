package usecase

import (
	"context"
	"strings"

	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// ProfileUseCase 토큰 기반 프로필 조회 유스케이스 구현체
type ProfileUseCase struct {
	logger             *zap.Logger
	tokenUseCase       interfaces.TokenUseCase
	fidelityRepository repository.FidelityRepository
}

// NewProfileUseCase 새 프로필 유스케이스 생성
func NewProfileUseCase(
	logger *zap.Logger,
	tokenUC interfaces.TokenUseCase,
	fidelityRepo repository.FidelityRepository,
) interfaces.ProfileUseCase {
	return &ProfileUseCase{
		logger:             logger,
		tokenUseCase:       tokenUC,
		fidelityRepository: fidelityRepo,
	}
}

// GetProfile 토큰으로 피델리티 카드 조회.
// 빈 토큰, 유효하지 않은/만료 토큰, 사용자 없음을 서로 다른 에러로 반환합니다.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, token string) (*dto.FidelityDTO, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrTokenRequired
	}

	data, err := uc.tokenUseCase.GetTokenData(ctx, token)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	fidelity, err := uc.fidelityRepository.FindByEmail(ctx, data.Email)
	if err != nil {
		uc.logger.Error("프로필 조회 실패", zap.String("email", data.Email), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante il recupero del profilo", err)
	}
	if fidelity == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	return toFidelityDTO(fidelity), nil
}
