package usecase

import (
	"github.com/Fjodor83/MyFidelityCard/internal/config"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/service"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// UseCases는 모든 유스케이스를 담고 있는 구조체입니다.
type UseCases struct {
	Token        interfaces.TokenUseCase
	Identity     interfaces.IdentityUseCase
	Registration interfaces.RegistrationUseCase
	Profile      interfaces.ProfileUseCase
	Fidelity     interfaces.FidelityUseCase
	Card         interfaces.CardUseCase
}

// SetupUseCases는 모든 유스케이스 구현체를 생성하고 의존성을 주입합니다.
func SetupUseCases(
	logger *zap.Logger,
	cfg *config.Config,
	repositories *repository.Repositories,
) *UseCases {
	// 1. 다른 유스케이스에 의존하지 않는 것부터
	tokenUC := NewTokenUseCase(
		logger,
		repositories.Token,
		service.NewTokenGenerator(),
	)

	cardUC := NewCardUseCase(
		logger,
		repositories.Card,
		repositories.Store,
	)

	fidelityUC := NewFidelityUseCase(
		logger,
		repositories.Fidelity,
	)

	// 2. 토큰/카드 유스케이스를 사용하는 워크플로우
	identityUC := NewIdentityUseCase(
		logger,
		tokenUC,
		repositories.Fidelity,
		repositories.Mail,
		repositories.Store,
		cfg.Client.BaseURL,
	)

	registrationUC := NewRegistrationUseCase(
		logger,
		repositories.Fidelity,
		repositories.Mail,
		repositories.Store,
		repositories.Events,
		cardUC,
	)

	profileUC := NewProfileUseCase(
		logger,
		tokenUC,
		repositories.Fidelity,
	)

	return &UseCases{
		Token:        tokenUC,
		Identity:     identityUC,
		Registration: registrationUC,
		Profile:      profileUC,
		Fidelity:     fidelityUC,
		Card:         cardUC,
	}
}
