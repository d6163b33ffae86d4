package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// RegistrationUseCase 피델리티 카드 등록 유스케이스 구현체
type RegistrationUseCase struct {
	logger             *zap.Logger
	fidelityRepository repository.FidelityRepository
	mailRepository     repository.MailRepository
	storeRepository    repository.StoreRepository
	eventPublisher     repository.EventPublisher
	cardUseCase        interfaces.CardUseCase
}

// NewRegistrationUseCase 새 등록 유스케이스 생성
func NewRegistrationUseCase(
	logger *zap.Logger,
	fidelityRepo repository.FidelityRepository,
	mailRepo repository.MailRepository,
	storeRepo repository.StoreRepository,
	eventPublisher repository.EventPublisher,
	cardUC interfaces.CardUseCase,
) interfaces.RegistrationUseCase {
	return &RegistrationUseCase{
		logger:             logger,
		fidelityRepository: fidelityRepo,
		mailRepository:     mailRepo,
		storeRepository:    storeRepo,
		eventPublisher:     eventPublisher,
		cardUseCase:        cardUC,
	}
}

// Register 피델리티 카드 등록
func (uc *RegistrationUseCase) Register(ctx context.Context, params dto.RegisterParams) (*dto.FidelityDTO, error) {
	// 1. 형식 검증
	input := toFidelityInput(params).Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. 중복 확인 (이메일, 코드 순서)
	exists, err := uc.fidelityRepository.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, uc.fatal("이메일 중복 확인 실패", input, err)
	}
	if exists {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	}

	exists, err = uc.fidelityRepository.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, uc.fatal("코드 중복 확인 실패", input, err)
	}
	if exists {
		return nil, domainerrors.ErrCodeAlreadyRegistered
	}

	// 3. 엔티티 생성
	fidelity, err := entity.NewFidelity(input)
	if err != nil {
		return nil, err
	}

	// 4. 저장
	if err := uc.fidelityRepository.Create(ctx, fidelity); err != nil {
		if errors.Is(err, repository.ErrDuplicateFidelity) {
			return nil, domainerrors.ErrDuplicateRecord.WithCause(err)
		}
		return nil, uc.fatal("피델리티 저장 실패", input, err)
	}

	uc.logger.Info("피델리티 카드 등록 완료",
		zap.Uint("id", fidelity.ID),
		zap.String("code", fidelity.Code),
		zap.String("store", fidelity.StoreCode),
	)

	result := toFidelityDTO(fidelity)

	// 5. 카드 이미지, 환영 메일, 이벤트는 응답과 분리하여 처리
	registered := *fidelity
	go func() {
		bgCtx := context.Background()
		uc.runPostRegistration(bgCtx, &registered)
	}()

	return result, nil
}

// runPostRegistration 등록 후 작업. 실패는 로그만 남깁니다.
func (uc *RegistrationUseCase) runPostRegistration(ctx context.Context, fidelity *entity.Fidelity) {
	if err := uc.sendWelcomeEmail(ctx, fidelity); err != nil {
		uc.logger.Warn("환영 메일 발송 실패",
			zap.String("email", fidelity.Email),
			zap.String("code", fidelity.Code),
			zap.Error(err),
		)
	}

	if uc.eventPublisher == nil {
		return
	}
	if err := uc.eventPublisher.PublishFidelityRegistered(ctx, fidelity); err != nil {
		transient := domainerrors.NewTransientError(domainerrors.ReasonEventPublishFailed, "event publish failed", err)
		uc.logger.Warn("등록 이벤트 발행 실패",
			zap.String("event", constants.EventFidelityRegistered),
			zap.String("code", fidelity.Code),
			zap.Error(transient),
		)
	}
}

func (uc *RegistrationUseCase) sendWelcomeEmail(ctx context.Context, fidelity *entity.Fidelity) error {
	cardPNG, err := uc.cardUseCase.RenderCard(ctx, toFidelityDTO(fidelity))
	if err != nil {
		return domainerrors.NewTransientError(domainerrors.ReasonCardRenderFailed, "card render failed", err)
	}

	body, err := renderWelcomeEmail(dto.WelcomeEmailData{
		FirstName: fidelity.FirstName,
		Code:      fidelity.Code,
		StoreName: lookupStoreName(ctx, uc.logger, uc.storeRepository, fidelity.StoreCode),
	})
	if err != nil {
		return err
	}

	attachments := map[string][]byte{
		fmt.Sprintf(constants.CardAttachmentFormat, fidelity.Code): cardPNG,
	}
	subject := fmt.Sprintf(subjectWelcomeFormat, fidelity.FirstName)

	if err := uc.mailRepository.SendMailWithAttachment(ctx, fidelity.Email, subject, body, attachments); err != nil {
		return domainerrors.NewTransientError(domainerrors.ReasonMailDispatchFailed, "welcome mail failed", err)
	}
	return nil
}

func (uc *RegistrationUseCase) fatal(msg string, input entity.FidelityInput, err error) error {
	uc.logger.Error(msg,
		zap.String("email", input.Email),
		zap.String("code", input.Code),
		zap.Error(err),
	)
	return apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la registrazione", err)
}
