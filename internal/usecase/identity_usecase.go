package usecase

import (
	"context"
	"strings"

	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/validation"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"go.uber.org/zap"
)

// 이메일 확인 응답 메시지
const (
	messageProfileAccessSent = "Email di accesso inviata. Controlla la tua casella di posta."
	messageRegistrationSent  = "Email di verifica inviata. Controlla la tua casella di posta."
	messageEmailNotSent      = "Non è stato possibile inviare l'email. Riprova più tardi."
)

// IdentityUseCase 이메일 확인 유스케이스 구현체
type IdentityUseCase struct {
	logger             *zap.Logger
	tokenUseCase       interfaces.TokenUseCase
	fidelityRepository repository.FidelityRepository
	mailRepository     repository.MailRepository
	storeRepository    repository.StoreRepository
	clientURL          string
}

// NewIdentityUseCase 새 이메일 확인 유스케이스 생성
func NewIdentityUseCase(
	logger *zap.Logger,
	tokenUC interfaces.TokenUseCase,
	fidelityRepo repository.FidelityRepository,
	mailRepo repository.MailRepository,
	storeRepo repository.StoreRepository,
	clientURL string,
) interfaces.IdentityUseCase {
	return &IdentityUseCase{
		logger:             logger,
		tokenUseCase:       tokenUC,
		fidelityRepository: fidelityRepo,
		mailRepository:     mailRepo,
		storeRepository:    storeRepo,
		clientURL:          clientURL,
	}
}

// ValidateEmail 토큰을 발급하고 기존 고객이면 프로필 링크, 신규 고객이면 등록 링크를 보냅니다.
func (uc *IdentityUseCase) ValidateEmail(ctx context.Context, email, store string) (*dto.ValidateEmailResult, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	email = validation.NormalizeEmail(email)
	store = normalizeStore(store)

	// 기존/신규 고객 모두 토큰을 발급합니다
	token, err := uc.tokenUseCase.GenerateToken(ctx, email, store)
	if err != nil {
		return nil, err
	}

	existing, err := uc.fidelityRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("피델리티 조회 실패", zap.String("email", email), zap.Error(err))
		return nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la validazione", err)
	}

	result := &dto.ValidateEmailResult{UserExists: existing != nil}

	// 토큰이 발급된 뒤에는 요청이 취소되어도 메일은 보냅니다
	mailCtx := context.WithoutCancel(ctx)

	var sendErr error
	if existing != nil {
		link := buildTokenLink(uc.clientURL, constants.ProfilePath, token)
		sendErr = uc.sendProfileAccessEmail(mailCtx, email, existing.FirstName, link)
		result.Message = messageProfileAccessSent
	} else {
		link := buildTokenLink(uc.clientURL, constants.RegistrationPath, token)
		sendErr = uc.sendRegistrationEmail(mailCtx, email, uc.storeName(mailCtx, store), link)
		result.Message = messageRegistrationSent
	}

	// 메일 발송 실패는 워크플로우를 실패시키지 않습니다
	if sendErr != nil {
		transient := domainerrors.NewTransientError(domainerrors.ReasonMailDispatchFailed, messageEmailNotSent, sendErr)
		uc.logger.Warn("이메일 발송 실패",
			zap.String("email", email),
			zap.String("store", store),
			zap.Bool("user_exists", result.UserExists),
			zap.Error(transient),
		)
		result.Message = messageEmailNotSent
		return result, nil
	}

	result.EmailDispatched = true
	return result, nil
}

func (uc *IdentityUseCase) sendProfileAccessEmail(ctx context.Context, email, firstName, link string) error {
	body, err := renderProfileAccessEmail(dto.ProfileAccessEmailData{
		FirstName:     firstName,
		Link:          link,
		ExpireMinutes: constants.TokenExpiryMinutes,
	})
	if err != nil {
		return err
	}
	return uc.mailRepository.SendMail(ctx, email, subjectProfileAccess, body)
}

func (uc *IdentityUseCase) sendRegistrationEmail(ctx context.Context, email, storeName, link string) error {
	body, err := renderRegistrationEmail(dto.RegistrationEmailData{
		StoreName:     storeName,
		Link:          link,
		ExpireMinutes: constants.TokenExpiryMinutes,
	})
	if err != nil {
		return err
	}
	return uc.mailRepository.SendMail(ctx, email, subjectRegistration, body)
}

// storeName 매장 표시 이름. 조회 실패 시 코드 그대로 사용
func (uc *IdentityUseCase) storeName(ctx context.Context, code string) string {
	return lookupStoreName(ctx, uc.logger, uc.storeRepository, code)
}

func lookupStoreName(ctx context.Context, logger *zap.Logger, storeRepo repository.StoreRepository, code string) string {
	if storeRepo == nil {
		return code
	}
	store, err := storeRepo.FindByCode(ctx, code)
	if err != nil {
		logger.Warn("매장 조회 실패", zap.String("store", code), zap.Error(err))
		return code
	}
	if store == nil || store.Name == "" {
		return code
	}
	return store.Name
}
