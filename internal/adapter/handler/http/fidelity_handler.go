package http

import (
	"net/http"
	"strings"

	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/interfaces"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 핸들러 응답 메시지
const (
	messageInvalidRequest   = "Richiesta non valida"
	messageInvalidBirthDate = "Data di nascita non valida"
	messageRegisterFailed   = "Errore durante la registrazione"
	messageValidationFailed = "Errore durante la validazione"
	messageLookupFailed     = "Errore durante il recupero della fidelity"
	messageProfileFailed    = "Errore durante il recupero del profilo"
	messageQRCodeFailed     = "Errore durante la generazione del QR code"
)

// FidelityHandler /fidelity 엔드포인트 핸들러
type FidelityHandler struct {
	logger              *zap.Logger
	tokenUseCase        interfaces.TokenUseCase
	identityUseCase     interfaces.IdentityUseCase
	registrationUseCase interfaces.RegistrationUseCase
	profileUseCase      interfaces.ProfileUseCase
	fidelityUseCase     interfaces.FidelityUseCase
	cardUseCase         interfaces.CardUseCase
}

// NewFidelityHandler 새 핸들러 생성
func NewFidelityHandler(
	logger *zap.Logger,
	tokenUC interfaces.TokenUseCase,
	identityUC interfaces.IdentityUseCase,
	registrationUC interfaces.RegistrationUseCase,
	profileUC interfaces.ProfileUseCase,
	fidelityUC interfaces.FidelityUseCase,
	cardUC interfaces.CardUseCase,
) *FidelityHandler {
	return &FidelityHandler{
		logger:              logger,
		tokenUseCase:        tokenUC,
		identityUseCase:     identityUC,
		registrationUseCase: registrationUC,
		profileUseCase:      profileUC,
		fidelityUseCase:     fidelityUC,
		cardUseCase:         cardUC,
	}
}

// RegisterRoutes 라우트 등록. emailValidation 미들웨어는 메일을 발송하는 경로에만 적용됩니다.
func (h *FidelityHandler) RegisterRoutes(g *echo.Group, emailValidation ...echo.MiddlewareFunc) {
	g.GET("", h.GetByEmail)
	g.POST("", h.Register)
	g.GET("/email-validation", h.EmailValidation, emailValidation...)
	g.GET("/email-confirmation", h.EmailConfirmation)
	g.GET("/profile", h.GetProfile)
	g.GET("/qrcode/:code", h.GetQRCode)
}

// GetByEmail GET /fidelity?email=
func (h *FidelityHandler) GetByEmail(c echo.Context) error {
	result, err := h.fidelityUseCase.GetByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return apperrors.ToHTTPError(domainerrors.ToAppError(err, messageLookupFailed))
	}
	return c.JSON(http.StatusOK, result)
}

// EmailValidation GET /fidelity/email-validation?email=&store=
func (h *FidelityHandler) EmailValidation(c echo.Context) error {
	result, err := h.identityUseCase.ValidateEmail(
		c.Request().Context(),
		c.QueryParam("email"),
		c.QueryParam("store"),
	)
	if err != nil {
		// 기존 클라이언트는 실패를 모두 400 + 메시지로 처리합니다
		appErr := domainerrors.ToAppError(err, messageValidationFailed)
		apperrors.LogError(h.logger, appErr, "이메일 검증 실패")
		return c.JSON(http.StatusBadRequest, apperrors.HTTPBody{Message: shortMessage(appErr, messageValidationFailed)})
	}

	return c.JSON(http.StatusOK, EmailValidationResponse{UserExists: result.UserExists})
}

// EmailConfirmation GET /fidelity/email-confirmation?token=
// 유효한 토큰이면 "store\r\nemail", 아니면 빈 문자열
func (h *FidelityHandler) EmailConfirmation(c echo.Context) error {
	payload := h.tokenUseCase.ConfirmEmail(c.Request().Context(), c.QueryParam("token"))
	return c.String(http.StatusOK, payload)
}

// GetProfile GET /fidelity/profile?token=
func (h *FidelityHandler) GetProfile(c echo.Context) error {
	result, err := h.profileUseCase.GetProfile(c.Request().Context(), c.QueryParam("token"))
	if err == nil {
		return c.JSON(http.StatusOK, result)
	}

	// 빈 토큰, 만료 토큰, 사용자 없음은 모두 404, reason 으로 구분
	switch domainerrors.ReasonOf(err) {
	case domainerrors.ReasonTokenRequired, domainerrors.ReasonTokenInvalid, domainerrors.ReasonUserNotFound:
		var fe *domainerrors.FidelityError
		apperrors.As(err, &fe)
		return c.JSON(http.StatusNotFound, ProfileErrorResponse{Message: fe.Message, Reason: fe.Reason})
	}

	return apperrors.ToHTTPError(domainerrors.ToAppError(err, messageProfileFailed))
}

// GetQRCode GET /fidelity/qrcode/:code
func (h *FidelityHandler) GetQRCode(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		return apperrors.ToHTTPError(domainerrors.ToAppError(domainerrors.ErrCodeRequired, messageQRCodeFailed))
	}

	png, err := h.cardUseCase.QRCode(c.Request().Context(), code)
	if err != nil {
		return apperrors.ToHTTPError(domainerrors.ToAppError(err, messageQRCodeFailed))
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

// Register POST /fidelity
func (h *FidelityHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ToHTTPError(apperrors.NewAppError(apperrors.ErrInvalidArgument, messageInvalidRequest, err))
	}

	params, ok := req.ToParams()
	if !ok {
		return apperrors.ToHTTPError(apperrors.NewValidationError(
			messageInvalidRequest, []string{messageInvalidBirthDate}, nil,
		))
	}

	result, err := h.registrationUseCase.Register(c.Request().Context(), params)
	if err != nil {
		return apperrors.ToHTTPError(domainerrors.ToAppError(err, messageRegisterFailed))
	}

	return c.JSON(http.StatusOK, result)
}

// shortMessage 응답에 내보낼 AppError 메시지. 원인 에러는 노출하지 않습니다
func shortMessage(err error, fallback string) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}
	return fallback
}
