// Package errors 도메인 에러 분류
package errors

import (
	"errors"
	"fmt"

	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
)

// Kind 에러 분류
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindNotFound   Kind = "NOT_FOUND"
	// 메일 발송, 카드 생성 실패 등. 워크플로우 결과에는 반영하지 않습니다.
	KindTransient Kind = "TRANSIENT_DEPENDENCY_FAILURE"
	KindFatal     Kind = "FATAL"
)

// FieldError 필드 단위 검증 에러
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FidelityError 도메인 에러
type FidelityError struct {
	Kind    Kind
	Reason  string
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *FidelityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s - %v", e.Reason, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *FidelityError) Unwrap() error {
	return e.Cause
}

// Is 같은 Reason이면 같은 에러로 취급합니다
func (e *FidelityError) Is(target error) bool {
	t, ok := target.(*FidelityError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// WithCause 원인 에러를 붙인 복사본
func (e *FidelityError) WithCause(cause error) *FidelityError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// FieldMessages 필드 에러 메시지 목록
func (e *FidelityError) FieldMessages() []string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return messages
}

// Reason 값
const (
	ReasonInvalidFields          = "INVALID_FIELDS"
	ReasonEmailRequired          = "EMAIL_REQUIRED"
	ReasonCodeRequired           = "CODE_REQUIRED"
	ReasonTokenRequired          = "TOKEN_REQUIRED"
	ReasonTokenInvalid           = "TOKEN_INVALID"
	ReasonUserNotFound           = "USER_NOT_FOUND"
	ReasonEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	ReasonCodeAlreadyRegistered  = "CODE_ALREADY_REGISTERED"
	ReasonDuplicateRecord        = "DUPLICATE_RECORD"
	ReasonMailDispatchFailed     = "MAIL_DISPATCH_FAILED"
	ReasonCardRenderFailed       = "CARD_RENDER_FAILED"
	ReasonEventPublishFailed     = "EVENT_PUBLISH_FAILED"
)

var (
	ErrEmailRequired = &FidelityError{Kind: KindValidation, Reason: ReasonEmailRequired, Message: "L'email è obbligatoria"}
	ErrCodeRequired  = &FidelityError{Kind: KindValidation, Reason: ReasonCodeRequired, Message: "Il codice è obbligatorio"}
	ErrTokenRequired = &FidelityError{Kind: KindValidation, Reason: ReasonTokenRequired, Message: "Token non valido"}
	ErrTokenInvalid  = &FidelityError{Kind: KindNotFound, Reason: ReasonTokenInvalid, Message: "Token non valido o scaduto"}
	ErrUserNotFound  = &FidelityError{Kind: KindNotFound, Reason: ReasonUserNotFound, Message: "Utente non trovato"}

	ErrEmailAlreadyRegistered = &FidelityError{Kind: KindConflict, Reason: ReasonEmailAlreadyRegistered, Message: "Esiste già una fidelity card associata a questa email"}
	ErrCodeAlreadyRegistered  = &FidelityError{Kind: KindConflict, Reason: ReasonCodeAlreadyRegistered, Message: "Il codice fidelity è già in uso"}
	ErrDuplicateRecord        = &FidelityError{Kind: KindConflict, Reason: ReasonDuplicateRecord, Message: "Email o codice fidelity già registrati"}
)

// NewValidationError 필드 에러 목록으로 검증 에러 생성
func NewValidationError(fields []FieldError) *FidelityError {
	return &FidelityError{
		Kind:    KindValidation,
		Reason:  ReasonInvalidFields,
		Message: "Dati non validi",
		Fields:  fields,
	}
}

// NewTransientError 외부 의존성 일시 실패
func NewTransientError(reason, message string, cause error) *FidelityError {
	return &FidelityError{Kind: KindTransient, Reason: reason, Message: message, Cause: cause}
}

// KindOf 에러 체인의 분류. 도메인 에러가 없으면 Fatal
func KindOf(err error) Kind {
	var fe *FidelityError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindFatal
}

// ReasonOf 에러 체인의 Reason. 도메인 에러가 없으면 빈 문자열
func ReasonOf(err error) string {
	var fe *FidelityError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

// kindCodes 분류 -> 공통 에러 코드
var kindCodes = map[Kind]string{
	KindValidation: apperrors.ErrInvalidArgument,
	KindConflict:   apperrors.ErrConflict,
	KindNotFound:   apperrors.ErrNotFound,
	KindTransient:  apperrors.ErrUnavailable,
	KindFatal:      apperrors.ErrInternal,
}

// ToAppError 도메인 에러를 공통 AppError로 변환합니다.
// 분류되지 않은 에러는 fallbackMessage를 가진 INTERNAL 에러가 됩니다.
func ToAppError(err error, fallbackMessage string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && KindOf(err) == KindFatal {
		return err
	}

	var fe *FidelityError
	if !errors.As(err, &fe) {
		return apperrors.NewAppError(apperrors.ErrInternal, fallbackMessage, err)
	}

	if fe.Kind == KindValidation && len(fe.Fields) > 0 {
		return apperrors.NewValidationError(fe.Message, fe.FieldMessages(), err)
	}
	return apperrors.NewAppError(kindCodes[fe.Kind], fe.Message, err)
}
