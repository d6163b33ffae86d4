package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string
	Message() string
	Unwrap() error
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	details []string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message 클라이언트에 노출 가능한 메시지 (내부 에러 제외)
func (e *AppError) Message() string {
	return e.message
}

// Details 필드 단위 상세 메시지
func (e *AppError) Details() []string {
	return e.details
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NewValidationError 필드 에러 목록을 가진 INVALID_ARGUMENT 에러 생성
func NewValidationError(message string, details []string, err error) *AppError {
	return &AppError{
		code:    ErrInvalidArgument,
		message: message,
		details: details,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 기존 AppError인 경우 코드와 상세 정보를 유지합니다
	var appErr *AppError
	if As(err, &appErr) {
		wrapped := NewAppError(appErr.Code(), message, err)
		wrapped.details = appErr.details
		return wrapped
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf 에러 체인에서 코드를 추출합니다. AppError가 없으면 INTERNAL
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}
