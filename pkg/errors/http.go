package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPBody 에러 응답 본문
type HTTPBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다.
// 래핑된 내부 에러는 응답에 포함하지 않습니다.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		body := HTTPBody{Message: appErr.Message(), Errors: appErr.Details()}
		return echo.NewHTTPError(ToHTTPStatus(appErr.Code()), body).SetInternal(err)
	}

	// Echo 에러인 경우 그대로 반환
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		return echoErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, HTTPBody{
		Message: http.StatusText(http.StatusInternalServerError),
	}).SetInternal(err)
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return NewAppError(FromHTTPStatus(echoErr.Code), msg, echoErr.Internal)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}
