package errors

import "net/http"

// 코드 -> HTTP 상태 매핑 테이블
var codeMapping = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrConflict:        http.StatusConflict,
	ErrTooManyRequests: http.StatusTooManyRequests,
	ErrUnavailable:     http.StatusServiceUnavailable,
	ErrTimeout:         http.StatusGatewayTimeout,
}

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromHTTPStatus는 HTTP 상태 코드를 내부 에러 코드로 변환합니다
func FromHTTPStatus(status int) string {
	for code, s := range codeMapping {
		if s == status {
			return code
		}
	}
	return ErrInternal
}
