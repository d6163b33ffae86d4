package errors

// 공통 에러 코드 정의
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrConflict        = "CONFLICT"
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
	// 외부 의존성(메일, 이미지 생성 등)의 일시적 실패
	ErrUnavailable = "UNAVAILABLE"
	ErrTimeout     = "TIMEOUT"
)
