package constants

import "time"

// 토큰 관련 상수
const (
	// TokenExpiry 이메일 링크 토큰 유효 시간
	TokenExpiry = 15 * time.Minute

	// TokenExpiryMinutes 메일 본문 안내용
	TokenExpiryMinutes = 15

	// TokenGenerateAttempts 토큰 값 충돌 시 재시도 횟수
	TokenGenerateAttempts = 3

	// TokenKeyPrefix Redis 토큰 키 접두사
	TokenKeyPrefix = "fidelity:token:"
)

// 클라이언트 링크 경로
const (
	ProfilePath      = "/profilo"
	RegistrationPath = "/Fidelity-form"
)

// 카드/메일
const (
	CardAttachmentFormat = "SunsFidelityCard_%s.png"
	CardInitialPoints    = 0
)

// 이벤트
const (
	EventFidelityRegistered = "fidelity.registered"
)
