package dto

// ProfileAccessEmailData 프로필 접근 메일 데이터
type ProfileAccessEmailData struct {
	FirstName     string
	Link          string
	ExpireMinutes int
}

// RegistrationEmailData 등록 안내 메일 데이터
type RegistrationEmailData struct {
	StoreName     string
	Link          string
	ExpireMinutes int
}

// WelcomeEmailData 가입 환영 메일 데이터
type WelcomeEmailData struct {
	FirstName string
	Code      string
	StoreName string
}
