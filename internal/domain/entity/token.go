package entity

import (
	"fmt"
	"strings"
	"time"
)

// legacyTokenSeparator 이메일 링크 확인 응답과 파일 저장소에서 쓰는 구분자
const legacyTokenSeparator = "\r\n"

// TokenData 토큰에 연결된 매장/이메일
type TokenData struct {
	Store string `json:"store"`
	Email string `json:"email"`
}

// Legacy "store\r\nemail" 형식
func (d TokenData) Legacy() string {
	return d.Store + legacyTokenSeparator + d.Email
}

// ParseLegacyTokenData "store\r\nemail" 형식 파싱
func ParseLegacyTokenData(raw string) (TokenData, error) {
	parts := strings.Split(raw, legacyTokenSeparator)
	if len(parts) < 2 {
		return TokenData{}, fmt.Errorf("토큰 데이터 형식 오류: %d개 필드", len(parts))
	}
	return TokenData{Store: parts[0], Email: parts[1]}, nil
}

// TokenRecord 저장소에 보관되는 토큰
type TokenRecord struct {
	Token     string
	Data      TokenData
	CreatedAt time.Time
}

// ExpiredAt 주어진 시각에 maxAge 기준으로 만료되었는지
func (r *TokenRecord) ExpiredAt(now time.Time, maxAge time.Duration) bool {
	return now.Sub(r.CreatedAt) >= maxAge
}
