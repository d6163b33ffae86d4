package service

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TokenLength 토큰 길이. URL-safe 64문자 알파벳 기준 192비트.
const TokenLength = 32

// tokenAlphabet nanoid 기본 알파벳과 같음 (URL-safe)
const tokenAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TokenGenerator 토큰 값 생성기
type TokenGenerator interface {
	Generate() (string, error)
}

// NanoidTokenGenerator crypto/rand 기반 nanoid 생성기
type NanoidTokenGenerator struct {
	length int
}

// NewTokenGenerator 토큰 생성기 생성
func NewTokenGenerator() *NanoidTokenGenerator {
	return &NanoidTokenGenerator{length: TokenLength}
}

// Generate 새 토큰 값
func (g *NanoidTokenGenerator) Generate() (string, error) {
	token, err := gonanoid.Generate(tokenAlphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("토큰 생성 실패: %w", err)
	}
	return token, nil
}

// IsWellFormedToken 토큰 문자열이 생성기 알파벳과 길이를 따르는지
func IsWellFormedToken(token string) bool {
	if len(token) != TokenLength {
		return false
	}
	for _, r := range token {
		if !isTokenRune(r) {
			return false
		}
	}
	return true
}

func isTokenRune(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
