package model

import "time"

// TokenPayload Redis에 JSON으로 저장되는 토큰 값
type TokenPayload struct {
	Store     string    `json:"store"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
