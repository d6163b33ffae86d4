package http

import (
	"strings"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
)

// birthDateLayouts 기존 클라이언트가 보내는 날짜 형식
var birthDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// RegisterRequest POST /fidelity 요청 본문
type RegisterRequest struct {
	Code       string  `json:"cdFidelity"`
	StoreCode  string  `json:"store"`
	LastName   string  `json:"cognome"`
	FirstName  string  `json:"nome"`
	BirthDate  *string `json:"dataNascita"`
	Email      string  `json:"email"`
	Sex        *string `json:"sesso"`
	Address    *string `json:"indirizzo"`
	Locality   *string `json:"localita"`
	PostalCode *string `json:"cap"`
	Province   *string `json:"provincia"`
	Country    *string `json:"nazione"`
	Mobile     *string `json:"cellulare"`
}

// ToParams 등록 매개변수로 변환. 날짜 형식이 잘못되면 ok=false
func (r *RegisterRequest) ToParams() (params dto.RegisterParams, ok bool) {
	params = dto.RegisterParams{
		Code:       r.Code,
		StoreCode:  r.StoreCode,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		Email:      r.Email,
		Sex:        r.Sex,
		Address:    r.Address,
		Locality:   r.Locality,
		PostalCode: r.PostalCode,
		Province:   r.Province,
		Country:    r.Country,
		Mobile:     r.Mobile,
	}

	if r.BirthDate == nil || strings.TrimSpace(*r.BirthDate) == "" {
		return params, true
	}

	birthDate, ok := parseBirthDate(*r.BirthDate)
	if !ok {
		return params, false
	}
	params.BirthDate = &birthDate
	return params, true
}

func parseBirthDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// EmailValidationResponse GET /fidelity/email-validation 응답
type EmailValidationResponse struct {
	UserExists bool `json:"userExists"`
}

// ProfileErrorResponse 프로필 조회 실패 응답
type ProfileErrorResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}
