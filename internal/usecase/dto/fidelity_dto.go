package dto

import (
	"time"
)

// FidelityDTO 클라이언트에 반환되는 피델리티 카드 정보.
// 필드명은 기존 웹 클라이언트와 호환됩니다.
type FidelityDTO struct {
	ID         uint       `json:"idFidelity"`
	Code       string     `json:"cdFidelity"`
	StoreCode  string     `json:"store"`
	LastName   string     `json:"cognome"`
	FirstName  string     `json:"nome"`
	BirthDate  *time.Time `json:"dataNascita"`
	Email      string     `json:"email"`
	Sex        *string    `json:"sesso"`
	Address    *string    `json:"indirizzo"`
	Locality   *string    `json:"localita"`
	PostalCode *string    `json:"cap"`
	Province   *string    `json:"provincia"`
	Country    *string    `json:"nazione"`
	Mobile     *string    `json:"cellulare"`
}

// IsEmpty 조회 결과가 없는 빈 레코드인지
func (d *FidelityDTO) IsEmpty() bool {
	return d.ID == 0 && d.Code == "" && d.Email == ""
}

// RegisterParams 피델리티 카드 등록 매개변수
type RegisterParams struct {
	Code       string
	StoreCode  string
	LastName   string
	FirstName  string
	BirthDate  *time.Time
	Email      string
	Sex        *string
	Address    *string
	Locality   *string
	PostalCode *string
	Province   *string
	Country    *string
	Mobile     *string
}

// ValidateEmailResult 이메일 확인 결과
type ValidateEmailResult struct {
	UserExists      bool
	EmailDispatched bool
	Message         string
}
