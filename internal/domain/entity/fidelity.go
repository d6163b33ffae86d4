package entity

import (
	"strings"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/validation"
)

// DefaultStoreCode 매장 코드가 없을 때 사용하는 기본 매장
const DefaultStoreCode = "NE001"

// Fidelity 피델리티 카드(고객 적립 카드) 엔티티
type Fidelity struct {
	ID         uint
	Code       string // 피델리티 코드 (대문자)
	StoreCode  string // 등록 매장 코드 (대문자)
	LastName   string
	FirstName  string
	BirthDate  time.Time
	Email      string // 소문자
	Sex        *string
	Address    *string
	Locality   *string
	PostalCode *string
	Province   *string
	Country    *string
	Mobile     *string
	CreatedAt  time.Time
}

// FullName 카드와 메일에 표시되는 이름
func (f *Fidelity) FullName() string {
	return f.FirstName + " " + f.LastName
}

// FidelityInput 엔티티 생성 입력값. json 태그는 검증 에러의 필드명으로 사용됩니다.
type FidelityInput struct {
	Code       string     `json:"cdFidelity" validate:"required,fidelity_code"`
	StoreCode  string     `json:"store" validate:"required,store_code"`
	LastName   string     `json:"cognome" validate:"required,max=50"`
	FirstName  string     `json:"nome" validate:"required,max=50"`
	BirthDate  *time.Time `json:"dataNascita" validate:"required,birthdate"`
	Email      string     `json:"email" validate:"required,max=100,fidelity_email"`
	Sex        *string    `json:"sesso" validate:"omitempty,max=1"`
	Address    *string    `json:"indirizzo" validate:"omitempty,max=100"`
	Locality   *string    `json:"localita" validate:"omitempty,max=100"`
	PostalCode *string    `json:"cap" validate:"omitempty,max=10"`
	Province   *string    `json:"provincia" validate:"omitempty,max=2"`
	Country    *string    `json:"nazione" validate:"omitempty,max=2"`
	Mobile     *string    `json:"cellulare" validate:"omitempty,max=20,phone"`
}

// Normalize 공백/대소문자 정규화. 검증 전에 호출합니다.
func (in FidelityInput) Normalize() FidelityInput {
	in.Code = validation.NormalizeCode(in.Code)
	in.StoreCode = validation.NormalizeCode(in.StoreCode)
	in.LastName = strings.TrimSpace(in.LastName)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.Email = validation.NormalizeEmail(in.Email)
	in.Sex = validation.NormalizeOptional(in.Sex)
	in.Address = validation.NormalizeOptional(in.Address)
	in.Locality = validation.NormalizeOptional(in.Locality)
	in.PostalCode = validation.NormalizeOptional(in.PostalCode)
	in.Province = validation.NormalizeOptional(in.Province)
	in.Country = validation.NormalizeOptional(in.Country)
	in.Mobile = validation.NormalizeOptional(in.Mobile)
	return in
}

// Validate 정규화된 입력값 검증
func (in FidelityInput) Validate() error {
	return validation.Struct(in)
}

// NewFidelity 입력값을 정규화, 검증하여 새 엔티티를 생성합니다.
func NewFidelity(in FidelityInput) (*Fidelity, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Fidelity{
		Code:       in.Code,
		StoreCode:  in.StoreCode,
		LastName:   in.LastName,
		FirstName:  in.FirstName,
		BirthDate:  *in.BirthDate,
		Email:      in.Email,
		Sex:        in.Sex,
		Address:    in.Address,
		Locality:   in.Locality,
		PostalCode: in.PostalCode,
		Province:   in.Province,
		Country:    in.Country,
		Mobile:     in.Mobile,
	}, nil
}
