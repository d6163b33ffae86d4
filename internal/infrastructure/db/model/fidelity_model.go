package model

import (
	"time"

	"gorm.io/datatypes"
)

// FidelityModel 데이터베이스 ORM 모델
type FidelityModel struct {
	ID         uint           `gorm:"column:id_fidelity;primaryKey;autoIncrement" json:"id_fidelity"`
	Code       string         `gorm:"column:cd_fidelity;size:20;not null;uniqueIndex" json:"cd_fidelity"`
	StoreCode  string         `gorm:"column:cd_ne;size:6;not null;index" json:"cd_ne"`
	LastName   string         `gorm:"column:cognome;size:50;not null" json:"cognome"`
	FirstName  string         `gorm:"column:nome;size:50;not null" json:"nome"`
	BirthDate  datatypes.Date `gorm:"column:data_nascita;not null" json:"data_nascita"`
	Email      string         `gorm:"column:email;size:100;not null;uniqueIndex" json:"email"`
	Sex        *string        `gorm:"column:sesso;size:1" json:"sesso,omitempty"`
	Address    *string        `gorm:"column:indirizzo;size:100" json:"indirizzo,omitempty"`
	Locality   *string        `gorm:"column:localita;size:100" json:"localita,omitempty"`
	PostalCode *string        `gorm:"column:cap;size:10" json:"cap,omitempty"`
	Province   *string        `gorm:"column:provincia;size:2" json:"provincia,omitempty"`
	Country    *string        `gorm:"column:nazione;size:2" json:"nazione,omitempty"`
	Mobile     *string        `gorm:"column:cellulare;size:20" json:"cellulare,omitempty"`

	// 메타데이터 필드
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 테이블 이름 지정
func (FidelityModel) TableName() string {
	return "fidelity"
}
