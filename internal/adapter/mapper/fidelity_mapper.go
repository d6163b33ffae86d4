package mapper

import (
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db/model"
	"gorm.io/datatypes"
)

// FidelityToModel 피델리티 엔티티를 DB 모델로 변환
func FidelityToModel(fidelity *entity.Fidelity) *model.FidelityModel {
	if fidelity == nil {
		return nil
	}

	return &model.FidelityModel{
		ID:         fidelity.ID,
		Code:       fidelity.Code,
		StoreCode:  fidelity.StoreCode,
		LastName:   fidelity.LastName,
		FirstName:  fidelity.FirstName,
		BirthDate:  datatypes.Date(fidelity.BirthDate),
		Email:      fidelity.Email,
		Sex:        fidelity.Sex,
		Address:    fidelity.Address,
		Locality:   fidelity.Locality,
		PostalCode: fidelity.PostalCode,
		Province:   fidelity.Province,
		Country:    fidelity.Country,
		Mobile:     fidelity.Mobile,
		CreatedAt:  fidelity.CreatedAt,
	}
}

// FidelityFromModel DB 모델을 피델리티 엔티티로 변환
func FidelityFromModel(m *model.FidelityModel) *entity.Fidelity {
	if m == nil {
		return nil
	}

	return &entity.Fidelity{
		ID:         m.ID,
		Code:       m.Code,
		StoreCode:  m.StoreCode,
		LastName:   m.LastName,
		FirstName:  m.FirstName,
		BirthDate:  time.Time(m.BirthDate),
		Email:      m.Email,
		Sex:        m.Sex,
		Address:    m.Address,
		Locality:   m.Locality,
		PostalCode: m.PostalCode,
		Province:   m.Province,
		Country:    m.Country,
		Mobile:     m.Mobile,
		CreatedAt:  m.CreatedAt,
	}
}
