package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
)

// toFidelityDTO 엔티티를 클라이언트 DTO로 변환
func toFidelityDTO(f *entity.Fidelity) *dto.FidelityDTO {
	if f == nil {
		return &dto.FidelityDTO{}
	}

	birthDate := f.BirthDate
	return &dto.FidelityDTO{
		ID:         f.ID,
		Code:       f.Code,
		StoreCode:  f.StoreCode,
		LastName:   f.LastName,
		FirstName:  f.FirstName,
		BirthDate:  &birthDate,
		Email:      f.Email,
		Sex:        f.Sex,
		Address:    f.Address,
		Locality:   f.Locality,
		PostalCode: f.PostalCode,
		Province:   f.Province,
		Country:    f.Country,
		Mobile:     f.Mobile,
	}
}

// toFidelityInput 등록 매개변수를 엔티티 입력값으로 변환
func toFidelityInput(p dto.RegisterParams) entity.FidelityInput {
	return entity.FidelityInput{
		Code:       p.Code,
		StoreCode:  p.StoreCode,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		BirthDate:  p.BirthDate,
		Email:      p.Email,
		Sex:        p.Sex,
		Address:    p.Address,
		Locality:   p.Locality,
		PostalCode: p.PostalCode,
		Province:   p.Province,
		Country:    p.Country,
		Mobile:     p.Mobile,
	}
}

// normalizeStore 매장 코드 정규화. 비어 있으면 기본 매장
func normalizeStore(store string) string {
	store = strings.ToUpper(strings.TrimSpace(store))
	if store == "" {
		return entity.DefaultStoreCode
	}
	return store
}

// buildTokenLink 클라이언트 링크 생성 (base + path + ?token=)
func buildTokenLink(baseURL, path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", strings.TrimRight(baseURL, "/"), path, url.QueryEscape(token))
}
