package mapper

import (
	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db/model"
)

// TokenRecordToPayload 토큰 레코드를 Redis 저장용 값으로 변환
func TokenRecordToPayload(record *entity.TokenRecord) *model.TokenPayload {
	if record == nil {
		return nil
	}

	return &model.TokenPayload{
		Store:     record.Data.Store,
		Email:     record.Data.Email,
		CreatedAt: record.CreatedAt,
	}
}

// TokenRecordFromPayload Redis 저장 값을 토큰 레코드로 변환
func TokenRecordFromPayload(token string, payload *model.TokenPayload) *entity.TokenRecord {
	if payload == nil {
		return nil
	}

	return &entity.TokenRecord{
		Token: token,
		Data: entity.TokenData{
			Store: payload.Store,
			Email: payload.Email,
		},
		CreatedAt: payload.CreatedAt,
	}
}
