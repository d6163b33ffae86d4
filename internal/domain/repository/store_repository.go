package repository

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// StoreRepository 매장 목록 조회. 없는 코드는 nil, nil.
type StoreRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.Store, error)
}
