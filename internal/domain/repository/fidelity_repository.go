package repository

import (
	"context"
	"errors"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// ErrDuplicateFidelity 유니크 인덱스(이메일, 코드) 위반
var ErrDuplicateFidelity = errors.New("fidelity già registrata")

// FidelityRepository는 피델리티 카드 저장소 인터페이스입니다.
// 조회 메서드는 레코드가 없으면 nil, nil 을 반환합니다.
type FidelityRepository interface {
	// FindByEmail 이메일(대소문자 무시)로 조회합니다.
	FindByEmail(ctx context.Context, email string) (*entity.Fidelity, error)

	// FindByCode 피델리티 코드(대소문자 무시)로 조회합니다.
	FindByCode(ctx context.Context, code string) (*entity.Fidelity, error)

	FindByID(ctx context.Context, id uint) (*entity.Fidelity, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create 새 레코드를 저장하고 ID, CreatedAt 을 엔티티에 반영합니다.
	// 유니크 제약 위반은 ErrDuplicateFidelity 로 반환합니다.
	Create(ctx context.Context, fidelity *entity.Fidelity) error

	Update(ctx context.Context, fidelity *entity.Fidelity) error

	Delete(ctx context.Context, id uint) error
}
