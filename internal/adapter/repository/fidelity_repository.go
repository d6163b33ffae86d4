package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Fjodor83/MyFidelityCard/internal/adapter/mapper"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/validation"
	"github.com/Fjodor83/MyFidelityCard/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type FidelityRepositoryImpl struct {
	db *gorm.DB
}

// NewFidelityRepository 피델리티 레포지토리 구현체 생성
func NewFidelityRepository(db *gorm.DB) repository.FidelityRepository {
	return &FidelityRepositoryImpl{db: db}
}

// FindByEmail 이메일로 조회 (대소문자 무시)
func (r *FidelityRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Fidelity, error) {
	return r.findOne(ctx, "LOWER(email) = ?", validation.NormalizeEmail(email))
}

// FindByCode 피델리티 코드로 조회 (대소문자 무시)
func (r *FidelityRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Fidelity, error) {
	return r.findOne(ctx, "UPPER(cd_fidelity) = ?", validation.NormalizeCode(code))
}

// FindByID ID로 조회
func (r *FidelityRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Fidelity, error) {
	return r.findOne(ctx, "id_fidelity = ?", id)
}

// ExistsByEmail 이메일 중복 여부
func (r *FidelityRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = ?", validation.NormalizeEmail(email))
}

// ExistsByCode 코드 중복 여부
func (r *FidelityRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "UPPER(cd_fidelity) = ?", validation.NormalizeCode(code))
}

// Create 새 피델리티 저장
func (r *FidelityRepositoryImpl) Create(ctx context.Context, fidelity *entity.Fidelity) error {
	fidelityModel := mapper.FidelityToModel(fidelity)

	if err := r.db.WithContext(ctx).Create(fidelityModel).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", repository.ErrDuplicateFidelity, err)
		}
		return err
	}

	// DB에서 생성된 값 반영
	fidelity.ID = fidelityModel.ID
	fidelity.CreatedAt = fidelityModel.CreatedAt
	return nil
}

// Update 피델리티 정보 업데이트
func (r *FidelityRepositoryImpl) Update(ctx context.Context, fidelity *entity.Fidelity) error {
	fidelityModel := mapper.FidelityToModel(fidelity)

	if err := r.db.WithContext(ctx).Save(fidelityModel).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", repository.ErrDuplicateFidelity, err)
		}
		return err
	}
	return nil
}

// Delete 피델리티 삭제
func (r *FidelityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FidelityModel{}, "id_fidelity = ?", id).Error
}

func (r *FidelityRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*entity.Fidelity, error) {
	var fidelityModel model.FidelityModel

	if err := r.db.WithContext(ctx).Where(query, args...).First(&fidelityModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.FidelityFromModel(&fidelityModel), nil
}

func (r *FidelityRepositoryImpl) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.FidelityModel{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isDuplicateKey 유니크 제약 위반 여부. TranslateError 를 지원하지 않는 드라이버는 메시지로 판단
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
