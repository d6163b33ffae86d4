package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/validation"
	"gopkg.in/yaml.v3"
)

// storeFile 매장 목록 YAML 파일 구조
type storeFile struct {
	Stores []entity.Store `yaml:"stores"`
}

// YAMLStoreRepository YAML 파일 기반 매장 목록
type YAMLStoreRepository struct {
	stores map[string]entity.Store
}

// NewYAMLStoreRepository 매장 목록 파일을 읽어 저장소를 생성합니다.
// 파일이 없으면 빈 목록으로 동작합니다.
func NewYAMLStoreRepository(path string) (repository.StoreRepository, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStaticStoreRepository(nil), nil
		}
		return nil, fmt.Errorf("매장 목록 파일 읽기 실패: %w", err)
	}

	stores, err := parseStores(content)
	if err != nil {
		return nil, fmt.Errorf("매장 목록 파싱 실패 (%s): %w", path, err)
	}
	return NewStaticStoreRepository(stores), nil
}

// NewStaticStoreRepository 주어진 목록으로 저장소 생성
func NewStaticStoreRepository(stores []entity.Store) repository.StoreRepository {
	byCode := make(map[string]entity.Store, len(stores))
	for _, s := range stores {
		s.Code = validation.NormalizeCode(s.Code)
		byCode[s.Code] = s
	}
	return &YAMLStoreRepository{stores: byCode}
}

func parseStores(content []byte) ([]entity.Store, error) {
	var file storeFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	for i, s := range file.Stores {
		if !validation.IsStoreCode(s.Code) {
			return nil, fmt.Errorf("%d번째 매장 코드가 올바르지 않음: %q", i+1, s.Code)
		}
	}
	return file.Stores, nil
}

// FindByCode 매장 코드로 조회
func (r *YAMLStoreRepository) FindByCode(_ context.Context, code string) (*entity.Store, error) {
	store, ok := r.stores[validation.NormalizeCode(code)]
	if !ok {
		return nil, nil
	}
	return &store, nil
}
