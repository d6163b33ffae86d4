package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/service"
)

// FileTokenRepository 토큰 하나를 파일 하나로 저장하는 저장소.
// 파일 이름이 토큰, 내용이 "store\r\nemail", 수정 시각이 생성 시각입니다.
type FileTokenRepository struct {
	dir string
}

// NewFileTokenRepository 파일 토큰 저장소 생성. 디렉터리가 없으면 만듭니다.
func NewFileTokenRepository(dir string) (repository.TokenRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("토큰 디렉터리 생성 실패: %w", err)
	}
	return &FileTokenRepository{dir: dir}, nil
}

func (r *FileTokenRepository) path(token string) string {
	return filepath.Join(r.dir, token)
}

// Put 토큰 파일 생성
func (r *FileTokenRepository) Put(_ context.Context, record *entity.TokenRecord) error {
	// 경로 조작 방지
	if !service.IsWellFormedToken(record.Token) {
		return fmt.Errorf("잘못된 토큰 형식")
	}

	path := r.path(record.Token)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return repository.ErrTokenExists
		}
		return fmt.Errorf("토큰 파일 생성 실패: %w", err)
	}

	if _, err := f.WriteString(record.Data.Legacy()); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("토큰 파일 쓰기 실패: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("토큰 파일 닫기 실패: %w", err)
	}

	if !record.CreatedAt.IsZero() {
		_ = os.Chtimes(path, record.CreatedAt, record.CreatedAt)
	}
	return nil
}

// Get 토큰 파일 조회
func (r *FileTokenRepository) Get(_ context.Context, token string) (*entity.TokenRecord, error) {
	if !service.IsWellFormedToken(token) {
		return nil, nil
	}

	path := r.path(token)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("토큰 파일 조회 실패: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("토큰 파일 읽기 실패: %w", err)
	}

	data, err := entity.ParseLegacyTokenData(string(content))
	if err != nil {
		return nil, err
	}

	return &entity.TokenRecord{
		Token:     token,
		Data:      data,
		CreatedAt: info.ModTime(),
	}, nil
}

// DeleteOlderThan 수정 시각이 cutoff 이전(같은 시각 포함)인 토큰 파일 삭제
func (r *FileTokenRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("토큰 디렉터리 읽기 실패: %w", err)
	}

	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !service.IsWellFormedToken(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// 다른 정리 작업이 먼저 삭제한 경우
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(r.path(entry.Name())); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}
