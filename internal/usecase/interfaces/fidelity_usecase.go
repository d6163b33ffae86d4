package interfaces

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
)

// IdentityUseCase 이메일 확인(기존 고객/신규 고객 분기) 유스케이스
type IdentityUseCase interface {
	// ValidateEmail 토큰을 발급하고 프로필 링크 또는 등록 링크를 메일로 보냅니다
	ValidateEmail(ctx context.Context, email, store string) (*dto.ValidateEmailResult, error)
}

// RegistrationUseCase 피델리티 카드 등록 유스케이스
type RegistrationUseCase interface {
	// Register 검증, 중복 확인 후 저장. 카드 이미지/환영 메일은 비동기로 처리됩니다
	Register(ctx context.Context, params dto.RegisterParams) (*dto.FidelityDTO, error)
}

// ProfileUseCase 토큰 기반 프로필 조회 유스케이스
type ProfileUseCase interface {
	GetProfile(ctx context.Context, token string) (*dto.FidelityDTO, error)
}

// FidelityUseCase 피델리티 카드 조회 유스케이스
type FidelityUseCase interface {
	// GetByEmail 없으면 빈 DTO
	GetByEmail(ctx context.Context, email string) (*dto.FidelityDTO, error)
}

// CardUseCase 카드 이미지, QR 코드 생성 유스케이스
type CardUseCase interface {
	QRCode(ctx context.Context, code string) ([]byte, error)
	RenderCard(ctx context.Context, fidelity *dto.FidelityDTO) ([]byte, error)
}
