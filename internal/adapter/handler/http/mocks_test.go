package http

import (
	"context"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/stretchr/testify/mock"
)

type MockTokenUseCase struct {
	mock.Mock
}

func (m *MockTokenUseCase) GenerateToken(ctx context.Context, email, store string) (string, error) {
	args := m.Called(ctx, email, store)
	return args.String(0), args.Error(1)
}

func (m *MockTokenUseCase) GetTokenData(ctx context.Context, token string) (*entity.TokenData, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TokenData), args.Error(1)
}

func (m *MockTokenUseCase) ValidateToken(ctx context.Context, token string) (*entity.TokenData, error) {
	return m.GetTokenData(ctx, token)
}

func (m *MockTokenUseCase) CleanupExpiredTokens(ctx context.Context, maxAge time.Duration) int {
	args := m.Called(ctx, maxAge)
	return args.Int(0)
}

func (m *MockTokenUseCase) ConfirmEmail(ctx context.Context, token string) string {
	args := m.Called(ctx, token)
	return args.String(0)
}

func (m *MockTokenUseCase) StartCleanupWorker(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

type MockIdentityUseCase struct {
	mock.Mock
}

func (m *MockIdentityUseCase) ValidateEmail(ctx context.Context, email, store string) (*dto.ValidateEmailResult, error) {
	args := m.Called(ctx, email, store)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ValidateEmailResult), args.Error(1)
}

type MockRegistrationUseCase struct {
	mock.Mock
}

func (m *MockRegistrationUseCase) Register(ctx context.Context, params dto.RegisterParams) (*dto.FidelityDTO, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FidelityDTO), args.Error(1)
}

type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) GetProfile(ctx context.Context, token string) (*dto.FidelityDTO, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FidelityDTO), args.Error(1)
}

type MockFidelityUseCase struct {
	mock.Mock
}

func (m *MockFidelityUseCase) GetByEmail(ctx context.Context, email string) (*dto.FidelityDTO, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FidelityDTO), args.Error(1)
}

type MockCardUseCase struct {
	mock.Mock
}

func (m *MockCardUseCase) QRCode(ctx context.Context, code string) ([]byte, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCardUseCase) RenderCard(ctx context.Context, fidelity *dto.FidelityDTO) ([]byte, error) {
	args := m.Called(ctx, fidelity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
