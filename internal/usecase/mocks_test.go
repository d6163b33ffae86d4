package usecase

import (
	"context"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
	"github.com/stretchr/testify/mock"
)

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Put(ctx context.Context, record *entity.TokenRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTokenRepository) Get(ctx context.Context, token string) (*entity.TokenRecord, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TokenRecord), args.Error(1)
}

func (m *MockTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockTokenGenerator is a mock implementation of TokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockFidelityRepository is a mock implementation of FidelityRepository
type MockFidelityRepository struct {
	mock.Mock
}

func (m *MockFidelityRepository) FindByEmail(ctx context.Context, email string) (*entity.Fidelity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Fidelity), args.Error(1)
}

func (m *MockFidelityRepository) FindByCode(ctx context.Context, code string) (*entity.Fidelity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Fidelity), args.Error(1)
}

func (m *MockFidelityRepository) FindByID(ctx context.Context, id uint) (*entity.Fidelity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Fidelity), args.Error(1)
}

func (m *MockFidelityRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockFidelityRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockFidelityRepository) Create(ctx context.Context, fidelity *entity.Fidelity) error {
	args := m.Called(ctx, fidelity)
	return args.Error(0)
}

func (m *MockFidelityRepository) Update(ctx context.Context, fidelity *entity.Fidelity) error {
	args := m.Called(ctx, fidelity)
	return args.Error(0)
}

func (m *MockFidelityRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailRepository is a mock implementation of MailRepository
type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SendMail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *MockMailRepository) SendMailWithAttachment(ctx context.Context, to, subject, body string, attachments map[string][]byte) error {
	args := m.Called(ctx, to, subject, body, attachments)
	return args.Error(0)
}

// MockCardRenderer is a mock implementation of CardRenderer
type MockCardRenderer struct {
	mock.Mock
}

func (m *MockCardRenderer) RenderCard(ctx context.Context, card entity.Card) ([]byte, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCardRenderer) RenderQRCode(ctx context.Context, content string) ([]byte, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockStoreRepository is a mock implementation of StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByCode(ctx context.Context, code string) (*entity.Store, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishFidelityRegistered(ctx context.Context, fidelity *entity.Fidelity) error {
	args := m.Called(ctx, fidelity)
	return args.Error(0)
}

// MockTokenUseCase is a mock implementation of TokenUseCase
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

// MockCardUseCase is a mock implementation of CardUseCase
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

func strPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
