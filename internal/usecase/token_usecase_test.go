package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestTokenUseCase(repo *MockTokenRepository, gen *MockTokenGenerator) *TokenUseCase {
	return newTokenUseCase(zap.NewNop(), repo, gen, func() time.Time { return fixedNow })
}

func TestTokenUseCase_GenerateToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	gen := new(MockTokenGenerator)
	uc := newTestTokenUseCase(repo, gen)

	gen.On("Generate").Return("tok-1", nil).Once()
	repo.On("Put", ctx, mock.MatchedBy(func(r *entity.TokenRecord) bool {
		return r.Token == "tok-1" &&
			r.Data == entity.TokenData{Store: "NE001", Email: "mario@example.com"} &&
			r.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	token, err := uc.GenerateToken(ctx, "mario@example.com", "NE001")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestTokenUseCase_GenerateToken_RetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	gen := new(MockTokenGenerator)
	uc := newTestTokenUseCase(repo, gen)

	gen.On("Generate").Return("taken", nil).Once()
	gen.On("Generate").Return("fresh", nil).Once()
	repo.On("Put", ctx, mock.MatchedBy(func(r *entity.TokenRecord) bool { return r.Token == "taken" })).
		Return(repository.ErrTokenExists).Once()
	repo.On("Put", ctx, mock.MatchedBy(func(r *entity.TokenRecord) bool { return r.Token == "fresh" })).
		Return(nil).Once()

	token, err := uc.GenerateToken(ctx, "mario@example.com", "NE001")

	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	repo.AssertExpectations(t)
}

func TestTokenUseCase_GenerateToken_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(repo *MockTokenRepository, gen *MockTokenGenerator)
		expectedErr error
	}{
		{
			name: "generator failure",
			setup: func(repo *MockTokenRepository, gen *MockTokenGenerator) {
				gen.On("Generate").Return("", errors.New("entropy"))
			},
		},
		{
			name: "storage failure",
			setup: func(repo *MockTokenRepository, gen *MockTokenGenerator) {
				gen.On("Generate").Return("tok", nil)
				repo.On("Put", ctx, mock.Anything).Return(errors.New("disk full"))
			},
		},
		{
			name: "collisions exhausted",
			setup: func(repo *MockTokenRepository, gen *MockTokenGenerator) {
				gen.On("Generate").Return("tok", nil).Times(constants.TokenGenerateAttempts)
				repo.On("Put", ctx, mock.Anything).Return(repository.ErrTokenExists).Times(constants.TokenGenerateAttempts)
			},
			expectedErr: repository.ErrTokenExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTokenRepository)
			gen := new(MockTokenGenerator)
			tt.setup(repo, gen)
			uc := newTestTokenUseCase(repo, gen)

			token, err := uc.GenerateToken(ctx, "mario@example.com", "NE001")

			assert.Empty(t, token)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			repo.AssertExpectations(t)
			gen.AssertExpectations(t)
		})
	}
}

func TestTokenUseCase_GetTokenData(t *testing.T) {
	ctx := context.Background()
	data := entity.TokenData{Store: "NE001", Email: "mario@example.com"}
	cutoff := fixedNow.Add(-constants.TokenExpiry)

	tests := []struct {
		name     string
		token    string
		setup    func(repo *MockTokenRepository)
		expected *entity.TokenData
		wantErr  bool
	}{
		{
			name:  "valid token",
			token: "tok",
			setup: func(repo *MockTokenRepository) {
				repo.On("Get", ctx, "tok").Return(&entity.TokenRecord{
					Token: "tok", Data: data, CreatedAt: fixedNow.Add(-5 * time.Minute),
				}, nil)
			},
			expected: &data,
		},
		{
			name:  "unknown token",
			token: "missing",
			setup: func(repo *MockTokenRepository) {
				repo.On("Get", ctx, "missing").Return(nil, nil)
			},
		},
		{
			name:  "expired but not yet swept",
			token: "old",
			setup: func(repo *MockTokenRepository) {
				repo.On("Get", ctx, "old").Return(&entity.TokenRecord{
					Token: "old", Data: data, CreatedAt: fixedNow.Add(-constants.TokenExpiry),
				}, nil)
			},
		},
		{
			name:  "blank token",
			token: "   ",
			setup: func(repo *MockTokenRepository) {},
		},
		{
			name:  "storage failure",
			token: "tok",
			setup: func(repo *MockTokenRepository) {
				repo.On("Get", ctx, "tok").Return(nil, errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTokenRepository)
			repo.On("DeleteOlderThan", ctx, cutoff).Return(0, nil).Once()
			tt.setup(repo)
			uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

			result, err := uc.GetTokenData(ctx, tt.token)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrInternal, apperrors.CodeOf(err))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTokenUseCase_ValidateToken_NotSingleUse(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

	record := &entity.TokenRecord{
		Token:     "tok",
		Data:      entity.TokenData{Store: "NE001", Email: "mario@example.com"},
		CreatedAt: fixedNow.Add(-time.Minute),
	}
	repo.On("DeleteOlderThan", ctx, mock.Anything).Return(0, nil)
	repo.On("Get", ctx, "tok").Return(record, nil)

	first, err := uc.ValidateToken(ctx, "tok")
	require.NoError(t, err)
	second, err := uc.ValidateToken(ctx, "tok")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "Get", 2)
}

func TestTokenUseCase_CleanupExpiredTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("returns removed count", func(t *testing.T) {
		repo := new(MockTokenRepository)
		repo.On("DeleteOlderThan", ctx, fixedNow.Add(-time.Hour)).Return(3, nil).Once()
		uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

		assert.Equal(t, 3, uc.CleanupExpiredTokens(ctx, time.Hour))
		repo.AssertExpectations(t)
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		repo := new(MockTokenRepository)
		repo.On("DeleteOlderThan", ctx, mock.Anything).Return(1, errors.New("partial")).Once()
		uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

		assert.Equal(t, 1, uc.CleanupExpiredTokens(ctx, constants.TokenExpiry))
		repo.AssertExpectations(t)
	})
}

func TestTokenUseCase_ConfirmEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

	repo.On("DeleteOlderThan", ctx, mock.Anything).Return(0, nil)
	repo.On("Get", ctx, "tok").Return(&entity.TokenRecord{
		Token:     "tok",
		Data:      entity.TokenData{Store: "NE002", Email: "mario@example.com"},
		CreatedAt: fixedNow,
	}, nil)
	repo.On("Get", ctx, "missing").Return(nil, nil)
	repo.On("Get", ctx, "broken").Return(nil, errors.New("io"))

	assert.Equal(t, "NE002\r\nmario@example.com", uc.ConfirmEmail(ctx, "tok"))
	assert.Equal(t, "", uc.ConfirmEmail(ctx, "missing"))
	assert.Equal(t, "", uc.ConfirmEmail(ctx, "broken"))
}

func TestTokenUseCase_StartCleanupWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := new(MockTokenRepository)
	swept := make(chan struct{}, 10)
	repo.On("DeleteOlderThan", mock.Anything, mock.Anything).
		Return(0, nil).
		Run(func(args mock.Arguments) {
			select {
			case swept <- struct{}{}:
			default:
			}
		})
	uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

	uc.StartCleanupWorker(ctx, 5*time.Millisecond)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("cleanup worker did not run")
	}
}

func TestTokenUseCase_StartCleanupWorker_Disabled(t *testing.T) {
	repo := new(MockTokenRepository)
	uc := newTestTokenUseCase(repo, new(MockTokenGenerator))

	uc.StartCleanupWorker(context.Background(), 0)

	time.Sleep(10 * time.Millisecond)
	repo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
}
