package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	apperrors "github.com/Fjodor83/MyFidelityCard/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileUseCase_GetProfile(t *testing.T) {
	ctx := context.Background()
	tokenData := &entity.TokenData{Store: "NE001", Email: "mario@example.com"}
	fidelity := &entity.Fidelity{
		ID:        3,
		Code:      "ABC123",
		StoreCode: "NE001",
		FirstName: "Mario",
		LastName:  "Rossi",
		BirthDate: time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		Email:     "mario@example.com",
	}

	tests := []struct {
		name           string
		token          string
		setup          func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository)
		expectedErr    error
		expectedCode   string
		expectedReason string
	}{
		{
			name:  "profile found",
			token: "tok",
			setup: func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {
				tokenUC.On("GetTokenData", ctx, "tok").Return(tokenData, nil)
				repo.On("FindByEmail", ctx, "mario@example.com").Return(fidelity, nil)
			},
		},
		{
			name:           "missing token",
			token:          " ",
			setup:          func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {},
			expectedErr:    domainerrors.ErrTokenRequired,
			expectedReason: domainerrors.ReasonTokenRequired,
		},
		{
			name:  "invalid or expired token",
			token: "expired",
			setup: func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {
				tokenUC.On("GetTokenData", ctx, "expired").Return(nil, nil)
			},
			expectedErr:    domainerrors.ErrTokenInvalid,
			expectedReason: domainerrors.ReasonTokenInvalid,
		},
		{
			name:  "user not found",
			token: "tok",
			setup: func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {
				tokenUC.On("GetTokenData", ctx, "tok").Return(tokenData, nil)
				repo.On("FindByEmail", ctx, "mario@example.com").Return(nil, nil)
			},
			expectedErr:    domainerrors.ErrUserNotFound,
			expectedReason: domainerrors.ReasonUserNotFound,
		},
		{
			name:  "token storage failure",
			token: "tok",
			setup: func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {
				tokenUC.On("GetTokenData", ctx, "tok").
					Return(nil, apperrors.NewAppError(apperrors.ErrInternal, "Errore durante la lettura del token", nil))
			},
			expectedCode: apperrors.ErrInternal,
		},
		{
			name:  "profile lookup failure",
			token: "tok",
			setup: func(tokenUC *MockTokenUseCase, repo *MockFidelityRepository) {
				tokenUC.On("GetTokenData", ctx, "tok").Return(tokenData, nil)
				repo.On("FindByEmail", ctx, "mario@example.com").Return(nil, errors.New("db down"))
			},
			expectedCode: apperrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenUC := new(MockTokenUseCase)
			repo := new(MockFidelityRepository)
			tt.setup(tokenUC, repo)
			uc := NewProfileUseCase(zap.NewNop(), tokenUC, repo)

			result, err := uc.GetProfile(ctx, tt.token)

			if tt.expectedErr == nil && tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, uint(3), result.ID)
				assert.Equal(t, "ABC123", result.Code)
				assert.Equal(t, "Rossi", result.LastName)
				return
			}

			assert.Nil(t, result)
			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, tt.expectedReason, domainerrors.ReasonOf(err))
			}
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, apperrors.CodeOf(err))
			}
			tokenUC.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestProfileUseCase_GetProfile_SkipsRepositoryWithoutToken(t *testing.T) {
	tokenUC := new(MockTokenUseCase)
	repo := new(MockFidelityRepository)
	uc := NewProfileUseCase(zap.NewNop(), tokenUC, repo)

	_, err := uc.GetProfile(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrTokenRequired)
	tokenUC.AssertNotCalled(t, "GetTokenData", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
