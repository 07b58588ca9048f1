package authusecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notevault/internal/app"
	"notevault/internal/domain/entities"
)

func TestCurrentUser(t *testing.T) {
	testEmail := "test@example.com"
	testToken := "valid-token"
	cacheKey := "identity:" + testEmail
	cacheTTL := 15 * time.Minute

	existingUser := &entities.User{
		ID:           "user-id-1",
		Email:        testEmail,
		PasswordHash: "hashed_password",
		IsAdmin:      false,
	}

	cachedJSON, err := json.Marshal(existingUser)
	require.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		setupMocks   func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache)
		expectedUser *entities.User
		expectedErr  error
	}{
		{
			name:  "Success - token resolved via repository",
			token: testToken,
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
				identityCache.On("Get", mock.Anything, cacheKey).Return("", nil).Once()
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				identityCache.On("Set", mock.Anything, cacheKey, string(cachedJSON), cacheTTL).Return(nil).Once()
			},
			expectedUser: existingUser,
		},
		{
			name:  "Success - identity served from cache without repository lookup",
			token: testToken,
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
				identityCache.On("Get", mock.Anything, cacheKey).Return(string(cachedJSON), nil).Once()
			},
			expectedUser: existingUser,
		},
		{
			name:  "Success - cache errors fall back to repository",
			token: testToken,
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
				identityCache.On("Get", mock.Anything, cacheKey).Return("", errors.New("redis down")).Once()
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
				identityCache.On("Set", mock.Anything, cacheKey, string(cachedJSON), cacheTTL).Return(nil).Once()
			},
			expectedUser: existingUser,
		},
		{
			name:  "Error - malformed token",
			token: "garbage",
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, "garbage").Return("", entities.ErrInvalidToken).Once()
			},
			expectedErr: entities.ErrInvalidToken,
		},
		{
			name:  "Error - token subject no longer exists",
			token: testToken,
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
				identityCache.On("Get", mock.Anything, cacheKey).Return("", nil).Once()
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrInvalidToken,
		},
		{
			name:  "Error - database error during lookup",
			token: testToken,
			setupMocks: func(mockUserRepo *mockUserRepository, mockTokenSvc *mockTokenService, identityCache *mockCache) {
				mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
				identityCache.On("Get", mock.Anything, cacheKey).Return("", nil).Once()
				mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)
			identityCache := new(mockCache)

			tt.setupMocks(mockUserRepo, mockTokenSvc, identityCache)

			authUseCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, identityCache, cacheTTL)

			ctx := context.Background()
			user, err := authUseCase.CurrentUser(ctx, tt.token)

			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(err, entities.ErrInvalidToken) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.expectedUser.ID, user.ID)
				assert.Equal(t, tt.expectedUser.Email, user.Email)
				assert.Equal(t, tt.expectedUser.IsAdmin, user.IsAdmin)
			}

			mockUserRepo.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
			identityCache.AssertExpectations(t)
		})
	}
}

func TestCurrentUserWithoutCache(t *testing.T) {
	testEmail := "test@example.com"
	testToken := "valid-token"

	existingUser := &entities.User{
		ID:    "user-id-1",
		Email: testEmail,
	}

	mockUserRepo := new(mockUserRepository)
	mockPasswordSvc := new(mockPasswordService)
	mockTokenSvc := new(mockTokenService)

	mockTokenSvc.On("Resolve", mock.Anything, testToken).Return(testEmail, nil).Once()
	mockUserRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()

	authUseCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc, nil, 0)

	user, err := authUseCase.CurrentUser(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, existingUser.ID, user.ID)

	mockUserRepo.AssertExpectations(t)
	mockTokenSvc.AssertExpectations(t)
}
