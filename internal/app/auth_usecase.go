// Package app реализует прикладную логику сервиса заметок.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"notevault/internal/domain/entities"
	"notevault/internal/ports/cache"
	"notevault/internal/ports/repositories"
	svc "notevault/internal/ports/services"
	"notevault/pkg/logger"
)

const (
	methodRegister    = "Register"
	methodLogin       = "Login"
	methodCurrentUser = "CurrentUser"

	msgStartRegistration  = "starting user registration"
	msgInvalidEmailFormat = "invalid email format"
	msgInvalidPassword    = "invalid password"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgWrongPassword      = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgIdentityFromCache  = "identity resolved from cache"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyPassword    = "error verifying password"
	msgErrIssueToken        = "failed to issue access token"
	msgErrCacheIdentity     = "failed to cache identity"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxEmailRegistered    = "email already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxIssuingToken       = "issuing token"
	errCtxResolvingToken     = "resolving token"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// identityCacheKey строит ключ кэша для учетной записи.
func identityCacheKey(email string) string {
	return "identity:" + email
}

// AuthUseCase реализует регистрацию, вход и разрешение субъекта запроса.
type AuthUseCase struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
// Кэш необязателен: nil отключает кэширование учетных записей.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	identityCache cache.Cache,
	cacheTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		cache:       identityCache,
		cacheTTL:    cacheTTL,
	}
}

// Register создает новую учетную запись с указанными данными.
func (a *AuthUseCase) Register(ctx context.Context, email, password string, isAdmin bool) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	if !emailRegexp.MatchString(email) {
		log.Debug(ctx, msgInvalidEmailFormat)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, entities.ErrInvalidEmail)
	}
	if len(password) < entities.MinPasswordLength {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrPasswordTooShort)
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existing != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, entities.ErrEmailAlreadyExists)
	}

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	created, err := a.userRepo.Create(ctx, &entities.User{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID), zap.Bool("isAdmin", created.IsAdmin))
	return created, nil
}

// Login проверяет учетные данные и выпускает токен доступа.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgWrongPassword)
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, entities.ErrInvalidCredentials)
	}

	token, expiresAt, err := a.tokenSvc.Issue(ctx, user.Email)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return token, expiresAt, nil
}

// CurrentUser разрешает токен доступа в учетную запись субъекта.
// Недействительный и истекший токены, как и токен несуществующего
// пользователя, одинаково дают entities.ErrInvalidToken.
func (a *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCurrentUser))

	email, err := a.tokenSvc.Resolve(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingToken, entities.ErrInvalidToken)
	}

	if user, ok := a.cachedIdentity(ctx, email); ok {
		log.Debug(ctx, msgIdentityFromCache, zap.String("email", email))
		return user, nil
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxResolvingToken, entities.ErrInvalidToken)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	a.cacheIdentity(ctx, user)
	return user, nil
}

// cachedIdentity пытается получить учетную запись из кэша.
func (a *AuthUseCase) cachedIdentity(ctx context.Context, email string) (*entities.User, bool) {
	if a.cache == nil {
		return nil, false
	}

	raw, err := a.cache.Get(ctx, identityCacheKey(email))
	if err != nil || raw == "" {
		return nil, false
	}

	var user entities.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// cacheIdentity сохраняет учетную запись в кэше. Учетные записи
// неизменяемы после регистрации, поэтому устаревание не опасно.
func (a *AuthUseCase) cacheIdentity(ctx context.Context, user *entities.User) {
	if a.cache == nil {
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, identityCacheKey(user.Email), string(raw), a.cacheTTL); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheIdentity, zap.Error(err))
	}
}
