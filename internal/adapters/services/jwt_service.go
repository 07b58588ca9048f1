// Package services реализует прикладные сервисы: токены и пароли.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"notevault/internal/domain/entities"
	svc "notevault/internal/ports/services"
	"notevault/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue   = "Issue"
	methodResolve = "Resolve"

	msgIssuingToken   = "issuing access token"
	msgTokenIssued    = "access token issued"
	msgTokenRejected  = "access token rejected"
	msgValidating     = "validating access token"
	msgTokenValidated = "access token validated"

	errCtxSigningToken = "signing token"
)

// ErrEmptySecretKey возвращается при создании сервиса без секретного ключа.
var ErrEmptySecretKey = errors.New("empty JWT secret key")

// claims несет email субъекта и стандартные временные поля.
type claims struct {
	jwt.RegisteredClaims
}

// ServiceJWT реализует svc.TokenService поверх HS256 JWT.
type ServiceJWT struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWT создает новый экземпляр сервиса токенов.
func NewJWT(secretKey string, tokenTTL time.Duration) (svc.TokenService, error) {
	if secretKey == "" {
		return nil, ErrEmptySecretKey
	}
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}, nil
}

// Issue выпускает токен доступа с email субъекта и абсолютным сроком.
func (s *ServiceJWT) Issue(ctx context.Context, email string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssue))
	log.Debug(ctx, msgIssuingToken)

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errCtxSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxSigningToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return signed, expiresAt, nil
}

// Resolve возвращает email субъекта токена. Искаженный, неподписанный
// и истекший токены неразличимы для вызывающей стороны: все дают
// entities.ErrInvalidToken.
func (s *ServiceJWT) Resolve(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve))
	log.Debug(ctx, msgValidating)

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing algorithm: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return "", fmt.Errorf("parsing token: %w", entities.ErrInvalidToken)
	}

	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid || parsed.Subject == "" {
		log.Debug(ctx, msgTokenRejected)
		return "", fmt.Errorf("validating token: %w", entities.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenValidated)
	return parsed.Subject, nil
}
