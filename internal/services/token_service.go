package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prakharmi/finance-assistant/internal/config"
	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrMissingSubject    = errors.New("token has no subject")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService verifies RS256 access tokens issued by the identity provider
type TokenService struct {
	config.AuthConfig
}

// NewTokenService creates a new token service from auth configuration
func NewTokenService(authConfig *config.AuthConfig) TokenServiceInterface {
	return &TokenService{
		AuthConfig: *authConfig,
	}
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// VerifyToken validates an access token's signature, expiry and issuer
func (ts *TokenService) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if ts.Issuer != "" && claims.Issuer != ts.Issuer {
		return nil, ErrInvalidIssuer
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.PublicKey, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
