package services

import (
	"errors"
	"time"

	"github.com/arogyamitra/backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenInvalid = errors.New("invalid token")

// Identity is the claim set carried by a session token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// TokenService issues and verifies stateless HS256 bearer tokens. A valid
// signature proves the token was issued here, not that the subject still
// exists; the liveness check lives in the request gate.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret), expiry: cfg.JWTExpiry}
}

func (s *TokenService) Issue(userID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   time.Now().Unix(),
	}
	if s.expiry > 0 {
		claims["exp"] = time.Now().Add(s.expiry).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return IdentityFromClaims(claims)
}

// IdentityFromClaims extracts the subject and email from verified claims.
func IdentityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, nil
}
