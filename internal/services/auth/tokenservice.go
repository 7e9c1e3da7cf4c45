// filepath: internal/services/auth/token_service.go
package auth

import (
	"fmt"
	"time"

	"daylog/internal/config"
	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims defines the custom claims carried by an access token.
// Subject holds the username, UserID and Role identify the account.
type accessClaims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

// tokenService implements the TokenService interface.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

// Issue creates and signs a new access token for the user. The role claim
// reflects the account at issue time; a later role change only shows up in
// tokens minted on the next login.
func (s *tokenService) Issue(user *models.User) (string, error) {
	expiry := time.Now().Add(time.Hour * time.Duration(s.cfg.JWT.AccessDurationHours))
	claims := &accessClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "daylog",
			Subject:   user.Username,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks an access token (stateless). It verifies the signature and
// expiry, then resolves the embedded identity from the claims alone.
func (s *tokenService) Verify(tokenString string) (*Identity, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		// Wraps the jwt error so callers can still pick out jwt.ErrTokenExpired.
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, shared.ErrInvalidToken
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, shared.ErrMissingClaims
	}

	return &Identity{
		ID:       claims.UserID,
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}
