package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clinicare/internal/models"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims carries the account identity and role flags so the middleware
// can authorize without a database round trip.
type Claims struct {
	AccountID    uint   `json:"user_id"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
	IsSpecialist bool   `json:"is_specialist"`
	IsPatient    bool   `json:"is_patient"`
	IsSuperuser  bool   `json:"is_superuser"`
	TokenType    string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access/refresh token pairs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret []byte, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived access token for the account.
func (tm *TokenManager) GenerateAccessToken(account *models.Account) (string, error) {
	return tm.generate(account, TokenTypeAccess, tm.accessTTL)
}

// GenerateRefreshToken issues the long-lived token used by the refresh
// and logout endpoints. Its jti is what the blacklist tracks.
func (tm *TokenManager) GenerateRefreshToken(account *models.Account) (string, error) {
	return tm.generate(account, TokenTypeRefresh, tm.refreshTTL)
}

func (tm *TokenManager) generate(account *models.Account, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID:    account.ID,
		Email:        account.Email,
		IsAdmin:      account.IsAdmin,
		IsSpecialist: account.IsSpecialist,
		IsPatient:    account.IsPatient,
		IsSuperuser:  account.IsSuperuser,
		TokenType:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "clinicare",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseToken verifies the signature and expiry and returns the claims.
func (tm *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
