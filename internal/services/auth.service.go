package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinicare/internal/auth"
	"clinicare/internal/models"
	"clinicare/internal/repository"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("incorrect password")
)

// TokenBlacklist revokes refresh tokens by jti. A nil blacklist disables
// revocation; refresh and logout still work, tokens just stay replayable
// until expiry.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Account      *models.Account
}

// AuthService verifies credentials and manages the access/refresh token
// pair lifecycle.
type AuthService struct {
	accounts  repository.AccountRepository
	tokens    *auth.TokenManager
	blacklist TokenBlacklist
}

func NewAuthService(accounts repository.AccountRepository, tokens *auth.TokenManager, blacklist TokenBlacklist) *AuthService {
	return &AuthService{
		accounts:  accounts,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// token pair. Unknown email and wrong password are distinct failures.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	account, err := s.accounts.FindByEmail(email)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	now := time.Now()
	if err := s.accounts.UpdateLastLogin(account.ID, now); err != nil {
		return nil, err
	}
	account.LastLogin = &now

	return s.issue(account)
}

// Refresh rotates a refresh token: the presented token is blacklisted and
// a fresh pair is issued from current account state.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, auth.ErrTokenInvalid
	}

	if s.blacklist != nil {
		used, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, auth.ErrTokenInvalid
		}
	}

	account, err := s.accounts.FindByID(claims.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	result, err := s.issue(account)
	if err != nil {
		return nil, err
	}

	if s.blacklist != nil {
		if err := s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Logout revokes the refresh token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ParseToken(refreshToken)
	if err != nil {
		return err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return auth.ErrTokenInvalid
	}
	if s.blacklist == nil {
		return nil
	}
	return s.blacklist.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *AuthService) issue(account *models.Account) (*LoginResult, error) {
	accessToken, err := s.tokens.GenerateAccessToken(account)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(account)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}
