// file: service/auth_service.go

package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/derangga/laundry-app-sub001/common"
	"github.com/derangga/laundry-app-sub001/logger"
	"github.com/derangga/laundry-app-sub001/model"
	"github.com/derangga/laundry-app-sub001/repository"
)

// AuthService orchestrates login, refresh rotation and logout over the
// password hasher, token generator, JWT codec and refresh-session store.
type AuthService struct {
	users      repository.IUserRepository
	tokens     repository.ITokenRepository
	hasher     *PasswordHasher
	generator  TokenGenerator
	codec      *JWTCodec
	refreshTTL time.Duration
	now        func() time.Time
}

func NewAuthService(users repository.IUserRepository, tokens repository.ITokenRepository, hasher *PasswordHasher, codec *JWTCodec, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		hasher:     hasher,
		codec:      codec,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// LoginResult carries the freshly minted pair. RefreshToken is the raw secret
// and is unrecoverable after this response; only its digest is stored.
type LoginResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *model.User `json:"user"`
}

type RefreshResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login verifies the credential pair and opens a new refresh-session chain.
// An unknown email and a wrong password both surface as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, rawRefresh, err := s.issueSession(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// Refresh rotates a refresh session: the presented token is revoked and a
// successor is inserted. The conditional revoke is the linearization point;
// of two concurrent calls presenting the same raw token, exactly one wins and
// the other gets ErrInvalidToken.
func (s *AuthService) Refresh(rawRefreshToken string) (*RefreshResult, error) {
	digest := s.generator.Hash(rawRefreshToken)

	session, err := s.tokens.GetByTokenHash(digest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up refresh session: %w", err)
	}

	if !session.Live(s.now()) {
		return nil, common.ErrInvalidToken
	}

	revoked, err := s.tokens.Revoke(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke refresh session: %w", err)
	}
	if !revoked {
		// Lost the race: a concurrent call already consumed this token.
		logger.Log.WithField("user_id", session.UserID).Warn("Refresh token presented twice")
		return nil, common.ErrInvalidToken
	}

	user, err := s.users.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session owner: %w", err)
	}

	accessToken, rawRefresh, err := s.issueSession(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
	}, nil
}

// Logout revokes the presented session, or every live session of its owner
// when logoutAll is set. A token that matches nothing is not an error.
func (s *AuthService) Logout(rawRefreshToken string, logoutAll bool) error {
	digest := s.generator.Hash(rawRefreshToken)

	session, err := s.tokens.GetByTokenHash(digest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to look up refresh session: %w", err)
	}

	if logoutAll {
		if _, err := s.tokens.RevokeAllByUserID(session.UserID); err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}
		return nil
	}

	if _, err := s.tokens.Revoke(session.ID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Verify checks an access token stateless-ly and returns its claims.
func (s *AuthService) Verify(accessToken string) (*model.AppClaims, error) {
	return s.codec.Verify(accessToken)
}

func (s *AuthService) issueSession(userID int, role model.Role) (accessToken, rawRefresh string, err error) {
	accessToken, err = s.codec.Sign(userID, role)
	if err != nil {
		return "", "", err
	}

	rawRefresh, digest, err := s.generator.GenerateAndHash()
	if err != nil {
		return "", "", err
	}

	session := &model.RefreshToken{
		UserID:    userID,
		TokenHash: digest,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}
	if err := s.tokens.Create(session); err != nil {
		return "", "", fmt.Errorf("failed to store refresh session: %w", err)
	}

	return accessToken, rawRefresh, nil
}
