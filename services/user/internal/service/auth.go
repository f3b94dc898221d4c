package service

import (
	"context"
	"errors"
	"time"

	"github.com/burakmt/todo-platform/pkg/events"
	"github.com/burakmt/todo-platform/pkg/hash"
	"github.com/burakmt/todo-platform/pkg/logging"
	"github.com/burakmt/todo-platform/pkg/tokens"
	"github.com/burakmt/todo-platform/services/user/internal/repo"
)

// AuthService coordinates login, refresh rotation and logout against the
// token issuer and the user store.
type AuthService struct {
	Repo       *repo.GormRepo
	Tokens     *tokens.Issuer
	RefreshTTL time.Duration
	Events     *events.Producer
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Same outcome as a wrong password, so the response shape
			// cannot be used to enumerate emails.
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.Verify(password, user.PasswordHash, user.PasswordSalt) {
		l.Warn("login_failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	expiry := time.Now().UTC().Add(s.RefreshTTL)
	if err := s.Repo.SetRefreshToken(ctx, user.ID, pair.RefreshToken, expiry); err != nil {
		return nil, err
	}

	if err := s.Events.Publish(ctx, "user.logged_in", user.Email, map[string]any{"user_id": user.ID}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("login_successful", "user_id", user.ID)
	return pair, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.Repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("refresh_failed", "reason", "unknown token")
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.RefreshTokenExpiry == nil || user.RefreshTokenExpiry.Before(time.Now().UTC()) {
		l.Warn("refresh_failed", "reason", "expired token", "user_id", user.ID)
		return nil, ErrInvalidRefreshToken
	}

	pair, err := s.issuePair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	// Rotation is a compare-and-swap on the slot: the presented token is
	// invalid from here on, and concurrent refreshes have one winner.
	expiry := time.Now().UTC().Add(s.RefreshTTL)
	if err := s.Repo.RotateRefreshToken(ctx, user.ID, refreshToken, pair.RefreshToken, expiry); err != nil {
		if errors.Is(err, repo.ErrStaleRotation) {
			l.Warn("refresh_failed", "reason", "lost rotation race", "user_id", user.ID)
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	l.Info("refresh_successful", "user_id", user.ID)
	return pair, nil
}

// Logout clears the refresh-token slot of the account the bearer token
// identifies. The still-live access token stays valid until its natural
// expiry; only future refreshes are revoked. An undecodable token is a
// no-op, reported as false.
func (s *AuthService) Logout(ctx context.Context, bearerToken string) (bool, error) {
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	claims, err := s.Tokens.Decode(bearerToken)
	if err != nil {
		l.Warn("logout_failed", "reason", "invalid access token")
		return false, nil
	}
	userID, err := claims.UserID()
	if err != nil {
		return false, nil
	}

	if err := s.Repo.ClearRefreshToken(ctx, userID); err != nil {
		return false, err
	}

	if err := s.Events.Publish(ctx, "user.logged_out", claims.Email, map[string]any{"user_id": userID}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("logout_successful", "user_id", userID)
	return true, nil
}

func (s *AuthService) issuePair(userID int64, email, role string) (*TokenPair, error) {
	access, err := s.Tokens.IssueAccessToken(userID, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := tokens.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
