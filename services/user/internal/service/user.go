package service

import (
	"context"
	"errors"

	"github.com/burakmt/todo-platform/pkg/events"
	"github.com/burakmt/todo-platform/pkg/hash"
	"github.com/burakmt/todo-platform/pkg/logging"
	"github.com/burakmt/todo-platform/services/user/internal/models"
	"github.com/burakmt/todo-platform/services/user/internal/repo"
)

type UserService struct {
	Repo   *repo.GormRepo
	Events *events.Producer
}

type UpdateParams struct {
	Username string
	Email    string
	Password string // empty means keep the current one
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	pwHash, pwSalt, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		PasswordSalt: pwSalt,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register_failed", "reason", "duplicate email")
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if err := s.Events.Publish(ctx, "user.registered", user.Email, map[string]any{"user_id": user.ID}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("register_successful", "user_id", user.ID)
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.get(s.Repo.GetByID(ctx, id))
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.get(s.Repo.GetByUsername(ctx, username))
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.get(s.Repo.GetByEmail(ctx, email))
}

func (s *UserService) get(user *models.User, err error) (*models.User, error) {
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, p UpdateParams) error {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if p.Username != "" {
		user.Username = p.Username
	}
	if p.Email != "" {
		user.Email = p.Email
	}
	if p.Password != "" {
		pwHash, pwSalt, err := hash.Password(p.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = pwHash
		user.PasswordSalt = pwSalt
	}

	return s.Repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.Repo.SoftDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// EnsureAdmin seeds the admin account at startup when one is configured.
// An existing account with that email is left untouched.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	pwHash, pwSalt, err := hash.Password(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        email,
		PasswordHash: pwHash,
		PasswordSalt: pwSalt,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	return s.Repo.Create(ctx, admin)
}
