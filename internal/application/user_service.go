package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/pkg/helpers"
)

// UserService covers registration, credential checks, token issuance and
// revocation, and the profile read.
type UserService struct {
	Users       repo.UserRepository
	Carts       repo.CartRepository
	Wishlists   repo.WishlistRepository
	JWT         *helpers.JWTManager
	Revocations helpers.RevocationStore
	Logger      *logrus.Logger
}

func NewUserService(users repo.UserRepository, carts repo.CartRepository, wishlists repo.WishlistRepository, jwt *helpers.JWTManager, revocations helpers.RevocationStore, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Carts: carts, Wishlists: wishlists, JWT: jwt, Revocations: revocations, Logger: logger}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates the account and provisions its empty cart and wishlist.
// The email must not already be taken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, time.Time, error) {
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", time.Time{}, invalidField("email", "is already taken")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	u := &entity.User{Username: in.Username, Email: in.Email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		// a concurrent register can slip past the pre-check and lose to
		// the unique constraint instead
		if errors.Is(err, repo.ErrConflict) {
			return nil, "", time.Time{}, invalidField("email", "is already taken")
		}
		return nil, "", time.Time{}, err
	}

	if _, err := s.Carts.CreateForUser(ctx, u.ID); err != nil {
		return nil, "", time.Time{}, err
	}
	if _, err := s.Wishlists.CreateForUser(ctx, u.ID); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Login validates credentials and mints a bearer token. A wrong password
// and an unknown email produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Logout revokes only the presented token; the user's other tokens stay valid.
func (s *UserService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.Revocations == nil {
		return nil
	}
	return s.Revocations.Revoke(ctx, tokenID, expiresAt)
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	return s.Users.GetByID(ctx, userID)
}
