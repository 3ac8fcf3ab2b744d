package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users      repository.UserRepository
	tokens     *TokenService
	bcryptCost int
}

func NewUserService(users repository.UserRepository, tokens *TokenService, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account. The password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var msgs []string
	if req.Username == "" {
		msgs = append(msgs, "Username cannot be omitted")
	}
	if req.Email == "" {
		msgs = append(msgs, "Email cannot be omitted")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password cannot be omitted")
	}
	if len(msgs) > 0 {
		return nil, &models.ValidationError{Messages: msgs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed bearer token. The same
// error comes back whether the email or the password was wrong.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Email)
}

// GetByID resolves an account by id. The auth gate uses this to reject tokens
// whose subject no longer exists.
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
