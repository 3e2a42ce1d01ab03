package service

import (
	"context"
	"errors"

	"github.com/flowcrm/flowcrm-go/internal/crypto"
	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown user and wrong password,
	// so login errors cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthService registers and authenticates users and issues bearer tokens.
type AuthService struct {
	users     *repository.Users
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.Users, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: secret}
}

// Register creates a new user account and returns an auth token. The
// password is hashed before anything is persisted; the response never
// carries the hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return model.AuthResponse{}, ErrUserExists
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.IssueToken(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates by username or email and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByIdentifier(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.IssueToken(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}
