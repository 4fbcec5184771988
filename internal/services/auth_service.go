package services

import (
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/store"
)

type AuthService struct {
	Store  *store.Store
	Tokens *auth.Manager
	Log    *zap.Logger
}

func NewAuthService(st *store.Store, tokens *auth.Manager, log *zap.Logger) *AuthService {
	return &AuthService{Store: st, Tokens: tokens, Log: log}
}

// Register creates an account and returns a session token. Duplicate emails
// are rejected before anything is written.
func (s *AuthService) Register(req dtos.RegisterRequest) (dtos.AuthResponse, error) {
	if _, exists := s.Store.UserByEmail(req.Email); exists {
		return dtos.AuthResponse{}, apperr.Conflict("User already exists with this email")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dtos.AuthResponse{}, apperr.Internal("failed to hash password", err)
	}

	user := s.Store.AddUser(models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	})

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return dtos.AuthResponse{}, apperr.Internal("failed to issue token", err)
	}

	s.Log.Info("user registered",
		zap.String("userId", user.ID),
		zap.String("role", user.Role))

	return dtos.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(req dtos.LoginRequest) (dtos.AuthResponse, error) {
	user, ok := s.Store.UserByEmail(req.Email)
	if !ok || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return dtos.AuthResponse{}, apperr.NotAuthenticated("Invalid email or password")
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return dtos.AuthResponse{}, apperr.Internal("failed to issue token", err)
	}

	return dtos.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, nil
}
