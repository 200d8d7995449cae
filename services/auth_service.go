package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"filedrive/config"
	"filedrive/models"
	"filedrive/repositories"
	"filedrive/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type LoginOutput struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type ProfileOutput struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (AuthUser, error)
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	GetProfile(ctx context.Context, userID uint) (ProfileOutput, error)
}

type authService struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	jwt    config.JWTConfig
}

func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, jwtCfg config.JWTConfig) AuthService {
	return &authService{users: users, tokens: tokens, jwt: jwtCfg}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthUser, error) {
	count, err := s.users.CountByEmail(ctx, nil, in.Email)
	if err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Registration failed", err)
	}
	if count > 0 {
		return AuthUser{}, newAppError(http.StatusConflict, "Email already registered", nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Registration failed", err)
	}

	user := models.User{Email: in.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, nil, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AuthUser{}, newAppError(http.StatusConflict, "Email already registered", nil)
		}
		return AuthUser{}, newAppError(http.StatusInternalServerError, "Registration failed", err)
	}

	return AuthUser{ID: user.ID, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, nil, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(http.StatusUnauthorized, "Invalid email or password", nil)
		}
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Login failed", err)
	}

	if !utils.CheckPassword(in.Password, user.PasswordHash) {
		return LoginOutput{}, newAppError(http.StatusUnauthorized, "Invalid email or password", nil)
	}

	token, err := utils.GenerateToken(s.jwt.Secret, time.Duration(s.jwt.ExpireHours)*time.Hour, user.ID, user.Email)
	if err != nil {
		return LoginOutput{}, newAppError(http.StatusInternalServerError, "Login failed", err)
	}

	return LoginOutput{Token: token, User: AuthUser{ID: user.ID, Email: user.Email}}, nil
}

// Logout denylists the token until its natural expiry. With no revocation
// backend configured this is a no-op and the client just drops the cookie.
func (s *authService) Logout(ctx context.Context, claims *utils.Claims) error {
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		return newAppError(http.StatusInternalServerError, "Logout failed", err)
	}
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (ProfileOutput, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileOutput{}, newAppError(http.StatusNotFound, "User not found", nil)
		}
		return ProfileOutput{}, newAppError(http.StatusInternalServerError, "Failed to load profile", err)
	}
	return ProfileOutput{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}
