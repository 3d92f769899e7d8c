package service

import (
	"errors"
	"fmt"
	"log"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/pkg/token"
	"storefront-backend/pkg/utils"
)

// UserStore is the user persistence surface the auth flows need.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Create(user *models.User) error
}

// AuditLogger records security-relevant actions. Best effort: callers
// ignore its errors so auditing can never fail a request.
type AuditLogger interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

type AuthService struct {
	users  UserStore
	audit  AuditLogger
	tokens *token.Manager
}

func NewAuthService(users UserStore, audit AuditLogger, tokens *token.Manager) *AuthService {
	return &AuthService{
		users:  users,
		audit:  audit,
		tokens: tokens,
	}
}

// AuthResult carries a freshly minted credential pair and the public
// view of the authenticated user.
type AuthResult struct {
	Pair *token.Pair
	User UserResponse
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// Register creates a new user account and issues its first credential pair
func (s *AuthService) Register(username, password string) (*AuthResult, error) {
	// Check if username already exists
	if _, err := s.users.FindByUsername(username); err == nil {
		return nil, apperr.Conflict("username already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal(fmt.Errorf("failed to look up username: %w", err))
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to create user: %w", err))
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to generate tokens: %w", err))
	}

	userIDPtr := &user.ID
	_ = s.audit.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("User %s registered", username))

	return &AuthResult{
		Pair: pair,
		User: UserResponse{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
	}, nil
}

// Login authenticates a user and issues a credential pair
func (s *AuthService) Login(username, password string) (*AuthResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.audit.CreateAuditLog(nil, "login_failed", fmt.Sprintf("Unknown username %s", username))
			return nil, apperr.Authentication("invalid credentials")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to look up user: %w", err))
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		_ = s.audit.CreateAuditLog(&user.ID, "login_failed", fmt.Sprintf("Wrong password for %s", username))
		return nil, apperr.Authentication("invalid credentials")
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to generate tokens: %w", err))
	}

	_ = s.audit.CreateAuditLog(&user.ID, "user_login", fmt.Sprintf("User %s logged in", username))

	return &AuthResult{
		Pair: pair,
		User: UserResponse{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh credential pair.
// The new pair is minted from the user's current database row, so a
// deleted account implicitly invalidates every outstanding refresh
// token, and a changed admin flag takes effect on the next rotation.
// The failure causes are logged distinctly but all collapse to a single
// "re-authenticate" response for the client.
func (s *AuthService) Refresh(refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			log.Println("Refresh rejected: token expired")
		} else {
			log.Println("Refresh rejected: invalid token")
		}
		return nil, apperr.Authentication("re-authentication required")
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("Refresh rejected: user %d no longer exists", claims.UserID)
			return nil, apperr.Authentication("re-authentication required")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to look up user: %w", err))
	}

	pair, err := s.tokens.GeneratePair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to generate tokens: %w", err))
	}

	return &AuthResult{
		Pair: pair,
		User: UserResponse{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
	}, nil
}

// Me returns the current identity as stored, not as cached in the token
func (s *AuthService) Me(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to look up user: %w", err))
	}
	return user, nil
}
