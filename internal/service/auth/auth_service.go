// Package auth provides operator authentication.
package auth

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/crypto"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/errors"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/jwt"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/utils"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/models"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
)

// AuthService handles registration, login and token lifecycle.
type AuthService struct {
	db         *gorm.DB
	userRepo   *repository.UserRepository
	jwtManager *jwt.Manager
	tokens     *TokenStore
}

// NewAuthService creates the auth service.
func NewAuthService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	jwtManager *jwt.Manager,
	tokens *TokenStore,
) *AuthService {
	return &AuthService{
		db:         db,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		tokens:     tokens,
	}
}

// RegisterRequest carries a new operator account.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role,omitempty"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest carries a credential change.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UserInfo is the operator shape returned to clients.
type UserInfo struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
}

// LoginResponse bundles the operator with a fresh token pair.
type LoginResponse struct {
	User      *UserInfo      `json:"user"`
	TokenPair *jwt.TokenPair `json:"token"`
}

// Register creates an operator account. New accounts default to the
// Manager role; the Owner role is assigned by seeding or by an existing
// Owner, never self-claimed here.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*UserInfo, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, errors.ErrInvalidParams.WithMessage("invalid email address")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if exists {
		return nil, errors.ErrEmailExists
	}

	role := req.Role
	if role == "" || role == models.RoleOwner {
		role = models.RoleManager
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return toUserInfo(user), nil
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errors.ErrInvalidCredentials
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	return &LoginResponse{
		User:      toUserInfo(user),
		TokenPair: tokenPair,
	}, nil
}

// Logout revokes the refresh token so it cannot mint new access tokens.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		// An expired or garbled token needs no denylist entry.
		return nil
	}
	expiresAt := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.tokens.Revoke(ctx, refreshToken, expiresAt); err != nil {
		return errors.ErrInternalError.WithError(err)
	}
	return nil
}

// Refresh rotates a refresh token into a new pair. The used token is
// revoked, so each refresh token works exactly once.
func (s *AuthService) Refresh(ctx context.Context, req *RefreshRequest) (*jwt.TokenPair, error) {
	revoked, err := s.tokens.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}
	if revoked {
		return nil, errors.ErrTokenRevoked
	}

	claims, err := s.jwtManager.ParseToken(req.RefreshToken)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.ErrTokenExpired
		}
		return nil, errors.ErrTokenInvalid
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(claims.UserID, claims.Role)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	expiresAt := time.Now().Add(time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.tokens.Revoke(ctx, req.RefreshToken, expiresAt); err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	return tokenPair, nil
}

// GetProfile fetches the operator behind a user ID.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return toUserInfo(user), nil
}

// ChangePassword replaces the stored credential after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.OldPassword, user.PasswordHash) {
		return errors.ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return errors.ErrInternalError.WithError(err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

func toUserInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}
