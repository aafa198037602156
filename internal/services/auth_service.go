package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"careernode_backend/internal/auth"
	"careernode_backend/internal/email"
	"careernode_backend/internal/logger"
	"careernode_backend/internal/models"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	ChangePassword(db *gorm.DB, userID, oldPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates a new account. Password hashing happens here; the
// repository never sees plaintext.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleEmployer && req.Role != models.UserRoleApplicant {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user.Email, user.FirstName)

	return dto.NewUserResponse(user), nil
}

// Login authenticates by email and password and returns a token pair
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildLoginResponse(db, user)
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
// The old refresh token is rotated out.
func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(db, user)
}

// Logout deletes the refresh token
func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ChangePassword verifies the current password before setting the new one.
// All refresh tokens are revoked afterwards.
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.ErrWrongPassword
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, userID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	// Old sessions should not outlive the old password
	_ = s.refreshTokenRepo.DeleteByUserID(db, userID)

	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) buildLoginResponse(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.LoginUser{
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			Role:      user.Role,
		},
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(db *gorm.DB, userID string) (string, error) {
	refreshToken := generateRandomToken()

	tokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(db, tokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(to, firstName string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendWelcome(to, firstName); err != nil {
			logger.Warn("Failed to send welcome email", "error", err.Error(), "email", to)
		}
	}()
}

// generateRandomToken produces an opaque refresh token
func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
