package services

import (
	"careernode_backend/internal/auth"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeleteAccount(db *gorm.DB, userID string) error
	ListUsers(db *gorm.DB, actor auth.Actor, limit, offset int) (*dto.UserListResponse, error)
	AdminDeleteUser(db *gorm.DB, actor auth.Actor, targetID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile applies a partial update; nil fields stay as they are
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	if err := s.userRepo.Delete(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, actor auth.Actor, limit, offset int) (*dto.UserListResponse, error) {
	if !auth.IsAdmin(actor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	users, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{Users: responses, Total: total}, nil
}

func (s *UserServiceImpl) AdminDeleteUser(db *gorm.DB, actor auth.Actor, targetID string) error {
	if !auth.IsAdmin(actor) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.userRepo.Delete(db, targetID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
