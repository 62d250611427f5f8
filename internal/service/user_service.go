package service

import (
	"context"
	"io"

	"golang.org/x/crypto/bcrypt"

	"blogapi/internal/errs"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, id string, patch models.UpdateUserPatch) (*models.UserResponse, error)
	UpdateAvatar(ctx context.Context, id, fileName string, file io.Reader, size int64) (*models.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	rules    *rules
}

func NewUserService(userRepo repository.UserRepository, store storage.Storage, rules *rules) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  store,
		rules:    rules,
	}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error) {
	if err := s.rules.email(req.Email); err != nil {
		return nil, err
	}
	if err := s.rules.password(req.Password); err != nil {
		return nil, err
	}
	if err := s.rules.name(req.Name); err != nil {
		return nil, err
	}

	if existing := s.userRepo.FindByEmail(ctx, req.Email); existing != nil {
		return nil, errs.Conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Internal("Failed to hash password")
	}

	user := s.userRepo.Create(ctx, models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	})

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user := s.userRepo.FindByID(ctx, id)
	if user == nil {
		return nil, errs.NotFound("User not found")
	}

	resp := toUserResponse(*user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, patch models.UpdateUserPatch) (*models.UserResponse, error) {
	user := s.userRepo.FindByID(ctx, id)
	if user == nil {
		return nil, errs.NotFound("User not found")
	}

	if patch.Name != nil {
		if err := s.rules.name(*patch.Name); err != nil {
			return nil, err
		}
	}

	updated := s.userRepo.Update(ctx, id, patch)
	if updated == nil {
		return nil, errs.Internal("Failed to update user")
	}

	resp := toUserResponse(*updated)
	return &resp, nil
}

// UpdateAvatar uploads the image to object storage and stores the resulting
// URL on the profile.
func (s *userService) UpdateAvatar(ctx context.Context, id, fileName string, file io.Reader, size int64) (*models.UserResponse, error) {
	user := s.userRepo.FindByID(ctx, id)
	if user == nil {
		return nil, errs.NotFound("User not found")
	}

	if s.storage == nil {
		return nil, errs.Internal("Avatar storage is not configured")
	}

	_, avatarURL, err := s.storage.UploadAvatar(ctx, id, fileName, file, size)
	if err != nil {
		return nil, errs.Internal("Failed to upload avatar")
	}

	updated := s.userRepo.Update(ctx, id, models.UpdateUserPatch{Avatar: &avatarURL})
	if updated == nil {
		return nil, errs.Internal("Failed to update user")
	}

	resp := toUserResponse(*updated)
	return &resp, nil
}
