package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/models"
)

type userRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindAll(ctx context.Context) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *userRepository) FindByID(ctx context.Context, id string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *userRepository) Create(ctx context.Context, user models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	user.ID = uuid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users = append(r.users, user)
	return user
}

func (r *userRepository) Update(ctx context.Context, id string, patch models.UpdateUserPatch) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}

		u := &r.users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		if patch.Bio != nil {
			u.Bio = *patch.Bio
		}
		u.UpdatedAt = time.Now()

		updated := *u
		return &updated
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	return false
}
