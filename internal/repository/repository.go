package repository

import (
	"context"

	"blogapi/internal/models"
)

// Repositories hold plain in-memory collections. They do no validation and
// know nothing about each other; lookups return nil (or false) for missing
// ids and it is the service layer's job to classify that. Every enumeration
// returns copies so callers cannot mutate the backing store.

type UserRepository interface {
	FindAll(ctx context.Context) []models.User
	FindByID(ctx context.Context, id string) *models.User
	FindByEmail(ctx context.Context, email string) *models.User
	Create(ctx context.Context, user models.User) models.User
	Update(ctx context.Context, id string, patch models.UpdateUserPatch) *models.User
	Delete(ctx context.Context, id string) bool
}

type PostRepository interface {
	FindAll(ctx context.Context) []models.Post
	FindByID(ctx context.Context, id string) *models.Post
	FindByAuthorID(ctx context.Context, authorID string) []models.Post
	FindByStatus(ctx context.Context, status string) []models.Post
	FindWithPagination(ctx context.Context, page, limit int, status string) ([]models.Post, int)
	SearchByKeyword(ctx context.Context, keyword string) []models.Post
	SearchByTag(ctx context.Context, tag string) []models.Post
	Create(ctx context.Context, post models.Post) models.Post
	Update(ctx context.Context, id string, patch models.UpdatePostPatch) *models.Post
	Delete(ctx context.Context, id string) bool
}

type CommentRepository interface {
	FindAll(ctx context.Context) []models.Comment
	FindByID(ctx context.Context, id string) *models.Comment
	FindByPostID(ctx context.Context, postID string) []models.Comment
	FindByAuthorID(ctx context.Context, authorID string) []models.Comment
	Create(ctx context.Context, comment models.Comment) models.Comment
	Update(ctx context.Context, id string, patch models.UpdateCommentPatch) *models.Comment
	Delete(ctx context.Context, id string) bool
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository() *Repository {
	return &Repository{
		User:    NewUserRepository(),
		Post:    NewPostRepository(),
		Comment: NewCommentRepository(),
	}
}
