package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/models"
)

type commentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
}

func NewCommentRepository() CommentRepository {
	return &commentRepository{}
}

func (r *commentRepository) FindAll(ctx context.Context) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Comment, len(r.comments))
	copy(out, r.comments)
	return out
}

func (r *commentRepository) FindByID(ctx context.Context, id string) *models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.comments {
		if r.comments[i].ID == id {
			c := r.comments[i]
			return &c
		}
	}
	return nil
}

func (r *commentRepository) FindByPostID(ctx context.Context, postID string) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Comment
	for i := range r.comments {
		if r.comments[i].PostID == postID {
			out = append(out, r.comments[i])
		}
	}
	return out
}

func (r *commentRepository) FindByAuthorID(ctx context.Context, authorID string) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Comment
	for i := range r.comments {
		if r.comments[i].AuthorID == authorID {
			out = append(out, r.comments[i])
		}
	}
	return out
}

func (r *commentRepository) Create(ctx context.Context, comment models.Comment) models.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	comment.ID = uuid.New().String()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	r.comments = append(r.comments, comment)
	return comment
}

func (r *commentRepository) Update(ctx context.Context, id string, patch models.UpdateCommentPatch) *models.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.comments {
		if r.comments[i].ID != id {
			continue
		}

		c := &r.comments[i]
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		c.UpdatedAt = time.Now()

		updated := *c
		return &updated
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return true
		}
	}
	return false
}
