package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/models"
)

type postRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

// copyPost clones the tag slice as well, so handing a post out never
// shares mutable state with the store. The clone stays non-nil at zero
// length so tags always serialize as an array.
func copyPost(p models.Post) models.Post {
	out := p
	out.Tags = make([]string, len(p.Tags))
	copy(out.Tags, p.Tags)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		out.PublishedAt = &t
	}
	return out
}

func (r *postRepository) FindAll(ctx context.Context) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Post, 0, len(r.posts))
	for i := range r.posts {
		out = append(out, copyPost(r.posts[i]))
	}
	return out
}

func (r *postRepository) FindByID(ctx context.Context, id string) *models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			p := copyPost(r.posts[i])
			return &p
		}
	}
	return nil
}

func (r *postRepository) FindByAuthorID(ctx context.Context, authorID string) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Post
	for i := range r.posts {
		if r.posts[i].AuthorID == authorID {
			out = append(out, copyPost(r.posts[i]))
		}
	}
	return out
}

func (r *postRepository) FindByStatus(ctx context.Context, status string) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Post
	for i := range r.posts {
		if r.posts[i].Status == status {
			out = append(out, copyPost(r.posts[i]))
		}
	}
	return out
}

// FindWithPagination returns the requested page slice plus the total count
// of matching posts. An empty status matches everything.
func (r *postRepository) FindWithPagination(ctx context.Context, page, limit int, status string) ([]models.Post, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []models.Post
	for i := range r.posts {
		if status == "" || r.posts[i].Status == status {
			filtered = append(filtered, r.posts[i])
		}
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start >= total {
		return []models.Post{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]models.Post, 0, end-start)
	for _, p := range filtered[start:end] {
		out = append(out, copyPost(p))
	}
	return out, total
}

func (r *postRepository) SearchByKeyword(ctx context.Context, keyword string) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(keyword)
	var out []models.Post
	for i := range r.posts {
		p := &r.posts[i]
		if p.Status != models.StatusPublished {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), lower) ||
			strings.Contains(strings.ToLower(p.Content), lower) {
			out = append(out, copyPost(*p))
		}
	}
	return out
}

func (r *postRepository) SearchByTag(ctx context.Context, tag string) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Post
	for i := range r.posts {
		p := &r.posts[i]
		if p.Status != models.StatusPublished {
			continue
		}
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, copyPost(*p))
				break
			}
		}
	}
	return out
}

func (r *postRepository) Create(ctx context.Context, post models.Post) models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	post.ID = uuid.New().String()
	post.CreatedAt = now
	post.UpdatedAt = now
	tags := make([]string, len(post.Tags))
	copy(tags, post.Tags)
	post.Tags = tags
	if post.Status == models.StatusPublished {
		t := now
		post.PublishedAt = &t
	} else {
		post.PublishedAt = nil
	}

	r.posts = append(r.posts, post)
	return copyPost(post)
}

// Update merges the non-nil patch fields into the stored post. PublishedAt
// is stamped on the first transition to published and never touched again,
// even if the post later reverts to draft.
func (r *postRepository) Update(ctx context.Context, id string, patch models.UpdatePostPatch) *models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}

		p := &r.posts[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Excerpt != nil {
			p.Excerpt = *patch.Excerpt
		}
		if patch.Tags != nil {
			p.Tags = append([]string(nil), (*patch.Tags)...)
		}
		now := time.Now()
		if patch.Status != nil {
			p.Status = *patch.Status
			if p.Status == models.StatusPublished && p.PublishedAt == nil {
				t := now
				p.PublishedAt = &t
			}
		}
		p.UpdatedAt = now

		updated := copyPost(*p)
		return &updated
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return true
		}
	}
	return false
}
