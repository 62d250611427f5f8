package service

import (
	"context"
	"strings"

	"blogapi/internal/errs"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

type PostService interface {
	GetAllPosts(ctx context.Context, page, limit int) (*models.PostPage, error)
	GetPostByID(ctx context.Context, id string) (*models.PostResponse, error)
	CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.PostResponse, error)
	UpdatePost(ctx context.Context, id, authorID string, patch models.UpdatePostPatch) (*models.PostResponse, error)
	DeletePost(ctx context.Context, id, authorID string) error
	SearchPosts(ctx context.Context, keyword, tag string) ([]models.PostResponse, error)
	GetPostsByAuthor(ctx context.Context, authorID string) ([]models.PostResponse, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	rules    *rules
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, rules *rules) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		rules:    rules,
	}
}

// GetAllPosts lists published posts. The limit is clamped to 50 no matter
// what was requested.
func (s *postService) GetAllPosts(ctx context.Context, page, limit int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	posts, total := s.postRepo.FindWithPagination(ctx, page, limit, models.StatusPublished)

	data := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		data = append(data, toPostResponse(ctx, s.userRepo, post))
	}

	return &models.PostPage{
		Posts: data,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
			HasNext:    page*limit < total,
			HasPrev:    page > 1,
		},
	}, nil
}

// GetPostByID hides drafts entirely: an existing but unpublished post looks
// the same as a missing one. Visibility for the author comes back once real
// authentication lands.
func (s *postService) GetPostByID(ctx context.Context, id string) (*models.PostResponse, error) {
	post := s.postRepo.FindByID(ctx, id)
	if post == nil || post.Status != models.StatusPublished {
		return nil, errs.NotFound("Post not found")
	}

	resp := toPostResponse(ctx, s.userRepo, *post)
	return &resp, nil
}

func (s *postService) CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.PostResponse, error) {
	if req.Status == "" {
		req.Status = models.StatusDraft
	}

	if err := s.rules.title(req.Title); err != nil {
		return nil, err
	}
	if err := s.rules.content(req.Content); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		if err := s.rules.tags(req.Tags); err != nil {
			return nil, err
		}
	}
	if err := s.rules.status(req.Status); err != nil {
		return nil, err
	}

	excerpt := generateExcerpt(req.Content)
	if req.Excerpt != nil {
		excerpt = *req.Excerpt
	}

	post := s.postRepo.Create(ctx, models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  excerpt,
		AuthorID: authorID,
		Tags:     req.Tags,
		Status:   req.Status,
	})

	resp := toPostResponse(ctx, s.userRepo, post)
	return &resp, nil
}

func (s *postService) UpdatePost(ctx context.Context, id, authorID string, patch models.UpdatePostPatch) (*models.PostResponse, error) {
	post := s.postRepo.FindByID(ctx, id)
	if post == nil {
		return nil, errs.NotFound("Post not found")
	}

	if post.AuthorID != authorID {
		return nil, errs.Authorization("Unauthorized: You can only edit your own posts")
	}

	// Only the fields being changed are re-validated, merged with the
	// stored values for the cross-field length rules.
	if patch.Title != nil || patch.Content != nil {
		title := post.Title
		if patch.Title != nil {
			title = *patch.Title
		}
		content := post.Content
		if patch.Content != nil {
			content = *patch.Content
		}
		if err := s.rules.title(title); err != nil {
			return nil, err
		}
		if err := s.rules.content(content); err != nil {
			return nil, err
		}
	}
	if patch.Tags != nil {
		if err := s.rules.tags(*patch.Tags); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err := s.rules.status(*patch.Status); err != nil {
			return nil, err
		}
	}

	updated := s.postRepo.Update(ctx, id, patch)
	if updated == nil {
		return nil, errs.Internal("Failed to update post")
	}

	resp := toPostResponse(ctx, s.userRepo, *updated)
	return &resp, nil
}

// DeletePost removes the post only. Its comments are left in place; they
// become unreachable through the API because the comment listing refuses
// missing posts. Known data-integrity gap.
func (s *postService) DeletePost(ctx context.Context, id, authorID string) error {
	post := s.postRepo.FindByID(ctx, id)
	if post == nil {
		return errs.NotFound("Post not found")
	}

	if post.AuthorID != authorID {
		return errs.Authorization("Unauthorized: You can only delete your own posts")
	}

	if !s.postRepo.Delete(ctx, id) {
		return errs.Internal("Failed to delete post")
	}
	return nil
}

// SearchPosts matches published posts only. A keyword wins over a tag when
// both are supplied; neither falls back to all published posts.
func (s *postService) SearchPosts(ctx context.Context, keyword, tag string) ([]models.PostResponse, error) {
	var posts []models.Post

	switch {
	case strings.TrimSpace(keyword) != "":
		posts = s.postRepo.SearchByKeyword(ctx, keyword)
	case strings.TrimSpace(tag) != "":
		posts = s.postRepo.SearchByTag(ctx, tag)
	default:
		posts = s.postRepo.FindByStatus(ctx, models.StatusPublished)
	}

	data := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		data = append(data, toPostResponse(ctx, s.userRepo, post))
	}
	return data, nil
}

func (s *postService) GetPostsByAuthor(ctx context.Context, authorID string) ([]models.PostResponse, error) {
	posts := s.postRepo.FindByAuthorID(ctx, authorID)

	data := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		if post.Status != models.StatusPublished {
			continue
		}
		data = append(data, toPostResponse(ctx, s.userRepo, post))
	}
	return data, nil
}
