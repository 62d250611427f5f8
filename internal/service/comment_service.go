package service

import (
	"context"

	"blogapi/internal/errs"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type CommentService interface {
	GetCommentsByPostID(ctx context.Context, postID string) ([]models.CommentResponse, error)
	CreateComment(ctx context.Context, authorID string, req models.CreateCommentRequest) (*models.CommentResponse, error)
	UpdateComment(ctx context.Context, id, authorID, content string) (*models.CommentResponse, error)
	DeleteComment(ctx context.Context, id, authorID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
	rules       *rules
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, rules *rules) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		rules:       rules,
	}
}

// requirePublishedPost answers "Post not found" for both a missing post and
// a draft, so unpublished posts stay invisible to comment readers.
func (s *commentService) requirePublishedPost(ctx context.Context, postID string) error {
	post := s.postRepo.FindByID(ctx, postID)
	if post == nil || post.Status != models.StatusPublished {
		return errs.NotFound("Post not found")
	}
	return nil
}

func (s *commentService) GetCommentsByPostID(ctx context.Context, postID string) ([]models.CommentResponse, error) {
	if err := s.requirePublishedPost(ctx, postID); err != nil {
		return nil, err
	}

	comments := s.commentRepo.FindByPostID(ctx, postID)

	data := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		data = append(data, toCommentResponse(ctx, s.userRepo, comment))
	}
	return data, nil
}

func (s *commentService) CreateComment(ctx context.Context, authorID string, req models.CreateCommentRequest) (*models.CommentResponse, error) {
	if err := s.requirePublishedPost(ctx, req.PostID); err != nil {
		return nil, err
	}

	if err := s.rules.commentContent(req.Content); err != nil {
		return nil, err
	}

	comment := s.commentRepo.Create(ctx, models.Comment{
		PostID:   req.PostID,
		AuthorID: authorID,
		Content:  req.Content,
	})

	resp := toCommentResponse(ctx, s.userRepo, comment)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id, authorID, content string) (*models.CommentResponse, error) {
	comment := s.commentRepo.FindByID(ctx, id)
	if comment == nil {
		return nil, errs.NotFound("Comment not found")
	}

	if comment.AuthorID != authorID {
		return nil, errs.Authorization("Unauthorized: You can only edit your own comments")
	}

	if err := s.rules.commentContent(content); err != nil {
		return nil, err
	}

	updated := s.commentRepo.Update(ctx, id, models.UpdateCommentPatch{Content: &content})
	if updated == nil {
		return nil, errs.Internal("Failed to update comment")
	}

	resp := toCommentResponse(ctx, s.userRepo, *updated)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id, authorID string) error {
	comment := s.commentRepo.FindByID(ctx, id)
	if comment == nil {
		return errs.NotFound("Comment not found")
	}

	if comment.AuthorID != authorID {
		return errs.Authorization("Unauthorized: You can only delete your own comments")
	}

	if !s.commentRepo.Delete(ctx, id) {
		return errs.Internal("Failed to delete comment")
	}
	return nil
}
