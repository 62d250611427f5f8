package service

import (
	"context"
	"strings"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

const excerptMaxLength = 150

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// authorSummary resolves the author block for posts and comments. A missing
// author record degrades to a placeholder instead of failing the request.
func authorSummary(ctx context.Context, users repository.UserRepository, authorID string) models.AuthorSummary {
	author := users.FindByID(ctx, authorID)
	if author == nil {
		return models.AuthorSummary{ID: "", Name: "Unknown User"}
	}
	return models.AuthorSummary{
		ID:     author.ID,
		Name:   author.Name,
		Avatar: author.Avatar,
	}
}

func toUserResponse(user models.User) models.UserResponse {
	return models.UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
		Bio:    user.Bio,
	}
}

func toPostResponse(ctx context.Context, users repository.UserRepository, post models.Post) models.PostResponse {
	var publishedAt *string
	if post.PublishedAt != nil {
		s := formatTime(*post.PublishedAt)
		publishedAt = &s
	}

	return models.PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		Author:      authorSummary(ctx, users, post.AuthorID),
		Tags:        post.Tags,
		CreatedAt:   formatTime(post.CreatedAt),
		UpdatedAt:   formatTime(post.UpdatedAt),
		PublishedAt: publishedAt,
		Status:      post.Status,
	}
}

func toCommentResponse(ctx context.Context, users repository.UserRepository, comment models.Comment) models.CommentResponse {
	return models.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    authorSummary(ctx, users, comment.AuthorID),
		Content:   comment.Content,
		CreatedAt: formatTime(comment.CreatedAt),
		UpdatedAt: formatTime(comment.UpdatedAt),
	}
}

// generateExcerpt derives the preview shown in list views: the first 150
// characters with trailing whitespace trimmed, plus an ellipsis. Content
// that already fits is used verbatim.
func generateExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptMaxLength {
		return content
	}
	return strings.TrimRight(string(runes[:excerptMaxLength]), " \t\r\n") + "..."
}
