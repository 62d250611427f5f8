package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
)

func TestCommentRepository_CreateAndFindByPostID(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository()

	first := repo.Create(ctx, models.Comment{PostID: "p1", AuthorID: "u1", Content: "first"})
	repo.Create(ctx, models.Comment{PostID: "p1", AuthorID: "u2", Content: "second"})
	repo.Create(ctx, models.Comment{PostID: "p2", AuthorID: "u1", Content: "elsewhere"})

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	forPost := repo.FindByPostID(ctx, "p1")
	require.Len(t, forPost, 2)
	assert.Equal(t, "first", forPost[0].Content)

	byAuthor := repo.FindByAuthorID(ctx, "u1")
	assert.Len(t, byAuthor, 2)
}

func TestCommentRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository()

	created := repo.Create(ctx, models.Comment{PostID: "p1", AuthorID: "u1", Content: "original"})

	content := "edited"
	updated := repo.Update(ctx, created.ID, models.UpdateCommentPatch{Content: &content})

	require.NotNil(t, updated)
	assert.Equal(t, "edited", updated.Content)

	assert.Nil(t, repo.Update(ctx, "no-such-id", models.UpdateCommentPatch{Content: &content}))
}

func TestCommentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository()

	created := repo.Create(ctx, models.Comment{PostID: "p1", AuthorID: "u1", Content: "bye"})

	assert.True(t, repo.Delete(ctx, created.ID))
	assert.False(t, repo.Delete(ctx, created.ID))
	assert.Empty(t, repo.FindByPostID(ctx, "p1"))
}
