package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/errs"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

func newPostServiceUnderTest() (PostService, *repository.Repository) {
	repo := repository.NewRepository()
	return NewPostService(repo.Post, repo.User, newRules()), repo
}

func seedPost(t *testing.T, repo *repository.Repository, title, content, authorID, status string, tags ...string) models.Post {
	t.Helper()
	return repo.Post.Create(context.Background(), models.Post{
		Title:    title,
		Content:  content,
		Excerpt:  content,
		AuthorID: authorID,
		Tags:     tags,
		Status:   status,
	})
}

func TestCreatePost_PublishedAtMatchesStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostServiceUnderTest()

	draft, err := svc.CreatePost(ctx, "u1", models.CreatePostRequest{
		Title:   "Draft post",
		Content: "Content long enough",
		Status:  models.StatusDraft,
	})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)
	assert.Equal(t, models.StatusDraft, draft.Status)

	published, err := svc.CreatePost(ctx, "u1", models.CreatePostRequest{
		Title:   "Published post",
		Content: "Content long enough",
		Status:  models.StatusPublished,
	})
	require.NoError(t, err)
	assert.NotNil(t, published.PublishedAt)
}

func TestCreatePost_DefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostServiceUnderTest()

	post, err := svc.CreatePost(ctx, "u1", models.CreatePostRequest{
		Title:   "No status given",
		Content: "Content long enough",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, post.Status)
}

func TestCreatePost_Excerpt(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostServiceUnderTest()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short content is used verbatim",
			content: "Exactly this content",
			want:    "Exactly this content",
		},
		{
			name:    "long content is truncated with ellipsis",
			content: strings.Repeat("a", 180),
			want:    strings.Repeat("a", 150) + "...",
		},
		{
			name:    "trailing whitespace is trimmed before the ellipsis",
			content: strings.Repeat("a", 149) + " " + strings.Repeat("b", 40),
			want:    strings.Repeat("a", 149) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := svc.CreatePost(ctx, "u1", models.CreatePostRequest{
				Title:   "Excerpt test",
				Content: tt.content,
				Status:  models.StatusDraft,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, post.Excerpt)
		})
	}
}

func TestCreatePost_SuppliedExcerptWins(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostServiceUnderTest()

	excerpt := "hand-written summary"
	post, err := svc.CreatePost(ctx, "u1", models.CreatePostRequest{
		Title:   "Custom excerpt",
		Content: strings.Repeat("a", 180),
		Excerpt: &excerpt,
		Status:  models.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "hand-written summary", post.Excerpt)
}

func TestCreatePost_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPostServiceUnderTest()

	longTag := strings.Repeat("t", 31)
	manyTags := make([]string, 11)
	for i := range manyTags {
		manyTags[i] = "tag"
	}

	tests := []struct {
		name    string
		req     models.CreatePostRequest
		wantMsg string
	}{
		{
			name:    "blank title",
			req:     models.CreatePostRequest{Title: "   ", Content: "Content long enough", Status: models.StatusDraft},
			wantMsg: "Title is required",
		},
		{
			name:    "short title",
			req:     models.CreatePostRequest{Title: "ab", Content: "Content long enough", Status: models.StatusDraft},
			wantMsg: "Title must be at least 3 characters",
		},
		{
			name:    "long title",
			req:     models.CreatePostRequest{Title: strings.Repeat("t", 201), Content: "Content long enough", Status: models.StatusDraft},
			wantMsg: "Title must be less than 200 characters",
		},
		{
			name:    "blank content",
			req:     models.CreatePostRequest{Title: "Title", Content: "  ", Status: models.StatusDraft},
			wantMsg: "Content is required",
		},
		{
			name:    "short content",
			req:     models.CreatePostRequest{Title: "Title", Content: "too short", Status: models.StatusDraft},
			wantMsg: "Content must be at least 10 characters",
		},
		{
			name:    "long content",
			req:     models.CreatePostRequest{Title: "Title", Content: strings.Repeat("c", 201), Status: models.StatusDraft},
			wantMsg: "Content must be less than 200 characters",
		},
		{
			name:    "too many tags",
			req:     models.CreatePostRequest{Title: "Title", Content: "Content long enough", Tags: manyTags, Status: models.StatusDraft},
			wantMsg: "Maximum 10 tags allowed",
		},
		{
			name:    "oversized tag",
			req:     models.CreatePostRequest{Title: "Title", Content: "Content long enough", Tags: []string{longTag}, Status: models.StatusDraft},
			wantMsg: "Each tag must be between 1 and 30 characters",
		},
		{
			name:    "unknown status",
			req:     models.CreatePostRequest{Title: "Title", Content: "Content long enough", Status: "archived"},
			wantMsg: "Status must be either draft or published",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(ctx, "u1", tt.req)
			require.Error(t, err)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestGetPostByID_HidesDrafts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	draft := seedPost(t, repo, "Draft", "Content long enough", "u1", models.StatusDraft)
	published := seedPost(t, repo, "Published", "Content long enough", "u1", models.StatusPublished)

	_, err := svc.GetPostByID(ctx, draft.ID)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.EqualError(t, err, "Post not found")

	got, err := svc.GetPostByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)
}

func TestGetAllPosts_PaginationProperties(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	for i := 0; i < 60; i++ {
		seedPost(t, repo, "Post", "Content long enough", "u1", models.StatusPublished)
	}
	seedPost(t, repo, "Draft", "Content long enough", "u1", models.StatusDraft)

	// A huge requested limit is clamped to 50.
	page1, err := svc.GetAllPosts(ctx, 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 50, page1.Pagination.Limit)
	assert.Len(t, page1.Posts, 50)
	assert.Equal(t, 60, page1.Pagination.Total)
	assert.Equal(t, 2, page1.Pagination.TotalPages)
	assert.True(t, page1.Pagination.HasNext)
	assert.False(t, page1.Pagination.HasPrev)

	page2, err := svc.GetAllPosts(ctx, 2, 50)
	require.NoError(t, err)
	assert.Len(t, page2.Posts, 10)
	assert.False(t, page2.Pagination.HasNext)
	assert.True(t, page2.Pagination.HasPrev)

	// Defaults kick in for nonsense values.
	fallback, err := svc.GetAllPosts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, fallback.Pagination.Page)
	assert.Equal(t, 10, fallback.Pagination.Limit)
}

func TestSearchPosts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	seedPost(t, repo, "Widget review", "Content long enough", "u1", models.StatusPublished, "gadgets")
	seedPost(t, repo, "Other", "there is a WIDGET in here", "u1", models.StatusPublished, "misc")
	seedPost(t, repo, "Widget draft", "widget everywhere", "u1", models.StatusDraft, "gadgets")

	t.Run("keyword matches title or content, published only", func(t *testing.T) {
		results, err := svc.SearchPosts(ctx, "widget", "")
		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, p := range results {
			assert.Equal(t, models.StatusPublished, p.Status)
		}
	})

	t.Run("tag match is exact membership", func(t *testing.T) {
		results, err := svc.SearchPosts(ctx, "", "gadgets")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Widget review", results[0].Title)
	})

	t.Run("keyword takes precedence over tag", func(t *testing.T) {
		results, err := svc.SearchPosts(ctx, "there is a", "gadgets")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Other", results[0].Title)
	})

	t.Run("neither falls back to all published", func(t *testing.T) {
		results, err := svc.SearchPosts(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestUpdatePost_OwnershipAndValidation(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	post := seedPost(t, repo, "Owned", "Content long enough", "u1", models.StatusDraft)

	newTitle := "New title"
	_, err := svc.UpdatePost(ctx, post.ID, "u2", models.UpdatePostPatch{Title: &newTitle})
	require.Error(t, err)
	assert.Equal(t, errs.KindAuthorization, errs.KindOf(err))
	assert.EqualError(t, err, "Unauthorized: You can only edit your own posts")

	_, err = svc.UpdatePost(ctx, "no-such-id", "u1", models.UpdatePostPatch{Title: &newTitle})
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	shortContent := "tiny"
	_, err = svc.UpdatePost(ctx, post.ID, "u1", models.UpdatePostPatch{Content: &shortContent})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	// A valid partial update merges with the stored fields.
	updated, err := svc.UpdatePost(ctx, post.ID, "u1", models.UpdatePostPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "Content long enough", updated.Content)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	post := seedPost(t, repo, "Doomed", "Content long enough", "u1", models.StatusDraft)

	err := svc.DeletePost(ctx, post.ID, "u2")
	require.Error(t, err)
	assert.Equal(t, errs.KindAuthorization, errs.KindOf(err))
	assert.EqualError(t, err, "Unauthorized: You can only delete your own posts")

	require.NoError(t, svc.DeletePost(ctx, post.ID, "u1"))

	// Deleting again is a not-found, never a silent success.
	err = svc.DeletePost(ctx, post.ID, "u1")
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestGetPostsByAuthor_PublishedOnly(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	seedPost(t, repo, "Published", "Content long enough", "u1", models.StatusPublished)
	seedPost(t, repo, "Draft", "Content long enough", "u1", models.StatusDraft)
	seedPost(t, repo, "Someone else", "Content long enough", "u2", models.StatusPublished)

	posts, err := svc.GetPostsByAuthor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Published", posts[0].Title)
}

func TestPostProjection_AuthorSummary(t *testing.T) {
	ctx := context.Background()
	svc, repo := newPostServiceUnderTest()

	author := repo.User.Create(ctx, models.User{Email: "alice@example.com", Name: "Alice", Avatar: "http://a/img.png"})

	known := seedPost(t, repo, "By Alice", "Content long enough", author.ID, models.StatusPublished)
	orphan := seedPost(t, repo, "Orphan", "Content long enough", "ghost", models.StatusPublished)

	got, err := svc.GetPostByID(ctx, known.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorSummary{ID: author.ID, Name: "Alice", Avatar: "http://a/img.png"}, got.Author)
	assert.NotEmpty(t, got.CreatedAt)
	assert.NotNil(t, got.PublishedAt)

	got, err = svc.GetPostByID(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorSummary{ID: "", Name: "Unknown User"}, got.Author)
}
