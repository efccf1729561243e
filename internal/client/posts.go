package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"retrolog/internal/models"
	"retrolog/internal/observability"
)

// CreatePostInput carries the caller-supplied fields for a new post.
type CreatePostInput struct {
	Title   string
	Content string
	Author  string
	Image   string
	UserID  int64
}

// UpdatePostInput carries the editable fields of an existing post.
type UpdatePostInput struct {
	Title   string
	Content string
	Image   string
}

// ListVisiblePosts fetches all posts and returns those not soft-deleted.
// On any transport or parse failure the error is logged and an empty slice is
// returned; callers cannot distinguish "no posts" from "fetch failed".
func (c *Client) ListVisiblePosts(ctx context.Context) []models.Post {
	posts, err := c.fetchPosts(ctx)
	if err != nil {
		observability.Logger.Error("listing posts failed", slog.String("error", err.Error()))
		return []models.Post{}
	}

	visible := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if !p.IsDeleted {
			visible = append(visible, p)
		}
	}
	return visible
}

// GetPost fetches a single post by id. Soft-deleted posts are reported as not
// found (nil) even though the backend record still exists.
func (c *Client) GetPost(ctx context.Context, id int64) *models.Post {
	post, err := c.fetchPost(ctx, id)
	if err != nil {
		if apiErr, ok := err.(*APIError); !ok || apiErr.Status != http.StatusNotFound {
			observability.Logger.Error("fetching post failed",
				slog.Int64("post_id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	if post.IsDeleted {
		return nil
	}
	return post
}

// CreatePost submits a new post document. The repository stamps createdAt,
// clears editedAt, and starts with an empty comment list; the server assigns
// the canonical id. Returns nil on any transport or auth error.
func (c *Client) CreatePost(ctx context.Context, in CreatePostInput, token string) *models.Post {
	doc := models.Post{
		UserID:    models.FlexID(in.UserID),
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Image:     in.Image,
		CreatedAt: time.Now().UTC(),
		IsDeleted: false,
		Comments:  []models.Comment{},
	}

	var created models.Post
	if err := c.doJSON(ctx, http.MethodPost, "/posts", doc, token, &created); err != nil {
		observability.Logger.Error("creating post failed", slog.String("error", err.Error()))
		return nil
	}
	return &created
}

// UpdatePost rewrites the editable fields of a post, stamping editedAt and
// preserving createdAt, ownership, comments, and the soft-delete flag.
// Ownership is checked by the caller, not re-verified here.
func (c *Client) UpdatePost(ctx context.Context, id int64, in UpdatePostInput, token string) *models.Post {
	current, err := c.fetchPost(ctx, id)
	if err != nil {
		observability.Logger.Error("updating post failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()),
		)
		return nil
	}

	now := time.Now().UTC()
	current.Title = in.Title
	current.Content = in.Content
	current.Image = in.Image
	current.EditedAt = &now
	if current.Comments == nil {
		current.Comments = []models.Comment{}
	}

	var updated models.Post
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), current, token, &updated); err != nil {
		observability.Logger.Error("updating post failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &updated
}

// DeletePost soft-deletes a post via read-modify-write: fetch the current
// document, set isDeleted and deletedAt, and write the whole document back.
// This is not atomic; a concurrent edit between the read and the write is
// silently overwritten (last write wins, no version check).
func (c *Client) DeletePost(ctx context.Context, id int64, token string) bool {
	current, err := c.fetchPost(ctx, id)
	if err != nil {
		observability.Logger.Error("deleting post failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()),
		)
		return false
	}

	now := time.Now().UTC()
	current.IsDeleted = true
	current.DeletedAt = &now

	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), current, token, nil); err != nil {
		observability.Logger.Error("deleting post failed",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// fetchPosts is the typed GET /posts call.
func (c *Client) fetchPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/posts", nil, "", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// fetchPost is the typed GET /posts/:id call. It returns the raw document,
// soft-deleted or not; visibility rules live in the exported methods.
func (c *Client) fetchPost(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, "", &post); err != nil {
		return nil, err
	}
	return &post, nil
}
