package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"retrolog/internal/models"
	"retrolog/internal/observability"

	"github.com/rs/xid"
)

// AddCommentInput carries the caller-supplied fields for a new comment.
type AddCommentInput struct {
	Content  string
	UserID   int64
	UserName string
}

// ListComments returns the comments embedded in the post document, or an
// empty slice when the post or its comments field is absent. Errors are
// logged and yield an empty slice.
func (c *Client) ListComments(ctx context.Context, postID int64) []models.Comment {
	post, err := c.fetchPost(ctx, postID)
	if err != nil {
		observability.Logger.Error("listing comments failed",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		return []models.Comment{}
	}
	if post.Comments == nil {
		return []models.Comment{}
	}
	return post.Comments
}

// AddComment appends a comment to the post document via read-modify-write:
// fetch the post, append the new comment, and write the whole document back.
// Like DeletePost this is not atomic; two concurrent appends that both read
// before either writes will lose one comment (last write wins).
func (c *Client) AddComment(ctx context.Context, postID int64, in AddCommentInput, token string) *models.Comment {
	post, err := c.fetchPost(ctx, postID)
	if err != nil {
		observability.Logger.Error("adding comment failed",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	userName := strings.TrimSpace(in.UserName)
	if userName == "" {
		userName = "Anonymous"
	}

	comment := models.Comment{
		ID:        xid.New().String(),
		Content:   in.Content,
		UserID:    models.FlexID(in.UserID),
		UserName:  userName,
		PostID:    post.ID,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append(post.Comments, comment)

	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", postID), post, token, nil); err != nil {
		observability.Logger.Error("adding comment failed",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &comment
}
