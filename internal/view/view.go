// Package view implements the pure presentation rules derived from post and
// session data: ownership checks, visibility filtering, search, and content
// formatting. Nothing here touches the network or mutates its inputs.
package view

import (
	"math"
	"strings"

	"retrolog/internal/models"
	"retrolog/internal/session"
)

// MaxPreviewLen is the cut-off applied to post previews before the ellipsis.
const MaxPreviewLen = 150

const wordsPerMinute = 200

// IsOwner reports whether the session's viewer is the author of the post.
// Both ids are compared numerically because they may arrive as strings from
// one source and numbers from another.
func IsOwner(post models.Post, state session.State) bool {
	if !state.IsAuthenticated {
		return false
	}
	return state.User.ID.Int64() == post.UserID.Int64()
}

// MatchesSearch reports whether the post matches a free-text query:
// case-insensitive substring containment in title, content, or author.
// An empty or whitespace-only query matches everything.
func MatchesSearch(post models.Post, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(post.Title), q) ||
		strings.Contains(strings.ToLower(post.Content), q) ||
		strings.Contains(strings.ToLower(post.Author), q)
}

// FilterPosts returns the order-preserving subset of posts matching the query.
func FilterPosts(posts []models.Post, query string) []models.Post {
	if strings.TrimSpace(query) == "" {
		return posts
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if MatchesSearch(p, query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TruncateContent produces a single-line preview of content: internal
// whitespace and newlines collapse to single spaces, and the result is cut to
// maxLen characters with an ellipsis appended if anything was removed. The cut
// counts runes, never splitting a multibyte character.
func TruncateContent(content string, maxLen int) string {
	collapsed := strings.Join(strings.Fields(content), " ")
	runes := []rune(collapsed)
	if len(runes) <= maxLen {
		return collapsed
	}
	return string(runes[:maxLen]) + "..."
}

// Paragraphs splits content into paragraphs on blank-line separators for
// structured display. Content without any non-blank paragraph comes back as a
// single paragraph holding the original text.
func Paragraphs(content string) []string {
	parts := strings.Split(content, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	if len(paragraphs) == 0 {
		return []string{content}
	}
	return paragraphs
}

// ReadingTime estimates reading time in whole minutes at 200 words per
// minute, never less than 1.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
