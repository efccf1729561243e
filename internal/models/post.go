// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post document as it travels over the REST API.
// Comments are embedded in the document rather than being a separate
// top-level resource, so a GET/PUT of a post always carries the full
// comment list with it.
type Post struct {
	ID        FlexID     `json:"id"`
	UserID    FlexID     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	Comments  []Comment  `json:"comments"`
}

// Comment represents a single comment embedded in a post document.
// Comments are append-only: no edit or delete operation exists.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    FlexID    `json:"userId"`
	UserName  string    `json:"userName"`
	PostID    FlexID    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}
