package model

import "time"

// ForumPost is a community post. Comments are embedded: a post exclusively
// owns its comments and they are never stored on their own. Author name is a
// denormalized copy taken at creation time; renaming a user does not rewrite
// historical posts.
// swagger:model ForumPost
type ForumPost struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Category   string         `json:"category"`
	AuthorID   string         `json:"authorId"`
	AuthorName string         `json:"authorName"`
	Comments   []ForumComment `json:"comments"`
	Likes      int            `json:"likes"`
	Views      int            `json:"views"`
	Tags       []string       `json:"tags"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt,omitzero"`
}

type ForumComment struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}
