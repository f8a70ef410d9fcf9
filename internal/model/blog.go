package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogCategories is the fixed category list for blog posts.
var BlogCategories = []string{"grammar", "vocabulary", "culture", "study-tips", "news"}

// Blog is a Markdown post. Slug is derived from the title when the client
// does not supply one.
type Blog struct {
	BlogID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Category     string         `json:"category,omitempty"`
	Tags         []string       `gorm:"type:json;serializer:json" json:"tags,omitempty"`
	PublishedAt  *time.Time     `json:"published_at,omitempty"`
	ViewCount    int64          `json:"view_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Blog) TableName() string {
	return "blogs"
}

type PostBlogRequest struct {
	Title        string     `json:"title" validate:"required"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content" validate:"required"`
	ThumbnailURL string     `json:"thumbnail_url" validate:"omitempty,url"`
	Category     string     `json:"category" validate:"omitempty,oneof=grammar vocabulary culture study-tips news"`
	Tags         []string   `json:"tags"`
	PublishedAt  *time.Time `json:"published_at"`
}

type PutBlogRequest struct {
	Title        string     `json:"title" validate:"required"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content" validate:"required"`
	ThumbnailURL string     `json:"thumbnail_url" validate:"omitempty,url"`
	Category     string     `json:"category" validate:"omitempty,oneof=grammar vocabulary culture study-tips news"`
	Tags         []string   `json:"tags"`
	PublishedAt  *time.Time `json:"published_at"`
}
