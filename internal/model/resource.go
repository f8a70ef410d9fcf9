package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is a study resource pointing at an externally hosted file.
// FilePath is a URL, not an uploaded blob.
type Resource struct {
	ResourceID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Category      string         `json:"category,omitempty"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Tags          []string       `gorm:"type:json;serializer:json" json:"tags,omitempty"`
	FilePath      string         `gorm:"not null" json:"file_path"`
	ThumbnailPath string         `json:"thumbnail_path,omitempty"`
	FileSize      int64          `json:"file_size,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Resource) TableName() string {
	return "resources"
}

type PostResourceRequest struct {
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	FilePath      string   `json:"file_path" validate:"required,url"`
	ThumbnailPath string   `json:"thumbnail_path" validate:"omitempty,url"`
	FileSize      int64    `json:"file_size"`
}

type PutResourceRequest struct {
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	FilePath      string   `json:"file_path" validate:"required,url"`
	ThumbnailPath string   `json:"thumbnail_path" validate:"omitempty,url"`
	FileSize      int64    `json:"file_size"`
}
