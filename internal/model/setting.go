package model

import "time"

// SettingKeyImageAPIKey is the fixed name under which the user-supplied
// image-host API key is stored. It is read at call time, never cached.
const SettingKeyImageAPIKey = "imgbb_api_key"

// Setting is a single key/value row.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

type PutSettingRequest struct {
	Value string `json:"value" validate:"required"`
}
