package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartOfSpeech values accepted for a vocabulary entry.
var PartsOfSpeech = []string{
	"noun", "verb", "adjective", "adverb", "pronoun",
	"particle", "number", "interjection", "phrase",
}

// Example is one Korean/Bangla sentence pair attached to an entry.
type Example struct {
	Korean string `json:"korean"`
	Bangla string `json:"bangla"`
}

// VerbForms holds the conjugation set; meaningful only when
// PartOfSpeech == "verb". Absence is not an error for non-verbs.
type VerbForms struct {
	Present string `json:"present"`
	Past    string `json:"past"`
	Future  string `json:"future"`
	Polite  string `json:"polite"`
}

// IsZero reports whether no form has been filled in.
func (v *VerbForms) IsZero() bool {
	return v == nil || (v.Present == "" && v.Past == "" && v.Future == "" && v.Polite == "")
}

// Vocabulary is one Korean-Bangla dictionary entry. List-shaped fields are
// stored as JSON columns.
type Vocabulary struct {
	VocabID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	KoreanWord    string         `gorm:"not null" json:"korean_word"`
	BanglaMeaning string         `gorm:"not null" json:"bangla_meaning"`
	Romanization  string         `json:"romanization,omitempty"`
	PartOfSpeech  string         `json:"part_of_speech,omitempty"`
	Explanation   string         `gorm:"type:text" json:"explanation,omitempty"`
	Examples      []Example      `gorm:"type:json;serializer:json" json:"examples,omitempty"`
	Themes        []string       `gorm:"type:json;serializer:json" json:"themes,omitempty"`
	Chapters      []int          `gorm:"type:json;serializer:json" json:"chapters,omitempty"`
	VerbForms     *VerbForms     `gorm:"type:json;serializer:json" json:"verb_forms,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Vocabulary) TableName() string {
	return "vocabulary"
}

// FieldName identifies one enhanceable vocabulary field.
type FieldName string

const (
	FieldVerbForms    FieldName = "verb_forms"
	FieldExamples     FieldName = "examples"
	FieldExplanation  FieldName = "explanation"
	FieldRomanization FieldName = "romanization"
	FieldPartOfSpeech FieldName = "part_of_speech"
	FieldThemes       FieldName = "themes"
	FieldChapters     FieldName = "chapters"
)

// EnhanceableFields are the fields an enrichment call may fill in.
var EnhanceableFields = []FieldName{
	FieldVerbForms, FieldExamples, FieldExplanation,
	FieldRomanization, FieldPartOfSpeech, FieldThemes,
}

type PostVocabularyRequest struct {
	KoreanWord    string     `json:"korean_word" validate:"required"`
	BanglaMeaning string     `json:"bangla_meaning" validate:"required"`
	Romanization  string     `json:"romanization"`
	PartOfSpeech  string     `json:"part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb pronoun particle number interjection phrase"`
	Explanation   string     `json:"explanation"`
	Examples      []Example  `json:"examples"`
	Themes        []string   `json:"themes"`
	Chapters      []int      `json:"chapters"`
	VerbForms     *VerbForms `json:"verb_forms"`
}

type PutVocabularyRequest struct {
	KoreanWord    string     `json:"korean_word" validate:"required"`
	BanglaMeaning string     `json:"bangla_meaning" validate:"required"`
	Romanization  string     `json:"romanization"`
	PartOfSpeech  string     `json:"part_of_speech" validate:"omitempty,oneof=noun verb adjective adverb pronoun particle number interjection phrase"`
	Explanation   string     `json:"explanation"`
	Examples      []Example  `json:"examples"`
	Themes        []string   `json:"themes"`
	Chapters      []int      `json:"chapters"`
	VerbForms     *VerbForms `json:"verb_forms"`
}

type BulkVocabularyRequest struct {
	Entries []PostVocabularyRequest `json:"entries" validate:"required,min=1,dive"`
}

// VocabularyListQuery carries the filter and window parameters of the list
// endpoint.
type VocabularyListQuery struct {
	Search         string
	Theme          string
	MissingFilter  string // "", "all", a FieldName, or "missing-all"
	Width          int    // container width in px; 0 disables windowing
	ScrollTop      int
	ViewportHeight int
}

// VocabularyListResponse is the windowed list payload. Items holds only the
// rows inside [Start, End) of the filtered set; MissingFields carries the
// badge data for each returned item, keyed by id.
type VocabularyListResponse struct {
	Total         int                    `json:"total"`
	Filtered      int                    `json:"filtered"`
	Columns       int                    `json:"columns,omitempty"`
	Start         int                    `json:"start"`
	End           int                    `json:"end"`
	Items         []*Vocabulary          `json:"items"`
	MissingFields map[string][]FieldName `json:"missing_fields,omitempty"`
}
