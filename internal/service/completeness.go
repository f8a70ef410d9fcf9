package service

import (
	"unicode/utf16"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// MinExplanationLength is the completeness threshold for explanations,
// measured in UTF-16 code units so the count matches what the dashboard's
// text fields report.
const MinExplanationLength = 50

// explanationLength counts UTF-16 code units (astral-plane characters
// count as 2).
func explanationLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// IsFieldMissing reports whether one field of the entry is considered
// unpopulated. Each rule is independently evaluable.
func IsFieldMissing(v *model.Vocabulary, field model.FieldName) bool {
	switch field {
	case model.FieldVerbForms:
		return v.PartOfSpeech == "verb" && v.VerbForms.IsZero()
	case model.FieldExamples:
		return len(v.Examples) == 0
	case model.FieldExplanation:
		return explanationLength(v.Explanation) < MinExplanationLength
	case model.FieldRomanization:
		return v.Romanization == ""
	case model.FieldPartOfSpeech:
		return v.PartOfSpeech == ""
	case model.FieldThemes:
		return len(v.Themes) == 0
	case model.FieldChapters:
		// Only the chapters filter mode uses this; the generic completeness
		// check never does.
		return len(v.Chapters) == 0
	default:
		return false
	}
}

// MissingFields returns every unpopulated enhanceable field, in the fixed
// EnhanceableFields order. Used for filtering and badge display.
func MissingFields(v *model.Vocabulary) []model.FieldName {
	var missing []model.FieldName
	for _, f := range model.EnhanceableFields {
		if IsFieldMissing(v, f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsIncomplete drives the default "all" filter: an entry is incomplete iff
// at least one of verb_forms, examples or explanation is missing. It
// intentionally ignores romanization, part_of_speech and themes.
func IsIncomplete(v *model.Vocabulary) bool {
	return IsFieldMissing(v, model.FieldVerbForms) ||
		IsFieldMissing(v, model.FieldExamples) ||
		IsFieldMissing(v, model.FieldExplanation)
}

// MissingAllFields is the stricter bulk-filter predicate: every one of
// verb_forms (when the entry is a verb), examples, explanation, romanization
// and themes must be simultaneously missing. It is deliberately a different
// field set and combinator than IsIncomplete; the two are never unified.
func MissingAllFields(v *model.Vocabulary) bool {
	if v.PartOfSpeech == "verb" && !IsFieldMissing(v, model.FieldVerbForms) {
		return false
	}
	return IsFieldMissing(v, model.FieldExamples) &&
		IsFieldMissing(v, model.FieldExplanation) &&
		IsFieldMissing(v, model.FieldRomanization) &&
		IsFieldMissing(v, model.FieldThemes)
}
