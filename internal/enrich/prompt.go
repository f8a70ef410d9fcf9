package enrich

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// BuildPrompt creates the enrichment prompt for one record. The model is
// instructed to return a JSON object holding only the requested fields.
func BuildPrompt(vocab *model.Vocabulary, fields []model.FieldName) string {
	recordJSON, err := json.MarshalIndent(vocab, "", "  ")
	if err != nil {
		recordJSON = []byte(fmt.Sprintf(`{"korean_word":%q,"bangla_meaning":%q}`, vocab.KoreanWord, vocab.BanglaMeaning))
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}

	return fmt.Sprintf(`You are an expert Korean language teacher creating content for Bangla-speaking learners.

Given this Korean vocabulary entry:
%s

Fill in the following fields: %s

Field semantics:
- romanization: standard romanization of the Korean word
- part_of_speech: one of %s
- explanation: a Bangla explanation of usage and nuance, at least 50 characters
- examples: 2-3 objects of the form {"korean": "...", "bangla": "..."}
- themes: a short list of topical tags in English
- verb_forms: {"present": "...", "past": "...", "future": "...", "polite": "..."} (only for verbs)

Output ONLY a valid JSON object containing exactly the requested fields, no markdown, no explanations.`,
		recordJSON, strings.Join(names, ", "), strings.Join(model.PartsOfSpeech, ", "))
}
