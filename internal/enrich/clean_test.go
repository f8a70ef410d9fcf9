package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

func TestCleanResponse(t *testing.T) {
	bare := `{"romanization": "gada", "themes": ["movement"]}`

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare json", bare, bare},
		{"json code fence", "```json\n" + bare + "\n```", bare},
		{"anonymous code fence", "```\n" + bare + "\n```", bare},
		{"fence with surrounding whitespace", "  ```json\n" + bare + "\n```  ", bare},
		{"prose around the object", "Here is the data you asked for:\n" + bare + "\nLet me know if you need more.", bare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanResponse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanResponse_FencedEqualsBare(t *testing.T) {
	bare := `{"explanation": "a verb of motion", "examples": []}`
	fenced := "```json\n" + bare + "\n```"

	fromBare, err := CleanResponse(bare)
	require.NoError(t, err)
	fromFenced, err := CleanResponse(fenced)
	require.NoError(t, err)
	assert.Equal(t, fromBare, fromFenced)
}

func TestCleanResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no object at all", "I could not process that word."},
		{"unbalanced braces", `{"romanization": "gada"`},
		{"truncated json inside fence", "```json\n{\"romanization\": \n```"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CleanResponse(tt.raw)
			assert.ErrorIs(t, err, model.ErrBadAIResponse)
		})
	}
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields("```json\n{\"romanization\": \"gada\", \"themes\": [\"movement\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "gada", fields["romanization"])
	assert.Equal(t, []interface{}{"movement"}, fields["themes"])
}
