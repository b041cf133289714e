package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		author     string
		wantFields []string
	}{
		{name: "valid", text: "X", author: "Y"},
		{name: "whitespace is present", text: " ", author: " "},
		{name: "missing text", text: "", author: "Y", wantFields: []string{"text"}},
		{name: "missing author", text: "X", author: "", wantFields: []string{"author"}},
		{name: "missing both", text: "", author: "", wantFields: []string{"text", "author"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.text, tt.author)

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, Quote{Text: tt.text, Author: tt.author}, q)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.wantFields, validation.Fields)
			assert.Zero(t, q)
		})
	}
}

func TestSeedQuotes(t *testing.T) {
	seed := SeedQuotes()

	require.Len(t, seed, 5)

	for i, q := range seed {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
	}

	assert.Equal(t, Quote{ID: 3, Text: "Знание - сила", Author: "Бэкон"}, seed[2])

	// Each call returns a fresh slice.
	seed[0].Text = "changed"
	assert.Equal(t, "Учиться, учиться и учиться", SeedQuotes()[0].Text)
}
