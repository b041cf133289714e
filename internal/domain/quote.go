// Package domain contains the quote entity, its rules, and the errors they
// produce. Errors here are transport-agnostic; adapters map them.
package domain

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier for this quote, assigned by the store.
	ID int

	// Text is the body of the quotation.
	Text string

	// Author is who said or wrote the quote.
	Author string
}

// NewQuote builds an unsaved quote after checking that both text and author
// are present. The ID is left zero; the repository assigns it on append.
// Only presence is checked, so whitespace-only values are accepted.
func NewQuote(text, author string) (Quote, error) {
	var missing []string

	if text == "" {
		missing = append(missing, "text")
	}

	if author == "" {
		missing = append(missing, "author")
	}

	if len(missing) > 0 {
		return Quote{}, newMissingFieldsError(missing...)
	}

	return Quote{Text: text, Author: author}, nil
}

// SeedQuotes returns the quotes every store starts with.
func SeedQuotes() []Quote {
	return []Quote{
		{ID: 1, Text: "Учиться, учиться и учиться", Author: "Ленин"},
		{ID: 2, Text: "Быть или не быть", Author: "Шекспир"},
		{ID: 3, Text: "Знание - сила", Author: "Бэкон"},
		{ID: 4, Text: "Делай, что можешь, с тем, что имеешь, там, где ты есть", Author: "Рузвельт"},
		{ID: 5, Text: "Стремитесь не к успеху, а к ценностям, которые он дает!", Author: "Эйнштейн"},
	}
}
