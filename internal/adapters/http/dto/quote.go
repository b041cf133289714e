package dto

import "github.com/jsamuelsen/quote-service/internal/domain"

// CreateQuoteRequest is the body of POST /api/quotes.
// Unknown fields are ignored.
type CreateQuoteRequest struct {
	Text   string `json:"text"   validate:"required"`
	Author string `json:"author" validate:"required"`
}

// QuoteResponse is the wire form of a quote. Field order matches the
// historical output: id, text, author.
type QuoteResponse struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		Text:   q.Text,
		Author: q.Author,
	}
}

// NewQuoteListResponse converts quotes, keeping order. An empty input yields
// an empty, non-nil slice so it encodes as [].
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, NewQuoteResponse(&quotes[i]))
	}

	return out
}
