// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrValidation)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// QuoteRepository holds the quote collection.
//
// Example usage in application layer:
//
//	svc := app.NewQuoteService(app.QuoteServiceConfig{
//	    Repository: memory.NewQuoteStore(),
//	})
type QuoteRepository interface {
	// List returns every quote in insertion order.
	List(ctx context.Context) ([]domain.Quote, error)

	// Random returns a uniformly chosen quote.
	// Returns domain.ErrNotFound if the collection is empty.
	Random(ctx context.Context) (*domain.Quote, error)

	// FindByID returns the quote with the given identifier.
	// Returns domain.ErrNotFound if no quote has that identifier.
	FindByID(ctx context.Context, id int) (*domain.Quote, error)

	// Append validates and stores a new quote, assigning its identifier.
	// Returns domain.ErrValidation if text or author is missing; the
	// collection is left untouched in that case.
	Append(ctx context.Context, text, author string) (*domain.Quote, error)
}
