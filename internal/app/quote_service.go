// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if no repository is given; that is a wiring bug.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a Repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// loggerFor prefers the request-scoped logger, which carries request and
// correlation ids.
func (s *QuoteService) loggerFor(ctx context.Context) *slog.Logger {
	if l, ok := logging.LoggerFromContext(ctx); ok {
		return l.With(slog.String("component", "app.QuoteService"))
	}

	return s.logger
}

// ListQuotes returns every quote in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	logger := s.loggerFor(ctx)
	logger.InfoContext(ctx, "listing quotes")

	quotes, err := s.repo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// GetRandomQuote returns a uniformly chosen quote.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	logger := s.loggerFor(ctx)
	logger.InfoContext(ctx, "fetching random quote")

	quote, err := s.repo.Random(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to pick random quote", slog.Any("error", err))
		return nil, err
	}

	logger.DebugContext(ctx, "picked random quote",
		slog.Int("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// GetQuoteByID retrieves a specific quote by its identifier.
func (s *QuoteService) GetQuoteByID(ctx context.Context, id int) (*domain.Quote, error) {
	logger := s.loggerFor(ctx).With(slog.Int("quote_id", id))
	logger.InfoContext(ctx, "fetching quote by ID")

	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch quote", slog.Any("error", err))
		return nil, err
	}

	return quote, nil
}

// CreateQuote validates and stores a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, text, author string) (*domain.Quote, error) {
	logger := s.loggerFor(ctx)
	logger.InfoContext(ctx, "adding quote", slog.String("author", author))

	quote, err := s.repo.Append(ctx, text, author)
	if err != nil {
		logger.WarnContext(ctx, "failed to add quote", slog.Any("error", err))
		return nil, err
	}

	logger.InfoContext(ctx, "added quote", slog.Int("quote_id", quote.ID))

	return quote, nil
}
