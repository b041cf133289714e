// Package memory provides process-local implementations of repository ports.
// Nothing here survives a restart.
package memory

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

const (
	quoteEntity = "quote"

	// HealthCheckName identifies the store in readiness results.
	HealthCheckName = "quote-store"
)

// Compile-time interface checks.
var (
	_ ports.QuoteRepository = (*QuoteStore)(nil)
	_ ports.HealthChecker   = (*QuoteStore)(nil)
)

// QuoteStore is an ordered, in-memory quote collection.
// Identifiers come from a counter that only moves forward, so they stay
// unique even if removal is ever added.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	nextID int
	rnd    *rand.Rand
}

// Option configures a QuoteStore.
type Option func(*QuoteStore)

// WithSeed replaces the default seed quotes. Pass nil for an empty store.
func WithSeed(quotes []domain.Quote) Option {
	return func(s *QuoteStore) {
		s.quotes = append([]domain.Quote(nil), quotes...)
	}
}

// WithRand sets the random source used by Random.
func WithRand(rnd *rand.Rand) Option {
	return func(s *QuoteStore) {
		s.rnd = rnd
	}
}

// NewQuoteStore creates a store holding the default seed quotes.
func NewQuoteStore(opts ...Option) *QuoteStore {
	s := &QuoteStore{
		quotes: domain.SeedQuotes(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not security sensitive
	}

	s.nextID = 1
	for _, q := range s.quotes {
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}

	return s
}

// List returns a copy of every quote in insertion order.
func (s *QuoteStore) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out, nil
}

// Random returns a uniformly chosen quote.
func (s *QuoteStore) Random(_ context.Context) (*domain.Quote, error) {
	// rand.Rand is not safe for concurrent use, so take the write lock.
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.quotes) == 0 {
		return nil, domain.NewNotFoundError(quoteEntity, "")
	}

	q := s.quotes[s.rnd.IntN(len(s.quotes))]

	return &q, nil
}

// FindByID returns the first quote with the given identifier.
func (s *QuoteStore) FindByID(_ context.Context, id int) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.quotes {
		if q.ID == id {
			return &q, nil
		}
	}

	return nil, domain.NewNotFoundError(quoteEntity, strconv.Itoa(id))
}

// Append validates and stores a new quote.
// A rejected quote does not consume an identifier.
func (s *QuoteStore) Append(_ context.Context, text, author string) (*domain.Quote, error) {
	q, err := domain.NewQuote(text, author)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q.ID = s.nextID
	s.nextID++
	s.quotes = append(s.quotes, q)

	return &q, nil
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string {
	return HealthCheckName
}

// Check implements ports.HealthChecker. The store has no external
// dependency, so it is healthy unless the caller gave up.
func (s *QuoteStore) Check(ctx context.Context) error {
	return ctx.Err()
}
