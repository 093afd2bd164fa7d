package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/repository"
)

// QuoteService exposes the read-only catalog surface. Quotes enter the
// system only through seeding; they are immutable afterwards.
type QuoteService struct {
	quotes repository.QuoteRepository
}

func NewQuoteService(quotes repository.QuoteRepository) (*QuoteService, error) {
	if quotes == nil {
		return nil, fmt.Errorf("quote repository is required")
	}
	return &QuoteService{quotes: quotes}, nil
}

func (s *QuoteService) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: quote id is required", domain.ErrValidation)
	}
	return s.quotes.GetByID(ctx, strings.TrimSpace(id))
}

func (s *QuoteService) List(ctx context.Context, page int, pageSize int) ([]domain.Quote, int64, error) {
	return s.quotes.List(ctx, page, pageSize)
}
