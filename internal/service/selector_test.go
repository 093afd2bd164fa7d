package service

import (
	"errors"
	"testing"

	"github.com/infinifab/infinifab/internal/domain"
)

func TestPickQuoteEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := PickQuote(nil, nil)
	if !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Fatalf("error = %v, want ErrEmptyCatalog", err)
	}
}

func TestPickQuoteUsesInjectedRand(t *testing.T) {
	t.Parallel()

	quotes := []domain.Quote{
		{ID: "q-1", Text: "a", Author: "A"},
		{ID: "q-2", Text: "b", Author: "B"},
		{ID: "q-3", Text: "c", Author: "C"},
	}

	var gotN int
	quote, err := PickQuote(quotes, func(n int) int {
		gotN = n
		return 2
	})
	if err != nil {
		t.Fatalf("PickQuote() error = %v", err)
	}
	if gotN != len(quotes) {
		t.Fatalf("randIntn bound = %d, want %d", gotN, len(quotes))
	}
	if quote.ID != "q-3" {
		t.Fatalf("quote = %s, want q-3", quote.ID)
	}
}

func TestPickQuoteDefaultRandStaysInBounds(t *testing.T) {
	t.Parallel()

	quotes := []domain.Quote{{ID: "q-1", Text: "a", Author: "A"}}

	for i := 0; i < 10; i++ {
		quote, err := PickQuote(quotes, nil)
		if err != nil {
			t.Fatalf("PickQuote() error = %v", err)
		}
		if quote.ID != "q-1" {
			t.Fatalf("quote = %s, want q-1", quote.ID)
		}
	}
}
