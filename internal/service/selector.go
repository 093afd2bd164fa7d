package service

import (
	"math/rand"

	"github.com/infinifab/infinifab/internal/domain"
)

// PickQuote selects one quote uniformly at random. There is no per-user
// memory of prior picks; repeats across days are expected.
func PickQuote(quotes []domain.Quote, randIntn func(n int) int) (domain.Quote, error) {
	if len(quotes) == 0 {
		return domain.Quote{}, domain.ErrEmptyCatalog
	}
	if randIntn == nil {
		randIntn = rand.Intn
	}
	return quotes[randIntn(len(quotes))], nil
}
