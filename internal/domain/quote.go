package domain

import (
	"fmt"
	"strings"
)

const DefaultQuoteCategory = "general"

// Quote is a motivational catalog item. Immutable once created.
type Quote struct {
	ID       string
	Text     string
	Author   string
	Category string
}

func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: quote text is required", ErrValidation)
	}
	if strings.TrimSpace(q.Author) == "" {
		return fmt.Errorf("%w: quote author is required", ErrValidation)
	}
	return nil
}

// SMSBody renders the quote in the form the daily SMS carries.
func (q Quote) SMSBody() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Author)
}
