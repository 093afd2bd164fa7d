package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeliveryStatus is the outcome of a single delivery attempt.
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "SENT"
	DeliveryFailed DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) String() string { return string(s) }

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliverySent, DeliveryFailed:
		return true
	}
	return false
}

func ParseDeliveryStatusFromString(s string) (DeliveryStatus, error) {
	st := DeliveryStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: invalid delivery status %q", ErrValidation, s)
	}
	return st, nil
}

// Message is one delivery attempt in the ledger. Records are append-only:
// a failed attempt is never updated, a later attempt produces a new record.
type Message struct {
	ID            string
	UserID        string
	QuoteID       string
	DeliveryDay   string // "2006-01-02" in the user's own time zone
	Status        DeliveryStatus
	ProviderSID   *string
	FailureReason *string
	SentAt        time.Time
}

func (m *Message) Validate() error {
	if strings.TrimSpace(m.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if strings.TrimSpace(m.QuoteID) == "" {
		return fmt.Errorf("%w: quote id is required", ErrValidation)
	}
	if strings.TrimSpace(m.DeliveryDay) == "" {
		return fmt.Errorf("%w: delivery day is required", ErrValidation)
	}
	if !m.Status.IsValid() {
		return fmt.Errorf("%w: invalid delivery status %q", ErrValidation, m.Status)
	}
	return nil
}
