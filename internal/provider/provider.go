package provider

import "context"

// Provider is the outbound SMS delivery port. Implementations do not retry;
// retry policy, if any, belongs to the caller.
type Provider interface {
	Send(ctx context.Context, to string, body string) (*ProviderResponse, error)
}

// ProviderResponse stores provider call metadata for audit and persistence.
type ProviderResponse struct {
	StatusCode int
	Body       string
	MessageSID string
}
