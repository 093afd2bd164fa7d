package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	twilioAPIBaseURL   = "https://api.twilio.com"
	defaultSendTimeout = 10 * time.Second
)

type twilioMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TwilioProvider sends SMS through the Twilio Messages API. Missing
// credentials do not fail construction; Send reports the misconfiguration
// as an ordinary delivery failure instead, so the scheduler keeps running
// and the ledger shows what happened.
type TwilioProvider struct {
	client     *resty.Client
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) (*TwilioProvider, error) {
	client := resty.New()
	client.SetTimeout(defaultSendTimeout)
	client.SetRetryCount(0)

	return NewTwilioProviderWithClient(accountSID, authToken, fromNumber, twilioAPIBaseURL, client)
}

func NewTwilioProviderWithClient(accountSID, authToken, fromNumber, baseURL string, client *resty.Client) (*TwilioProvider, error) {
	trimmedBaseURL := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBaseURL == "" {
		return nil, fmt.Errorf("twilio base url is required")
	}
	if _, err := url.ParseRequestURI(trimmedBaseURL); err != nil {
		return nil, fmt.Errorf("invalid twilio base url: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("resty client is required")
	}

	if client.GetClient().Timeout == 0 {
		client.SetTimeout(defaultSendTimeout)
	}
	client.SetRetryCount(0)

	return &TwilioProvider{
		client:     client,
		accountSID: strings.TrimSpace(accountSID),
		authToken:  strings.TrimSpace(authToken),
		fromNumber: strings.TrimSpace(fromNumber),
		baseURL:    trimmedBaseURL,
	}, nil
}

// Configured reports whether credentials were supplied.
func (p *TwilioProvider) Configured() bool {
	return p != nil && p.accountSID != "" && p.authToken != "" && p.fromNumber != ""
}

func (p *TwilioProvider) Send(ctx context.Context, to string, body string) (*ProviderResponse, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("provider is not initialized")
	}
	if !p.Configured() {
		return nil, &ProviderError{Message: "twilio credentials are not configured"}
	}
	if strings.TrimSpace(to) == "" {
		return nil, &ProviderError{Message: "destination number is empty"}
	}

	var result twilioMessageResponse
	var apiErr twilioErrorResponse
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, p.accountSID)

	response, err := p.client.R().
		SetContext(ctx).
		SetBasicAuth(p.accountSID, p.authToken).
		SetFormData(map[string]string{
			"To":   strings.TrimSpace(to),
			"From": p.fromNumber,
			"Body": body,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(endpoint)
	if err != nil {
		return nil, &ProviderError{
			Message: "twilio request failed",
			Cause:   err,
		}
	}
	if response == nil {
		return nil, &ProviderError{Message: "twilio returned empty response"}
	}

	statusCode := response.StatusCode()
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return &ProviderResponse{
			StatusCode: statusCode,
			Body:       strings.TrimSpace(response.String()),
			MessageSID: strings.TrimSpace(result.SID),
		}, nil
	}

	return nil, &ProviderError{
		StatusCode: statusCode,
		Message:    twilioErrorMessage(statusCode, apiErr),
	}
}

func twilioErrorMessage(statusCode int, apiErr twilioErrorResponse) string {
	base := fmt.Sprintf("twilio returned status %d", statusCode)
	msg := strings.TrimSpace(apiErr.Message)
	if msg == "" {
		return base
	}
	if apiErr.Code > 0 {
		return fmt.Sprintf("%s: [%d] %s", base, apiErr.Code, msg)
	}
	return fmt.Sprintf("%s: %s", base, msg)
}
