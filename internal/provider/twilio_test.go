package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const (
	testAccountSID = "AC00000000000000000000000000000000"
	testAuthToken  = "secret-token"
	testFromNumber = "+15550000001"
)

func TestTwilioProviderSendSuccess(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path

		user, pass, ok := r.BasicAuth()
		if !ok || user != testAccountSID || pass != testAuthToken {
			t.Errorf("basic auth = %q/%q, want account sid/token", user, pass)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = map[string]string{
			"To":   r.PostFormValue("To"),
			"From": r.PostFormValue("From"),
			"Body": r.PostFormValue("Body"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL)

	resp, err := p.Send(context.Background(), "+15551234567", `"Dream it. Wish it. Do it." - Unknown`)
	if err != nil {
		t.Fatalf("Send() unexpected error: %v", err)
	}

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	if resp.MessageSID != "SM123" {
		t.Fatalf("MessageSID = %q, want %q", resp.MessageSID, "SM123")
	}

	wantPath := "/2010-04-01/Accounts/" + testAccountSID + "/Messages.json"
	if gotPath != wantPath {
		t.Fatalf("path = %q, want %q", gotPath, wantPath)
	}
	if gotForm["To"] != "+15551234567" {
		t.Fatalf("form To = %q, want %q", gotForm["To"], "+15551234567")
	}
	if gotForm["From"] != testFromNumber {
		t.Fatalf("form From = %q, want %q", gotForm["From"], testFromNumber)
	}
	if !strings.Contains(gotForm["Body"], "Dream it") {
		t.Fatalf("form Body = %q, want quote body", gotForm["Body"])
	}
}

func TestTwilioProviderSendAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer server.Close()

	p := newTestProvider(t, server.URL)

	_, err := p.Send(context.Background(), "not-a-number", "hello")
	if err == nil {
		t.Fatal("expected error")
	}

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if providerErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want %d", providerErr.StatusCode, http.StatusBadRequest)
	}
	if !strings.Contains(providerErr.Message, "21211") {
		t.Fatalf("Message = %q, want twilio error code included", providerErr.Message)
	}
}

func TestTwilioProviderSendUnconfigured(t *testing.T) {
	t.Parallel()

	p, err := NewTwilioProvider("", "", "")
	if err != nil {
		t.Fatalf("NewTwilioProvider() error = %v", err)
	}
	if p.Configured() {
		t.Fatal("Configured() = true, want false")
	}

	_, err = p.Send(context.Background(), "+15551234567", "hello")
	if err == nil {
		t.Fatal("expected error for unconfigured provider")
	}

	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if !strings.Contains(providerErr.Message, "not configured") {
		t.Fatalf("Message = %q, want credentials diagnostic", providerErr.Message)
	}
}

func TestTwilioProviderSendEmptyDestination(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "http://127.0.0.1:1")

	_, err := p.Send(context.Background(), "  ", "hello")
	var providerErr *ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestNewTwilioProviderWithClientValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewTwilioProviderWithClient(testAccountSID, testAuthToken, testFromNumber, "", nil); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := NewTwilioProviderWithClient(testAccountSID, testAuthToken, testFromNumber, "://bad", nil); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}

func newTestProvider(t *testing.T, baseURL string) *TwilioProvider {
	t.Helper()

	p, err := NewTwilioProvider(testAccountSID, testAuthToken, testFromNumber)
	if err != nil {
		t.Fatalf("NewTwilioProvider() error = %v", err)
	}
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}
