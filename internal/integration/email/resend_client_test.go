package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homeledger/backend/internal/application/adapter"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "unauthorized", err: errors.New("401 Unauthorized"), want: true},
		{name: "validation", err: errors.New("422: validation_error"), want: true},
		{name: "rate limit", err: errors.New("429 too many requests"), want: false},
		{name: "server error", err: errors.New("500 internal server error"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPermanentError(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResendClient_Send(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer server.Close()

	client, err := NewResendClient("re_test", "Home Ledger", "reports@example.com", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := client.Send(context.Background(), adapter.EmailMessage{
		To:      "sam@example.com",
		Subject: "Your March 2024 report",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		Tags:    map[string]string{"period": "2024-03", "kind": "monthly_report"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MessageID != "email-123" {
		t.Errorf("expected message id email-123, got %q", result.MessageID)
	}
	if gotPath != "/emails" {
		t.Errorf("expected path /emails, got %q", gotPath)
	}
	if gotAuth != "Bearer re_test" {
		t.Errorf("expected bearer api key, got %q", gotAuth)
	}
	if gotBody["from"] != "Home Ledger <reports@example.com>" {
		t.Errorf("unexpected from: %v", gotBody["from"])
	}
	tags, _ := gotBody["tags"].([]any)
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", gotBody["tags"])
	}
	if first, _ := tags[0].(map[string]any); first["name"] != "kind" {
		t.Errorf("expected tags sorted by name, got %v", tags)
	}
}

func TestResendClient_SendWithoutRecipient(t *testing.T) {
	client, err := NewResendClient("re_test", "Home Ledger", "reports@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Send(context.Background(), adapter.EmailMessage{Subject: "s"})
	if !errors.Is(err, domainerror.ErrRecipientNotFound) {
		t.Errorf("expected ErrRecipientNotFound, got %v", err)
	}
}

func TestResendClient_SendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":500,"name":"internal_server_error","message":"boom"}`))
	}))
	defer server.Close()

	client, err := NewResendClient("re_test", "Home Ledger", "reports@example.com", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Send(context.Background(), adapter.EmailMessage{To: "sam@example.com", Subject: "s", Text: "t"})

	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) {
		t.Fatalf("expected EmailError, got %v", err)
	}
	if !emailErr.Temporary() {
		t.Errorf("expected temporary failure, got %s", emailErr.Code)
	}
	if !errors.Is(err, domainerror.ErrEmailDeliveryFailed) {
		t.Error("expected delivery failures to match ErrEmailDeliveryFailed")
	}
}

func TestNewResendClient_InvalidBaseURL(t *testing.T) {
	if _, err := NewResendClient("re_test", "n", "e@example.com", "://bad"); err == nil {
		t.Error("expected error for invalid base url")
	}
}
