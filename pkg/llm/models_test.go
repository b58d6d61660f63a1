package llm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestIsRetryableModelError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{
			name:      "nil error",
			err:       nil,
			retryable: false,
		},
		{
			name:      "quota exhausted",
			err:       errors.New("googleapi: Error 429: Resource has been exhausted"),
			retryable: true,
		},
		{
			name:      "quota keyword",
			err:       errors.New("Quota exceeded for requests"),
			retryable: true,
		},
		{
			name:      "model not found",
			err:       errors.New("googleapi: Error 404: model not found"),
			retryable: true,
		},
		{
			name:      "auth failure",
			err:       errors.New("googleapi: Error 403: permission denied"),
			retryable: false,
		},
		{
			name:      "network failure",
			err:       errors.New("dial tcp: connection refused"),
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isRetryableModelError(tt.err)
			if got != tt.retryable {
				t.Errorf("Expected retryable=%v for %v, got %v", tt.retryable, tt.err, got)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-1.5-pro", "gemini-1.5-flash", nil)
	if err == nil {
		t.Error("Expected error creating client without API key, got nil")
	}
}

func TestDisplayName(t *testing.T) {
	if displayName("Acme", UnknownCompany) != "Acme" {
		t.Error("Expected provided name to be returned")
	}

	if displayName("", UnknownCompany) != UnknownCompany {
		t.Error("Expected placeholder for empty name")
	}
}
