package llm

import (
	"strings"
)

// DefaultFallbackModels is the ladder of models tried in order when the
// primary model is quota-exhausted or unavailable. Pro models first for
// quality, flash models next for quota headroom, lite models last.
//
//nolint:gochecknoglobals // Shared default model ladder
var DefaultFallbackModels = []string{
	"gemini-1.5-pro-latest",
	"gemini-1.5-pro",
	"gemini-2.0-flash",
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash-8b",
	"gemini-2.0-flash-exp",
}

// isRetryableModelError reports whether an error from a model call should
// trigger the next model in the fallback ladder. Quota exhaustion and
// unknown-model errors are retryable with a different model; anything else
// (auth failures, network errors) will fail identically everywhere.
func isRetryableModelError(err error) (retryable bool) {
	if err == nil {
		return retryable
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource has been exhausted") {
		retryable = true
		return retryable
	}

	if strings.Contains(msg, "404") || strings.Contains(msg, "not found") {
		retryable = true
		return retryable
	}

	return retryable
}
