package utils

import (
	"github.com/goccy/go-json"
)

type backendErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ParseBackendErrorMessage extracts the user-facing message from a backend
// error body. Preference order: server "error" field, server "message" field,
// then the supplied fallback.
func ParseBackendErrorMessage(body []byte, fallback string) string {
	var parsed backendErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return fallback
}
