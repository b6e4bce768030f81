package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SSE event names for the streaming generate endpoint.
const (
	EventRequesting = "requesting"
	EventResult     = "result"
	EventWarning    = "warning"
	EventError      = "error"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteRequesting reports that the completion call has started.
func (s *SSEWriter) WriteRequesting(message string) {
	s.WriteEvent(EventRequesting, map[string]string{"message": message}) //nolint:errcheck
}

// WriteWarning reports rejected input.
func (s *SSEWriter) WriteWarning(resp ErrorResponse) {
	s.WriteEvent(EventWarning, resp) //nolint:errcheck
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent(EventError, ErrorResponse{Error: message}) //nolint:errcheck
}
