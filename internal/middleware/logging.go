package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code and response body
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
	body       *bytes.Buffer
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	// Capture response body for DEBUG logging
	if rw.body != nil {
		rw.body.Write(b)
	}
	return rw.ResponseWriter.Write(b)
}

// LoggingMiddleware logs all HTTP requests with level-based detail
//
// Log levels:
// - INFO: Every request with Remote-IP, User-Agent, HTTP-Method, and Path
// - DEBUG: Additionally logs Request-Body and Response-Body
// - WARN: Failed requests (status 4xx)
// - ERROR: Errors (status 5xx)
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		debug := slog.Default().Enabled(r.Context(), slog.LevelDebug)

		// Read and buffer request body for DEBUG logging
		var requestBody []byte
		if debug && r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		var responseBodyBuffer *bytes.Buffer
		if debug {
			responseBodyBuffer = &bytes.Buffer{}
		}

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           responseBodyBuffer,
		}

		attrs := []any{
			"remote_ip", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"method", r.Method,
			"path", r.URL.Path,
		}
		if debug && len(requestBody) > 0 {
			attrs = append(attrs, "request_body", string(requestBody))
		}
		slog.Debug("Incoming request", attrs...)

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		// Determine log level based on status code
		logLevel := slog.LevelInfo
		logMessage := "Request completed"
		if wrapped.statusCode >= 500 {
			logLevel = slog.LevelError
			logMessage = "Request failed with error"
		} else if wrapped.statusCode >= 400 {
			logLevel = slog.LevelWarn
			logMessage = "Request failed"
		}

		attrs = append(attrs,
			"status", wrapped.statusCode,
			"duration_ms", duration.Milliseconds(),
		)
		if debug && responseBodyBuffer != nil && responseBodyBuffer.Len() > 0 {
			attrs = append(attrs, "response_body", responseBodyBuffer.String())
		}

		slog.Log(r.Context(), logLevel, logMessage, attrs...)
	})
}
