package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"hrms/internal/platform/requestctx"
)

// RequestID assigns every request an id, honoring a caller-supplied
// X-Request-ID so upstream proxies can correlate logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), requestID)))
	})
}
