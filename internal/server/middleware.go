package server

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimit rejects requests beyond the limiter's budget with a 429 and a
// small JSON body. Applied to the MCP endpoint only; /metrics stays open.
func rateLimit(next http.Handler, limiter *rate.Limiter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "The server is at capacity, try again later.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
