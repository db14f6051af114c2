package middleware

import (
	"net"
	"net/http"
	"strings"
)

// AllowedHosts rejects requests whose Host header is not in the allow list.
// An empty list allows everything, which keeps local development working.
func AllowedHosts(hosts []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hostAllowed(r.Host, hosts) {
				http.Error(w, "Invalid host", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hostAllowed(host string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	host = strings.ToLower(strings.TrimSpace(host))
	bare, _, err := net.SplitHostPort(host)
	if err != nil {
		bare = host
	}

	for _, h := range allowed {
		h = strings.ToLower(strings.TrimSpace(h))
		hBare := h
		if idx := strings.Index(h, ":"); idx != -1 {
			hBare = h[:idx]
		}
		if host == h || bare == hBare {
			return true
		}
	}

	return false
}
