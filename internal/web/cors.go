package web

import (
	"net/http"
	"strings"
)

var devCORSHeaders = map[string]string{
	"Access-Control-Allow-Methods":  strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}, ","),
	"Access-Control-Allow-Headers":  strings.Join([]string{"Content-Type", SharePathHeader, RequestIDHeader}, ","),
	"Access-Control-Expose-Headers": RequestIDHeader,
}

// WithDevCORS lets a configurator served from another origin (a local dev server)
// call the API. Only used when ServerConfig.DevMode is enabled.
func WithDevCORS(next http.Handler) http.Handler {
	if next == nil {
		next = http.DefaultServeMux
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		for k, v := range devCORSHeaders {
			h.Set(k, v)
		}

		// preflight
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
