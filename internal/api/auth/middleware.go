// Package auth guards the briefing API with a static shared-secret header.
package auth

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brieffast/brieffast-server/internal/api/respond"
)

// HeaderName is the request header carrying the shared secret.
const HeaderName = "x-api-key"

// Middleware returns a middleware enforcing the static API key. Unauthenticated
// GET requests are allowed through when the referring page lives under
// sharePathPrefix, so anonymous visitors can view a shared brief without the
// secret ever reaching the browser.
func Middleware(apiKey, sharePathPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				log.Error().Msg("API key is not configured; rejecting request")
				respond.WriteInternalError(w, "server API key is not configured")
				return
			}
			presented := r.Header.Get(HeaderName)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}
			if r.Method == http.MethodGet && referredFromSharePage(r.Referer(), sharePathPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			respond.WriteUnauthorized(w, "invalid or missing API key")
		})
	}
}

func referredFromSharePage(referer, sharePathPrefix string) bool {
	if referer == "" || sharePathPrefix == "" {
		return false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return false
	}
	return strings.Contains(u.Path, sharePathPrefix)
}
