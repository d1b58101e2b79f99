package handlers

import (
	"net/http"
	"strings"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// bearerToken extracts the raw bearer token for upstream pass-through, or ""
// when the header is absent.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// subscriberID reads the authenticated subscriber id placed in the request
// context by the JWT middleware.
func subscriberID(r *http.Request) int {
	id, _ := r.Context().Value("subscriber_id").(int)
	return id
}

// businessID reads the business id placed in the request context by the JWT
// middleware.
func businessID(r *http.Request) int {
	id, _ := r.Context().Value("business_id").(int)
	return id
}
