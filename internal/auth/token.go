package auth

import (
	"net/http"
	"strings"
)

// AccessTokenCookie is the cookie a browser client may carry the session
// token in instead of the Authorization header.
const AccessTokenCookie = "access_token"

// ExtractAccessToken returns the session token from the access_token cookie,
// falling back to a Bearer Authorization header. It returns "" when neither
// is present.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
