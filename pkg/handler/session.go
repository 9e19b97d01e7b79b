package handler

import (
	"net/http"

	"go.uber.org/zap"
)

const (
	// SessionCookieName cookie set by the login page
	SessionCookieName = "isAdmin"
	// SessionHeaderName header alternative to the cookie for non browser clients
	SessionHeaderName = "X-Admin-Session"
	// DefaultLoginURL where unknown visitors are sent to
	DefaultLoginURL = "login.html"
)

// Session redirects requests without the admin marker to the login page.
// The marker is a plain flag the login page sets, it does not authenticate anyone.
func Session(l *zap.Logger, loginURL string) func(http.Handler) http.Handler {
	if loginURL == "" {
		loginURL = DefaultLoginURL
	}
	l = l.Named("session")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasSession(r) {
				l.Debug("no admin session, redirecting", zap.String("path", r.URL.Path))
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasSession reports whether the request carries the admin marker
func HasSession(r *http.Request) bool {
	if r.Header.Get(SessionHeaderName) == "true" {
		return true
	}
	cookie, err := r.Cookie(SessionCookieName)
	return err == nil && cookie.Value == "true"
}
