package api

import (
	"net/http"
)

// SessionToken issues, checks and revokes the session marker carried by a request.
type SessionToken interface {
	Issue(w http.ResponseWriter)
	Validate(r *http.Request) bool
	Revoke(w http.ResponseWriter)
}

// CookieSession keeps the session marker in an HTTP-only cookie.
type CookieSession struct {
	// Secure sets the cookie's Secure attribute; enabled in production.
	Secure bool
}

func (s CookieSession) Issue(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(SessionCookieValue, int(SessionMaxAge.Seconds())))
}

func (s CookieSession) Validate(r *http.Request) bool {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return c.Value == SessionCookieValue
}

// Revoke overwrites the cookie with an already expired one.
func (s CookieSession) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}

func (s CookieSession) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
