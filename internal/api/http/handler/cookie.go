package handler

import (
	"net/http"
	"time"
)

// AuthCookieName is the cookie carrying the bearer token.
const AuthCookieName = "auth_token"

// Mirrors the token's own 2h lifetime.
const authCookieMaxAge = 7200

func newAuthCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredAuthCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
