package handlers

import (
	"net/http"
	"time"
)

// CookieConfig параметры cookie сессии
type CookieConfig struct {
	Name   string
	Secure bool
}

// SetSessionCookie выставляет HTTP-only cookie с id сессии
func SetSessionCookie(w http.ResponseWriter, cfg CookieConfig, sessionID string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie удаляет cookie сессии
func ClearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionID id сессии из cookie, пустая строка если cookie нет
func SessionID(r *http.Request, cfg CookieConfig) string {
	c, err := r.Cookie(cfg.Name)
	if err != nil {
		return ""
	}
	return c.Value
}
