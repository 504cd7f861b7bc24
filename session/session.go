// Package session keeps small per-browser key/value state between requests.
//
// Two backends are provided. CookieStore keeps the values inside a signed
// cookie and needs no server state. RedisStore keeps them server-side in a
// Redis hash and only puts an opaque id in the cookie.
package session

import (
	"context"
	"net/http"
)

// CookieName is the cookie both stores read and write.
const CookieName = "citas_session"

// Session is the key/value map of one browser.
type Session struct {
	ID     string
	Values map[string]string
}

// New returns an empty session with the given id.
func New(id string) *Session {
	return &Session{ID: id, Values: map[string]string{}}
}

// Get returns the stored value or def when the key is absent.
func (s *Session) Get(key, def string) string {
	if v, ok := s.Values[key]; ok {
		return v
	}
	return def
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	s.Values[key] = value
}

// Store loads and persists sessions.
// Load never fails for a missing or invalid cookie; it returns a new session.
type Store interface {
	Load(ctx context.Context, r *http.Request) (*Session, error)
	Save(ctx context.Context, w http.ResponseWriter, s *Session) error
}

func setCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
