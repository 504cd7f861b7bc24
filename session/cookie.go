package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type cookieClaims struct {
	Values map[string]string `json:"values"`
	jwt.RegisteredClaims
}

// CookieStore keeps the session values in an HS256-signed token.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
}

var _ Store = (*CookieStore)(nil)

// NewCookieStore signs tokens with secret; each token and cookie lives for ttl.
func NewCookieStore(secret string, ttl time.Duration) (*CookieStore, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	return &CookieStore{secret: []byte(secret), ttl: ttl}, nil
}

// Load verifies the cookie token. A missing, tampered or expired token yields an empty session.
func (s *CookieStore) Load(_ context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return New(""), nil
	}

	claims := &cookieClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		// tampered or expired: start over
		return New(""), nil
	}

	sess := New("")
	for k, v := range claims.Values {
		sess.Values[k] = v
	}
	return sess, nil
}

// Save signs the values into a fresh token and sets it as the cookie.
func (s *CookieStore) Save(_ context.Context, w http.ResponseWriter, sess *Session) error {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cookieClaims{
		Values: sess.Values,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}).SignedString(s.secret)
	if err != nil {
		return err
	}
	setCookie(w, signed, int(s.ttl.Seconds()))
	return nil
}
