package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// CookieName is the single cookie holding the JSON-encoded session.
const CookieName = "sequel-events-session"

const cookieTTL = 24 * time.Hour

// CookieStore persists the session as a JSON payload in one cookie with
// SameSite=Strict and a one day expiry.
type CookieStore struct {
	secure bool
}

var _ Persistence = (*CookieStore)(nil)

// NewCookieStore returns a cookie-backed Persistence. secure controls the
// Secure flag and should only be disabled for local development.
func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure}
}

func (c *CookieStore) Load(r *http.Request) Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return New()
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return New()
	}
	if s.UserID == "" {
		s.UserID = New().UserID
	}
	return s
}

func (c *CookieStore) Save(w http.ResponseWriter, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

func (c *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
