// Package session holds the portal's authentication state: the triple of
// user id, Sequel access token and company id, persisted in a single
// browser cookie.
package session

import "github.com/google/uuid"

// Session is the authentication state for one browser.
//
// UserID is an opaque identifier generated on first contact and preserved
// across logins and logouts. CompanyID equals the client id used to log in.
// An empty AccessToken means the session is unauthenticated.
type Session struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
	CompanyID   string `json:"companyId"`
}

// New returns an unauthenticated session with a freshly generated user id.
func New() Session {
	return Session{UserID: uuid.NewString()}
}

// IsLoggedIn reports whether the session carries an access token.
func (s Session) IsLoggedIn() bool {
	return s.AccessToken != ""
}

// Reset returns an unauthenticated session that keeps the user id.
func (s Session) Reset() Session {
	return Session{UserID: s.UserID}
}
