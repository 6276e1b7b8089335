package session

import "net/http"

// Persistence loads and stores sessions across requests. The cookie store
// is the production implementation; an in-memory store backs tests.
type Persistence interface {
	// Load returns the session carried by the request. A missing or
	// malformed persisted session is not an error: Load falls back to a
	// fresh unauthenticated session with a new user id.
	Load(r *http.Request) Session

	// Save persists the session on the response.
	Save(w http.ResponseWriter, s Session) error

	// Clear removes the persisted session from the response's client.
	Clear(w http.ResponseWriter)
}
