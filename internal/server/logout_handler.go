package server

import "net/http"

// LogoutHandler ends the session (GET /logout): the cookie is removed and
// every cached query is invalidated, so nothing fetched under this session
// survives into the next one.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Clear(w)
		s.queries.InvalidateAll()
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}
