package server

import (
	"net/http"
	"strings"
)

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// Protected views (require a logged-in session)
	s.RegisterRouteHandler("GET "+RouteEvents, ChainMiddleware(s.EventsPageHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteEvent, ChainMiddleware(s.EventPageHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// Static assets
	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleware()...))

	// Everything else lands on the events view, which bounces
	// unauthenticated visitors to the login page.
	s.RegisterRouteFunc("GET "+RouteIndex, s.IndexHandler())
}

// IndexHandler redirects any unmatched path to the events view.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, RouteEvents, http.StatusSeeOther)
	}
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		r.URL.Path = "/" + filePath
		s.fileServer.ServeHTTP(w, r)
	}
}
